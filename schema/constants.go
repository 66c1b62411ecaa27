package schema

import "time"

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// ToolOp represents a terraform subcommand run during the tool-check phase.
	ToolOp string

	// IssueKind discriminates the validation issue variants.
	IssueKind string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All terraform subcommands run during the tool-check phase.
const (
	FmtOp      ToolOp = "fmt"
	InitOp     ToolOp = "init"
	ValidateOp ToolOp = "validate"
	PlanOp     ToolOp = "plan"
)

// All issue kinds produced by the structural audit.
const (
	LocalSourceMissing      IssueKind = "local_source_missing"
	RemoteSourceUnreachable IssueKind = "remote_source_unreachable"
	URLUnreachable          IssueKind = "url_unreachable"
	ParseFailure            IssueKind = "parse_failure"
)

// TerraformExt is the file extension that marks a candidate file.
const TerraformExt = ".tf"

// DefaultProbeTimeout bounds a single reachability probe.
const DefaultProbeTimeout = 5 * time.Second

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// AllToolOps lists the tool-check subcommands in execution order.
var AllToolOps = []ToolOp{FmtOp, InitOp, ValidateOp, PlanOp}
