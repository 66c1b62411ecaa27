package schema

import "fmt"

// Issue represents a single problem found in a Terraform file. Kind
// discriminates the variant, the remaining fields carry the machine-readable
// pieces, and String renders the human-readable report form.
type Issue struct {
	Kind   IssueKind `json:"kind"`
	Module string    `json:"module,omitempty"` // Module name, set for module-source issues
	Target string    `json:"target"`           // Source path, source URL, or extracted URL
	Detail string    `json:"detail,omitempty"` // Probe status text or underlying error
}

// String renders the issue in report form.
func (i Issue) String() string {
	switch i.Kind {
	case RemoteSourceUnreachable:
		return fmt.Sprintf("Module %s: Unreachable source URL %s", i.Module, i.Target)
	case LocalSourceMissing:
		return fmt.Sprintf("Module %s: Local source path does not exist %s", i.Module, i.Target)
	case URLUnreachable:
		return fmt.Sprintf("Unreachable URL %s", i.Target)
	case ParseFailure:
		return fmt.Sprintf("Error during validation: %s", i.Detail)
	default:
		return fmt.Sprintf("%s %s", i.Kind, i.Target)
	}
}
