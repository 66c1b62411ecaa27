package contract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/WilliamVaron23/tf-pipeline-validator/schema"
	"github.com/charmbracelet/log"
)

// DefaultLogFile is the default path for the validation log sink.
const DefaultLogFile = "terraform_validator.log"

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for a validation run.
// This struct remains the "final, validated" config.
type Config struct {
	TargetDir      string            // Absolute path to the directory under validation
	Workers        int               // Number of concurrent workers for the per-file phase
	Output         schema.OutputMode // Report format
	OutputFile     string            // Optional path to write the report instead of stdout
	LogFile        string            // Log sink path; empty logs to stderr only
	ProbeTimeout   time.Duration     // Per-probe timeout
	SkipToolChecks bool              // If true, skip the terraform subcommand phase
	UseColors      bool              // Enable colored status labels in table output
	Width          int               // Terminal width override (0 = auto-detect)

	// Logger is the run-scoped log sink shared by the pipeline and its
	// collaborators. Constructed once at setup from LogFile.
	Logger *log.Logger
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	TargetDirStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	LogFile        string `mapstructure:"log-file"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Workers        int    `mapstructure:"workers"`
	ProbeTimeout   string `mapstructure:"probe-timeout"`
	SkipToolChecks bool   `mapstructure:"skip-tool-checks"`
	Color          string `mapstructure:"color"`
	Width          int    `mapstructure:"width"`
}

// Clone returns a copy of the Config struct. The logger is shared, not
// copied; clones of one run log to the same sink.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// All validation functions read from 'input' and populate 'cfg'.
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processProbeTimeout(cfg, input); err != nil {
		return err
	}
	if err := resolveTargetDir(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.LogFile = input.LogFile
	cfg.OutputFile = input.OutputFile
	cfg.SkipToolChecks = input.SkipToolChecks
	cfg.Width = input.Width

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 2. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	return nil
}

// processProbeTimeout parses and validates the reachability probe timeout.
func processProbeTimeout(cfg *Config, input *ConfigRawInput) error {
	if input.ProbeTimeout == "" {
		cfg.ProbeTimeout = schema.DefaultProbeTimeout
		return nil
	}
	timeout, err := time.ParseDuration(input.ProbeTimeout)
	if err != nil {
		return fmt.Errorf("invalid probe timeout '%s': %w", input.ProbeTimeout, err)
	}
	if timeout <= 0 {
		return fmt.Errorf("probe timeout must be positive (received %s)", timeout)
	}
	cfg.ProbeTimeout = timeout
	return nil
}

// RevalidateTarget re-resolves the target directory for a config adjusted
// outside the CLI flow, such as per-request MCP overrides.
func RevalidateTarget(cfg *Config, targetDirStr string) error {
	return resolveTargetDir(cfg, &ConfigRawInput{TargetDirStr: targetDirStr})
}

// RevalidateProbeTimeout re-parses the probe timeout for a config adjusted
// outside the CLI flow.
func RevalidateProbeTimeout(cfg *Config, timeoutStr string) error {
	return processProbeTimeout(cfg, &ConfigRawInput{ProbeTimeout: timeoutStr})
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// resolveTargetDir resolves and validates the directory under validation.
// A missing or non-directory target is a setup failure, caught here before
// any validation begins.
func resolveTargetDir(cfg *Config, input *ConfigRawInput) error {
	if strings.TrimSpace(input.TargetDirStr) == "" {
		return errors.New("target directory is required")
	}

	absDir, err := filepath.Abs(input.TargetDirStr)
	if err != nil {
		return err
	}
	absDir = filepath.Clean(absDir)

	info, err := os.Stat(absDir)
	if os.IsNotExist(err) {
		return fmt.Errorf("directory does not exist: %s", input.TargetDirStr)
	} else if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", input.TargetDirStr)
	}

	cfg.TargetDir = absDir
	return nil
}
