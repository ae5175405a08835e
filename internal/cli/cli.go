package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/tfsheet/internal/app"
)

// Version is the release version stamped at build time.
var Version = "0.1.0"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("tfsheet", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
tfsheet - Generate parameter sheets from Terraform plan JSON.

Usage:
  tfsheet [options] PLAN_PATH

Arguments:
  PLAN_PATH
    Path to a plan.json file or a directory containing plan .json files.

Options:
`)
		flagSet.PrintDefaults()
	}

	outputFlag := flagSet.String("o", "output", "Output directory for the generated sheets.")
	schemaFlag := flagSet.String("s", "", "Provider schema file (terraform providers schema -json).")
	overridesFlag := flagSet.String("overrides", "", "Overrides file with custom descriptions and exclusions (.hcl, .yaml or .yml).")
	formatFlag := flagSet.String("f", "html", "Output format. Options: 'html' or 'markdown'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", 4, "Number of concurrent workers for view rendering.")
	versionFlag := flagSet.Bool("version", false, "Print the version and exit.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if *versionFlag {
		fmt.Fprintf(output, "tfsheet %s\n", Version)
		return nil, true, nil
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}
	planPath := flagSet.Arg(0)

	format := strings.ToLower(*formatFlag)
	switch format {
	case "html", "markdown", "md":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'html' or 'markdown'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		PlanPath:      planPath,
		SchemaPath:    *schemaFlag,
		OverridesPath: *overridesFlag,
		OutputDir:     *outputFlag,
		Format:        format,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
		WorkerCount:   *workersFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return config, false, nil
}
