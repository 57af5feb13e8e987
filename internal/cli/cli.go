package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/jointinit/internal/app"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const longHelp = `jointinit loads a simulation world description, builds the world and runs
its world plugins, then prints the resulting joint state.

WORLD_PATH is a single .hcl / .json world file, a directory containing them,
or a glob pattern such as 'worlds/**/*.hcl'.`

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var (
		cfg      *app.Config
		raw      app.Config
		worldArg string
	)

	cmd := &cobra.Command{
		Use:           "jointinit [flags] [WORLD_PATH]",
		Short:         "Apply initial joint configurations to a simulated world.",
		Long:          longHelp,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw.WorldPath = worldArg
			if raw.WorldPath == "" && len(args) > 0 {
				raw.WorldPath = args[0]
			}
			slog.Debug("World path determined.", "path", raw.WorldPath)

			if raw.WorldPath == "" {
				slog.Debug("No world path provided, printing usage and exiting.")
				return cmd.Usage()
			}

			raw.LogFormat = strings.ToLower(raw.LogFormat)
			raw.LogLevel = strings.ToLower(raw.LogLevel)
			raw.OutputFormat = strings.ToLower(raw.OutputFormat)

			c, err := app.NewConfig(raw)
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}
			cfg = c
			return nil
		},
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	flags := cmd.Flags()
	flags.StringVarP(&worldArg, "world", "w", "", "Path to the world file or directory.")
	flags.StringVar(&raw.LogFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.StringVar(&raw.LogLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVarP(&raw.OutputFormat, "output", "o", "text", "Report format. Options: 'text', 'json' or 'yaml'.")
	flags.BoolVar(&raw.ValidateOnly, "validate-only", false, "Load the world and run its plugins without printing a report.")
	flags.BoolVar(&raw.Lenient, "lenient", false, "Ignore unknown attributes and blocks in plugin configuration.")

	if err := cmd.Execute(); err != nil {
		if exitErr, ok := err.(*ExitError); ok {
			return nil, false, exitErr
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if cfg == nil {
		// --help, or no world path given.
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
