package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"torus-life/internal/app"
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

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Settings from a -config run file apply first; flags given explicitly on
// the command line override them.
func Parse(name string, args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	cfg := app.NewConfig()
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprintf(output, `
%s - Conway's Game of Life on a wrap-around board.

Usage:
  %s [options]

Options:
`, name, name)
		flagSet.PrintDefaults()
	}

	cfg.Bind(flagSet)
	configFlag := flagSet.String("config", "", "Path to an HCL run file.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}

	if *configFlag != "" {
		explicit := map[string]string{}
		flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })

		slog.Debug("Loading run file.", "path", *configFlag)
		if err := cfg.LoadFile(*configFlag); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		for flagName, value := range explicit {
			if err := flagSet.Set(flagName, value); err != nil {
				return nil, false, &ExitError{Code: 2, Message: err.Error()}
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
