package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/unitgrid/internal/app"
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

// listFlag collects a flag that may be repeated.
type listFlag []string

func (l *listFlag) String() string {
	return strings.Join(*l, ",")
}

func (l *listFlag) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("unitgrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
unitgrid - resolves unit references across tenants and bills their use.

Usage:
  unitgrid [options] REFERENCE

Arguments:
  REFERENCE
    A spec to instantiate, e.g. 'alice:build()' or 'urn:github:1:deploy(${1:branch})'.

Options:
`)
		flagSet.PrintDefaults()
	}

	var registryPaths, refArgs, balances listFlag
	flagSet.Var(&registryPaths, "registry", "Path to a registry .hcl file or directory (repeatable).")
	flagSet.Var(&refArgs, "arg", "Positional argument passed to the reference as ${N:...}, starting at 1 (repeatable).")
	flagSet.Var(&balances, "balance", "Identifier whose ledger balance is printed after the run (repeatable).")
	ledgerFlag := flagSet.String("ledger", "", "Path to the SQLite ledger. Empty keeps receipts in memory.")
	clientFlag := flagSet.String("client", "", "Identifier of the tenant invoking the reference.")
	operatorFlag := flagSet.String("operator", app.DefaultOperator, "Identifier billed by clients for their own units.")
	unitFlag := flagSet.String("unit", "main", "Name of the top-level unit, used in receipt details.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No reference provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "exactly one reference is expected; quote it if it contains spaces"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		RegistryPaths: registryPaths,
		LedgerPath:    *ledgerFlag,
		Client:        *clientFlag,
		Operator:      *operatorFlag,
		Unit:          *unitFlag,
		Reference:     flagSet.Arg(0),
		Args:          refArgs,
		Balances:      balances,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
