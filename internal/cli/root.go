// Package cli implements the cobra commands behind the three console
// programs: guessing-game, simple-calculator and temperature-converter.
//
// Each program is its own root command (see NewGuessCommand,
// NewCalcCommand and NewTempCommand) built on newProgramCommand, which
// adds the shared flags, sets up the zap logger and wires the command's
// stdin/stdout into a console.Console.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/shinji-kodama/beginner-cli/internal/console"
	"github.com/shinji-kodama/beginner-cli/internal/model"
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main packages to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// globalFlags holds the flags every program accepts.
type globalFlags struct {
	// verbose lowers the log level to debug.
	verbose bool
}

// session is what a program's run function receives: the console bound to
// the command's stdin/stdout and the logger.
type session struct {
	con *console.Console
	log *zap.Logger
}

// runFunc is the body of a program.
type runFunc func(cmd *cobra.Command, s *session) error

// newProgramCommand builds a root command for one program. The logger is
// created in PersistentPreRunE so --verbose is honoured, and synced in
// PersistentPostRun.
func newProgramCommand(use, short, long string, run runFunc) *cobra.Command {
	flags := &globalFlags{}
	var logger *zap.Logger

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,

		// No positional arguments: all input is read interactively.
		Args: cobra.NoArgs,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors lets Execute format errors and pick the exit code.
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Logs go to the command's stderr so tests can capture them and
			// the interactive transcript on stdout stays clean.
			logger = newLogger(cmd.ErrOrStderr(), flags.verbose)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			// Sync flushes any buffered log entries. Its error is ignored
			// because syncing a terminal stderr fails on some platforms.
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bind the console to cobra's streams rather than os.Stdin and
			// os.Stdout, so SetIn/SetOut redirect a whole program run.
			s := &session{
				con: console.New(cmd.InOrStdin(), cmd.OutOrStdout()),
				log: logger,
			}
			// Flush whatever is buffered even when the run fails, so the
			// last prompt or message is not lost.
			defer func() { _ = s.con.Flush() }()

			return wrapConsoleError(run(cmd, s))
		},
	}

	// PersistentFlags are inherited by any subcommand added later.
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	return cmd
}

// newLogger returns a console-encoded zap logger writing to w. Only
// warnings and errors are shown unless verbose is set, which keeps the
// interactive transcript on stdout clean.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	// The development encoder gives short, human-readable lines, which
	// suits a terminal program better than JSON.
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)
	return zap.New(core)
}

// wrapConsoleError turns a severed input stream into a CLIError so the
// process exits with ExitInputClosed.
func wrapConsoleError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, console.ErrInputClosed) {
		return model.WrapCLIError(model.ExitInputClosed, "failed to read input", err)
	}
	return err
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from the main packages.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		// Errors go to stderr; stdout is reserved for the program itself.
		printError(os.Stderr, err)
		os.Exit(int(exitCodeFor(err)))
	}
}

// exitCodeFor maps an error to a process exit code. CLIError types carry
// their own exit codes; other errors default to ExitGeneralError.
func exitCodeFor(err error) model.ExitCode {
	if err == nil {
		return model.ExitSuccess
	}
	// errors.As also finds CLIErrors wrapped further up the chain.
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return model.ExitGeneralError
}

// printError writes "Error: <message>" to w.
func printError(w io.Writer, err error) {
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) && cliErr.Err != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", cliErr.Message, cliErr.Err)
		return
	}
	fmt.Fprintf(w, "Error: %s\n", err)
}
