package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dennisklein/pipe-while-read/internal/dispatch"
	"github.com/dennisklein/pipe-while-read/internal/input"
)

//nolint:govet // fieldalignment: readability preferred over optimization
type rootOptions struct {
	dryRun   bool
	input    string
	logLevel string
	fs       afero.Fs
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	opts := &rootOptions{fs: fs}

	cmd := &cobra.Command{
		Use:   "pipe-while-read [flags] <command> [args...]",
		Short: "Read stdin line-by-line and run a command with each line appended",
		Long: `pipe-while-read reads standard input line by line and runs <command> once per
line, with the fixed [args...] followed by the line as the last argument.

The line is always passed as a single argument; it is never split or
interpreted by a shell. Commands run one at a time with an empty stdin.

The exit code is that of the last command that ran, not an aggregate: a
failing line followed by a succeeding one exits 0. Failures are reported
on stderr as they happen.

Errors of pipe-while-read itself (a command that cannot be started, input
that is not valid UTF-8) exit 1 and print an "Error:" line. A command that
exits 1 is relayed as 1 without that line.`,
		Example: `  ls *.txt | pipe-while-read wc -l
  git branch --format='%(refname:short)' | pipe-while-read -n git branch -D`,
		Args:          cobra.MinimumNArgs(1),
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		// A "completion" subcommand would shadow an executable of that name.
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDispatch(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	// Everything after the command name belongs to the command.
	flags.SetInterspersed(false)
	flags.BoolVarP(&opts.dryRun, "dry-run", "n", false, "Show commands without executing")
	flags.StringVarP(&opts.input, "input", "i", input.Stdin, "Read lines from `file` instead of stdin")
	flags.StringVar(&opts.logLevel, "log-level", defaultLogLevel, "Log `level` (debug, info, warn, error)")

	return cmd
}

func runDispatch(cmd *cobra.Command, opts *rootOptions, args []string) error {
	log := newLogger(cmd.ErrOrStderr(), opts.logLevel)

	spec := dispatch.Spec{
		Executable: args[0],
		FixedArgs:  args[1:],
		DryRun:     opts.dryRun,
	}

	in, err := input.Open(opts.fs, opts.input, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // close on read-only input

	d := dispatch.New(spec, cmd.OutOrStdout(), cmd.ErrOrStderr(), log)

	status, err := d.Run(cmd.Context(), in)
	if err != nil {
		return err
	}

	if code := status.ExitCode(); code != 0 {
		return &exitCodeError{code: code}
	}

	return nil
}
