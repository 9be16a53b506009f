package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

// Dispatcher runs the command described by Spec once per input line.
//
//nolint:govet // fieldalignment: readability preferred over optimization
type Dispatcher struct {
	Spec   Spec
	Stdout io.Writer
	Stderr io.Writer
	Log    *logrus.Logger

	diagStyle lipgloss.Style
}

// New creates a Dispatcher. Children write directly to stdout and stderr;
// pass the process's own *os.File streams to avoid any buffering.
// A nil logger discards log output.
func New(spec Spec, stdout, stderr io.Writer, log *logrus.Logger) *Dispatcher {
	if stdout == nil {
		stdout = os.Stdout
	}

	if stderr == nil {
		stderr = os.Stderr
	}

	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	return &Dispatcher{
		Spec:   spec,
		Stdout: stdout,
		Stderr: stderr,
		Log:    log,
		diagStyle: lipgloss.NewRenderer(stderr).NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9")),
	}
}

// Run consumes in line by line until it is exhausted and returns the status
// of the last child that terminated normally.
//
// Children that fail are reported on Stderr and do not stop the run. Run
// stops early on input that is not valid UTF-8, on a command that cannot be
// started, and when ctx is done.
func (d *Dispatcher) Run(ctx context.Context, in io.Reader) (Status, error) {
	var status Status

	if err := d.Spec.Validate(); err != nil {
		return status, err
	}

	lines := newLineReader(in)

	for {
		if err := ctx.Err(); err != nil {
			return status, err
		}

		line, ok, err := lines.next()
		if err != nil {
			return status, err
		}

		if !ok {
			return status, nil
		}

		if d.Spec.DryRun {
			if _, err := fmt.Fprintln(d.Stdout, d.Spec.Describe(line)); err != nil {
				return status, fmt.Errorf("failed to write output: %w", err)
			}

			continue
		}

		if err := d.execute(ctx, line, &status); err != nil {
			return status, err
		}
	}
}

// execute runs the command for line and records its exit code.
func (d *Dispatcher) execute(ctx context.Context, line string, status *Status) error {
	argv := d.Spec.Argv(line)

	d.Log.WithFields(logrus.Fields{
		"executable": d.Spec.Executable,
		"args":       argv,
	}).Debug("running command")

	// A nil Stdin reads from the null device.
	cmd := exec.CommandContext(ctx, d.Spec.Executable, argv...)
	cmd.Stdout = d.Stdout
	cmd.Stderr = d.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			if cmd.ProcessState == nil {
				// Start fails when ctx is cancelled after the loop checked it.
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}

				return fmt.Errorf("%w %s: %w", ErrLaunch, d.Spec.Executable, err)
			}

			return fmt.Errorf("failed to relay output of %s: %w", d.Spec.Executable, err)
		}
	}

	state := cmd.ProcessState

	// ExitCode is -1 when the child was killed by a signal.
	if code := state.ExitCode(); code >= 0 {
		status.record(code)
	}

	d.Log.WithField("status", state.String()).Debug("command finished")

	if !state.Success() {
		d.report(state)
	}

	return nil
}

// report writes the diagnostic for a child that did not succeed.
func (d *Dispatcher) report(state *os.ProcessState) {
	msg := d.diagStyle.Render("command exited with " + state.String())

	_, _ = fmt.Fprintln(d.Stderr, msg) //nolint:errcheck // best effort diagnostic
}
