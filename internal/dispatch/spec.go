package dispatch

import (
	"fmt"
	"strings"
)

// DryRunPrefix starts every line printed in dry-run mode.
const DryRunPrefix = "[DRY RUN]"

// Spec describes the command run for every line: the executable, the
// arguments placed before the line, and whether to only print it.
type Spec struct {
	Executable string
	FixedArgs  []string
	DryRun     bool
}

// Validate reports ErrNoExecutable if no executable is set.
func (s Spec) Validate() error {
	if s.Executable == "" {
		return ErrNoExecutable
	}

	return nil
}

// Argv returns the arguments for line: the fixed arguments followed by the
// line as a single argument.
func (s Spec) Argv(line string) []string {
	argv := make([]string, 0, len(s.FixedArgs)+1)
	argv = append(argv, s.FixedArgs...)

	return append(argv, line)
}

// Describe returns the dry-run description of the command for line.
func (s Spec) Describe(line string) string {
	if len(s.FixedArgs) == 0 {
		return fmt.Sprintf("%s %s %s", DryRunPrefix, s.Executable, line)
	}

	return fmt.Sprintf("%s %s %s %s", DryRunPrefix, s.Executable, strings.Join(s.FixedArgs, " "), line)
}
