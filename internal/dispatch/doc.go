// Package dispatch runs one command per input line.
//
// A Dispatcher reads its input front to back and, for every line, either
// prints the command it would run (dry run) or runs the command and waits
// for it. Children share the dispatcher's stdout and stderr and get an
// empty stdin. Exactly one child runs at a time.
//
// The exit code of the run is the exit code of the last child that
// terminated normally. Earlier failures are reported on stderr but do not
// affect the final code, so a failing line followed by a succeeding one
// yields success.
//
// If the dispatcher process itself is killed while a child is running, the
// child may keep running. Cancelling the context passed to Run kills the
// current child.
package dispatch
