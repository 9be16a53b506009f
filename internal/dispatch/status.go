package dispatch

// Status holds the exit code of the last child that terminated normally.
// Set is false until such a child has been seen.
type Status struct {
	Code int
	Set  bool
}

// ExitCode returns the recorded code, or 0 if none was recorded.
func (s Status) ExitCode() int {
	if !s.Set {
		return 0
	}

	return s.Code
}

func (s *Status) record(code int) {
	s.Code = code
	s.Set = true
}
