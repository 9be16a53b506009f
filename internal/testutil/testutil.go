// SPDX-FileCopyrightText: 2025 GSI Helmholtzzentrum für Schwerionenforschung GmbH
//
// SPDX-License-Identifier: MPL-2.0

package testutil

import "bytes"

// ErrorWriter is a test writer that returns errors.
// It accepts a number of writes, keeping what was written, and then fails.
type ErrorWriter struct {
	err       error
	buf       bytes.Buffer
	failAfter int // Number of successful writes before failing (0 = always fail)
	writes    int
}

// NewErrorWriter creates an ErrorWriter that always fails with the given error.
func NewErrorWriter(err error) *ErrorWriter {
	return &ErrorWriter{err: err}
}

// NewErrorWriterAfter creates an ErrorWriter that fails after n successful writes.
func NewErrorWriterAfter(n int, err error) *ErrorWriter {
	return &ErrorWriter{failAfter: n, err: err}
}

// Write implements io.Writer.
func (e *ErrorWriter) Write(p []byte) (int, error) {
	if e.writes >= e.failAfter {
		return 0, e.err
	}

	e.writes++

	return e.buf.Write(p)
}

// String returns everything written before the writer started failing.
func (e *ErrorWriter) String() string {
	return e.buf.String()
}
