package csvcodec

import (
	"errors"
	"fmt"
)

// ErrNoHeader is wrapped by every FormatError: the document has no row whose
// first cell is the "Time" marker.
var ErrNoHeader = errors.New("no grid header row")

// FormatError is the only error Decode returns. It aborts the whole import.
type FormatError struct {
	Line    int    // 1-based line of the offending context, 0 for an empty document
	Context string // text of that line
	Reason  string
	Err     error
}

func (e *FormatError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("csv format error at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("csv format error at line %d: %s (near %q)", e.Line, e.Reason, e.Context)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
