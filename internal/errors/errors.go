package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/weekgrid/internal/calendar"
	"github.com/julianstephens/weekgrid/internal/constants"
	"github.com/julianstephens/weekgrid/internal/csvcodec"
	"github.com/julianstephens/weekgrid/internal/logger"
	"github.com/julianstephens/weekgrid/internal/storage"
)

// Format formats an error message with a consistent "Error: " prefix. Known
// failure kinds get a second "Hint: " line.
func Format(err error) string {
	if err == nil {
		return ""
	}
	msg := fmt.Sprintf("Error: %v", err)
	if hint := Hint(err); hint != "" {
		msg += "\nHint: " + hint
	}
	return msg
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Hint suggests a next step for errors the user can fix, or "" otherwise.
func Hint(err error) string {
	var fe *csvcodec.FormatError
	switch {
	case stderrors.Is(err, csvcodec.ErrNoHeader):
		return "the file needs a header row whose first cell is \"Time\""
	case stderrors.As(err, &fe):
		return fmt.Sprintf("check line %d of the file", fe.Line)
	case stderrors.Is(err, calendar.ErrInvalidWeekKey):
		return "weeks are written as YYYY-Wnn, for example 2025-W03"
	case stderrors.Is(err, storage.ErrNotFound):
		return fmt.Sprintf("run '%s weeks' to list stored weeks", constants.AppName)
	}
	return ""
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
