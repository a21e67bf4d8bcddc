package bulkdownload

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrStudyNotFound     = errors.New("study not found")
	ErrAccessionNotFound = errors.New("invalid request parameters; study accessions not found")
)

// ValidationError reports a malformed or ambiguous download request.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error { return e.Err }

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// PermissionError lists the requested studies the user may not download,
// split by the remedy the user has to take.
type PermissionError struct {
	Forbidden       []string
	LacksAcceptance []string
}

func (e *PermissionError) Error() string {
	parts := []string{"Forbidden: cannot access one or more requested studies for download."}
	if len(e.Forbidden) > 0 {
		parts = append(parts, fmt.Sprintf("You do not have permission to view %s.", strings.Join(e.Forbidden, ", ")))
	}
	if len(e.LacksAcceptance) > 0 {
		parts = append(parts, fmt.Sprintf(
			"%s require accepting a Download agreement that can be found by viewing that study and going to the 'Download' tab.",
			strings.Join(e.LacksAcceptance, ", ")))
	}
	return strings.Join(parts, " ")
}

type QuotaExceededError struct {
	Requested int64
	Allowed   int64
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("Total file size exceeds user download quota: %d bytes requested, %d bytes allowed",
		e.Requested, e.Allowed)
}
