package scatter

import "fmt"

// ValidationError reports input that failed an eager precondition check:
// mismatched coordinate lengths, too few points, a non-positive bandwidth,
// or a bad colormap truncation range. It is always returned before any
// density or rendering work starts.
//
// Detect it with errors.As:
//
//	var verr *scatter.ValidationError
//	if errors.As(err, &verr) { ... }
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return "scatter: " + e.msg
}

// validationErrorf builds a ValidationError with the offending values
// recorded in the message.
func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
