package dom

import "fmt"

// DOM exception names.
const (
	InvalidCharacterError = "InvalidCharacterError"
	HierarchyRequestError = "HierarchyRequestError"
	NotFoundError         = "NotFoundError"
	SyntaxError           = "SyntaxError"
)

// Error is the equivalent of a DOMException.
type Error struct {
	// Name is the exception name (e.g. "InvalidCharacterError").
	Name string
	// Message describes the failure.
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

func newError(name, format string, args ...any) *Error {
	return &Error{Name: name, Message: fmt.Sprintf(format, args...)}
}
