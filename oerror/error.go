package oerror

import "fmt"

// OomphError is the value shapes panic with when a caller violates a construction precondition.
type OomphError struct {
	Err string
}

func NewOomphError(err string) *OomphError {
	return &OomphError{Err: err}
}

// New formats a new OomphError.
func New(format string, args ...any) *OomphError {
	if len(args) == 0 {
		return NewOomphError(format)
	}
	return NewOomphError(fmt.Sprintf(format, args...))
}

func (e *OomphError) Error() string {
	return e.Err
}
