package revision

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a revision id does not exist or does not
// belong to the requesting user. The two cases are indistinguishable on
// purpose — ids are namespaced per user in storage.
var ErrNotFound = errors.New("revision not found")

// ValidationError reports a request field outside its allowed range.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func validationErr(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
