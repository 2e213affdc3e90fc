package apperr

import "errors"

var (
	// ErrNotFound means the requested notice does not exist.
	ErrNotFound = errors.New("notice not found")

	// ErrNotAdmin means the caller is authenticated but lacks the admin claim.
	ErrNotAdmin = errors.New("admin access required")

	// ErrStoreUnavailable means the backing store is not configured or not
	// reachable. Reads may degrade to the fixture dataset; writes never do.
	ErrStoreUnavailable = errors.New("notice store unavailable")
)

// FieldError is used to indicate an error with a specific input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries one or more field-level input violations.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(flds ...FieldError) error {
	return &ValidationError{Fields: flds}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return "validation failed: " + e.Fields[0].Field + ": " + e.Fields[0].Message
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	ok := errors.As(err, &vErr)
	return vErr, ok
}
