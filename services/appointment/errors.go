package appointment

import (
	"fmt"
	"strings"
)

// RequestError reports a booking request the service cannot act on.
type RequestError struct {
	Code    string
	Message string
	Fields  []string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewMissingFieldsError(fields []string) error {
	return &RequestError{
		Code:    "missingFields",
		Message: "missing " + strings.Join(fields, ", "),
		Fields:  fields,
	}
}

func NewInvalidDateError(raw string) error {
	return &RequestError{
		Code:    "invalidDate",
		Message: fmt.Sprintf("%q is not a YYYY-MM-DD date", raw),
	}
}
