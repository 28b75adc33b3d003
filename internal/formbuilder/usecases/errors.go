package usecases

import (
	"errors"

	"dms-server/internal/formbuilder/domain"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

// SubmissionError is returned when a record submission does not validate. Form
// is the entry descriptor prefilled with the submitted values and the error of
// each field.
type SubmissionError struct {
	Form   domain.FormDescriptor
	Errors domain.ValidationErrors
}

func (e *SubmissionError) Error() string {
	return e.Errors.Error()
}

func (e *SubmissionError) Unwrap() error {
	return e.Errors
}
