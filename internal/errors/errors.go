package errors

import "errors"

var (
	ErrIndexOutOfRange     = errors.New("course index is out of range")
	ErrMalformedStoredData = errors.New("stored course list is malformed")
	ErrInvalidCourseForm   = errors.New("course form is invalid")
	ErrUnsupportedImport   = errors.New("unsupported import format")
)
