package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches on the error code so message-overridden clones still compare
// equal to the predefined vars under errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors. The field-validation messages keep the wording the
// planner's record files and clients have always seen.
var (
	ErrInvalidTitle         = New("INVALID_TITLE", http.StatusBadRequest, "Invalid title.")
	ErrInvalidCourseName    = New("INVALID_COURSE_NAME", http.StatusBadRequest, "Invalid course name.")
	ErrInvalidSection       = New("INVALID_SECTION", http.StatusBadRequest, "Invalid section.")
	ErrInvalidCredits       = New("INVALID_CREDITS", http.StatusBadRequest, "Invalid credits.")
	ErrInvalidInstructorID  = New("INVALID_INSTRUCTOR_ID", http.StatusBadRequest, "Invalid instructor id.")
	ErrInvalidMeetingTime   = New("INVALID_MEETING_TIME", http.StatusBadRequest, "Invalid meeting days and times.")
	ErrScheduleConflict     = New("SCHEDULE_CONFLICT", http.StatusConflict, "Schedule conflict.")
	ErrDuplicateActivity    = New("DUPLICATE_ACTIVITY", http.StatusConflict, "Activity is already in the schedule.")
	ErrInvalidScheduleTitle = New("INVALID_SCHEDULE_TITLE", http.StatusBadRequest, "Title cannot be null.")
	ErrCourseNotInCatalog   = New("COURSE_NOT_IN_CATALOG", http.StatusNotFound, "Course is not in the catalog.")
	ErrCatalogUnavailable   = New("CATALOG_UNAVAILABLE", http.StatusInternalServerError, "Cannot find file.")
	ErrExportFailure        = New("EXPORT_FAILURE", http.StatusInternalServerError, "The file cannot be saved.")
	ErrNotFound             = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrValidation           = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInternal             = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
