package errors

import (
	"errors"
	"net/http"
)

// Entity not-found sentinels. The message text is part of the public API
// contract: handlers return it verbatim in the error body.
var (
	ErrChurchNotFound        = errors.New("Church not found")
	ErrMemberNotFound        = errors.New("Member not found")
	ErrMinisterNotFound      = errors.New("Minister not found")
	ErrMinistryRankNotFound  = errors.New("Ministry rank not found")
	ErrMinistrySkillNotFound = errors.New("Ministry skill not found")
	ErrChurchEventNotFound   = errors.New("Church event not found")
	ErrCoverPhotoNotFound    = errors.New("Cover photo not found")
	ErrContactNotFound       = errors.New("Contact submission not found")
	ErrUserNotFound          = errors.New("User not found")

	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrObjectNotFound is returned when a storage object does not exist.
	ErrObjectNotFound = errors.New("object not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized is
// a 500 with a generic message; internal detail never reaches the response.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrChurchNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CHURCH_NOT_FOUND")
	case errors.Is(err, ErrMemberNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "MEMBER_NOT_FOUND")
	case errors.Is(err, ErrMinisterNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "MINISTER_NOT_FOUND")
	case errors.Is(err, ErrMinistryRankNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "MINISTRY_RANK_NOT_FOUND")
	case errors.Is(err, ErrMinistrySkillNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "MINISTRY_SKILL_NOT_FOUND")
	case errors.Is(err, ErrChurchEventNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CHURCH_EVENT_NOT_FOUND")
	case errors.Is(err, ErrCoverPhotoNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "COVER_PHOTO_NOT_FOUND")
	case errors.Is(err, ErrContactNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CONTACT_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrObjectNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "OBJECT_NOT_FOUND")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
