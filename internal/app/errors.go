package app

import (
	"errors"
	"fmt"
)

// InvalidRequestError is special error type returned when any request params are invalid
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	type invalidReqErr interface {
		IsInvalidRequest() bool
	}

	var ire invalidReqErr
	if errors.As(err, &ire) {
		return ire.IsInvalidRequest()
	}

	return false
}

// NotFoundError is returned when upstream service couldn't find requested data.
type NotFoundError string

// Error implements error interface
func (e NotFoundError) Error() string {
	return string(e)
}

// IsNotFound tells that this error is 'not found'.
// Returns always true.
func (NotFoundError) IsNotFound() bool {
	return true
}

// IsNotFoundError checks if given error is caused by missing upstream data
func IsNotFoundError(err error) bool {
	type notFoundErr interface {
		IsNotFound() bool
	}

	var nfe notFoundErr
	if errors.As(err, &nfe) {
		return nfe.IsNotFound()
	}

	return false
}

// InternalError is returned when score computation fails.
type InternalError string

// Error implements error interface
func (e InternalError) Error() string {
	return string(e)
}

// IsInternal tells that this error is 'internal'.
// Returns always true.
func (InternalError) IsInternal() bool {
	return true
}

// IsInternalError checks if given error is caused by failed computation
func IsInternalError(err error) bool {
	type internalErr interface {
		IsInternal() bool
	}

	var ie internalErr
	if errors.As(err, &ie) {
		return ie.IsInternal()
	}

	return false
}

// TooManyRequestsError is returned when outbound call rate limit couldn't be satisfied.
type TooManyRequestsError string

// Error implements error interface
func (e TooManyRequestsError) Error() string {
	return string(e)
}

// IsTooManyRequests tells that this error is 'too many requests'.
// Returns always true.
func (TooManyRequestsError) IsTooManyRequests() bool {
	return true
}

// IsTooManyRequestsError checks if given error is caused by exceeded rate limit
func IsTooManyRequestsError(err error) bool {
	type tooManyErr interface {
		IsTooManyRequests() bool
	}

	var tme tooManyErr
	if errors.As(err, &tme) {
		return tme.IsTooManyRequests()
	}

	return false
}

// UpstreamStatusError is returned by adapters when upstream responds with non-success status.
type UpstreamStatusError struct {
	StatusCode int
	Body       string
}

// Error implements error interface
func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("Status code: %d, Response: %s", e.StatusCode, e.Body)
}

// AsUpstreamStatusError returns upstream status error from the chain, if any.
func AsUpstreamStatusError(err error) (*UpstreamStatusError, bool) {
	var use *UpstreamStatusError
	if errors.As(err, &use) {
		return use, true
	}
	return nil, false
}
