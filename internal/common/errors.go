package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Failure kinds surfaced by the core engine. Callers branch on these with
// errors.Is; none of them may be swallowed into a default numeric result.
var (
	ErrEstimationFailed      = errors.New("estimation failed")
	ErrExtractionFailed      = errors.New("extraction failed")
	ErrNoUsageData           = errors.New("no usage data on profile")
	ErrMarketDataUnavailable = errors.New("market data unavailable")
	ErrOraclePayloadInvalid  = errors.New("oracle payload invalid")
	ErrPersistenceFailed     = errors.New("persistence failed")
)

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func UnavailableError(message string) error {
	return status.Error(codes.Unavailable, message)
}

func FailedPreconditionError(message string) error {
	return status.Error(codes.FailedPrecondition, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}

// ToStatusError maps a core failure kind onto the gRPC status space.
// Oracle-facing failures are transient from the caller's point of view,
// so they map to Unavailable rather than Internal.
func ToStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNoUsageData):
		return FailedPreconditionError("no usage data: run an estimate or upload a bill first")
	case errors.Is(err, ErrMarketDataUnavailable):
		return UnavailableError("market data unavailable, try again later")
	case errors.Is(err, ErrEstimationFailed),
		errors.Is(err, ErrExtractionFailed),
		errors.Is(err, ErrOraclePayloadInvalid):
		return UnavailableError("advisor temporarily unavailable, try again later")
	case errors.Is(err, ErrNotFound):
		return NotFoundError(err.Error())
	case errors.Is(err, ErrInvalidInput):
		return InvalidArgumentError(err.Error())
	default:
		return InternalError(err.Error())
	}
}
