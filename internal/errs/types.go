package errs

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type NotFoundError struct {
	ErrorMessage
}

type ValidationError struct {
	ErrorMessage
}

// UpstreamError wraps a failure talking to the transaction backend.
// Status is the HTTP status when the backend answered, 0 otherwise.
type UpstreamError struct {
	ErrorMessage
	Status int
	Cause  error
}

func (e *UpstreamError) Unwrap() error { return e.Cause }

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewUpstreamError(message string, status int, cause error) *UpstreamError {
	return &UpstreamError{
		ErrorMessage: ErrorMessage{Message: message},
		Status:       status,
		Cause:        cause,
	}
}
