package apperror

// AppError carries the HTTP status a failure should surface with,
// alongside the message shown to the caller.
type AppError struct {
	Code    int    // HTTP status code
	Message string // caller-facing message
	Err     error  // wrapped cause, never serialized
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap attaches a status code and message to an underlying error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
