package apperror

// AppError carries an HTTP status code alongside a user-facing message.
// Handlers hand these straight to response.Error.
type AppError struct {
	Code    int    // HTTP status code (e.g. 400, 409)
	Message string // Safe to show to the client
	Err     error  // Underlying cause, never exposed
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

// Wrap attaches a status code and message to an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
