package models

// DomainError is a coded error raised by the service layer. Controllers
// map codes to HTTP statuses; the code never leaks storage details.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Not-found on owned resources is deliberately folded into
// ErrNotAuthorized so callers cannot probe for other users' record ids.
var (
	ErrUnauthenticated = NewDomainError("UNAUTHENTICATED", "Authentication required")
	ErrNotAuthorized   = NewDomainError("NOT_AUTHORIZED", "Not authorized to perform this action")
	ErrValidation      = NewDomainError("VALIDATION_ERROR", "Invalid input provided")
	ErrNotFound        = NewDomainError("NOT_FOUND", "Resource not found")
)
