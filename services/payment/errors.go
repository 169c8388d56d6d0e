package payment

import "fmt"

// PaymentError carries a machine-readable code alongside the message so
// handlers can map attempt failures to status codes.
type PaymentError struct {
	Code    string
	Message string
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewTransitionError(msg string) error {
	return &PaymentError{Code: "invalidTransition", Message: msg}
}

func NewAttemptNotFoundError(msg string) error {
	return &PaymentError{Code: "attemptNotFound", Message: msg}
}
