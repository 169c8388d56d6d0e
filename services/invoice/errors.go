package invoice

import "fmt"

// GenerationError signals that a document could not be produced because the
// booking or quota snapshot is missing data the layout requires. Callers show
// a one-shot failure notice; generation is cheap and safe to re-trigger
// manually, so no automatic retry.
type GenerationError struct {
	Code    string
	Message string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewGenerationError(msg string) error {
	return &GenerationError{
		Code:    "generationFailed",
		Message: msg,
	}
}
