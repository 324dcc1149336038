package controller

import (
	"errors"
	"fmt"
)

// User-facing notice texts.
const (
	MsgEmptyPrompt = "Please enter a research prompt."
	MsgCopied      = "Content copied to clipboard!"
	MsgCopyFailed  = "Failed to copy content. Please try again."
)

// ErrNoContent is wrapped in a ClipboardError when there is nothing to copy.
var ErrNoContent = errors.New("no generated content to copy")

// ValidationError rejects a submission before any request is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ClipboardError is returned when copying the output fails.
type ClipboardError struct {
	Err error
}

func (e *ClipboardError) Error() string { return "copy to clipboard: " + e.Err.Error() }

func (e *ClipboardError) Unwrap() error { return e.Err }

// ErrorText formats a failure message for the error region.
func ErrorText(msg string) string {
	return fmt.Sprintf("An error occurred: %s. Please try again or contact support.", msg)
}
