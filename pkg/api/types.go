package api

import "strings"

// GenerationRequest is one user submission. It is never persisted.
type GenerationRequest struct {
	Prompt string `json:"prompt"`
	Model  string `json:"model"`
}

// NewGenerationRequest trims the prompt; callers check Empty before sending.
func NewGenerationRequest(prompt, model string) GenerationRequest {
	return GenerationRequest{Prompt: strings.TrimSpace(prompt), Model: model}
}

// Empty reports whether the prompt has no content after trimming.
func (r GenerationRequest) Empty() bool {
	return strings.TrimSpace(r.Prompt) == ""
}

// GenerationResult holds either the generated text or the failure.
// Err keeps the typed error for classification; ErrorMessage is its text.
type GenerationResult struct {
	RawText      string `json:"response,omitempty"`
	ErrorMessage string `json:"error,omitempty"`
	Err          error  `json:"-"`
}

// Success builds a successful result.
func Success(text string) GenerationResult {
	return GenerationResult{RawText: text}
}

// Failure builds a failed result from err.
func Failure(err error) GenerationResult {
	return GenerationResult{ErrorMessage: err.Error(), Err: err}
}

// Failed reports whether the result carries an error.
func (r GenerationResult) Failed() bool {
	return r.Err != nil || r.ErrorMessage != ""
}
