package api

import "github.com/google/uuid"

// NewID returns a random identifier for tracking one outbound request.
func NewID() string {
	return uuid.NewString()
}
