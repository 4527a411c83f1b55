package domain

import "github.com/google/uuid"

// newSessionID returns a random identifier for a countdown run.
func newSessionID() string {
	return uuid.NewString()
}
