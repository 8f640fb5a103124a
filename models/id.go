package models

import gonanoid "github.com/matoous/go-nanoid/v2"

// NewID returns a URL safe identifier for users, colleges and questions.
func NewID() (string, error) {
	return gonanoid.New()
}
