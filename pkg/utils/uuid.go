package utils

import "github.com/google/uuid"

// GenerateID returns a fresh entity id.
func GenerateID() string {
	return uuid.New().String()
}
