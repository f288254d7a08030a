package utils

import "github.com/google/uuid"

// NewPhotoID returns a random 128-bit photo identifier.
func NewPhotoID() string {
	return uuid.NewString()
}
