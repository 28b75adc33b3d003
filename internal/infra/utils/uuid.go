package utils

import (
	"github.com/google/uuid"
)

// GenerateUUID returns a random identifier for catalog rows.
func GenerateUUID() string {
	return uuid.NewString()
}
