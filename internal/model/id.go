package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ID prefixes for generated entities
const (
	FileIDPrefix         = "file-"
	ArtifactIDPrefix     = "artifact-"
	NotificationIDPrefix = "toast-"
)

// NewID generates a unique ID using UUID v7 so IDs sort by creation time
func NewID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf("%s%d", prefix, time.Now().UnixNano())
	}
	return prefix + id.String()
}
