package utils

import "github.com/google/uuid"

// GenerateRequestID returns a time-ordered UUID (v7) so request IDs sort by
// arrival in logs and the usage store
func GenerateRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

