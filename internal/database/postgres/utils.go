package postgres

import (
	"fmt"

	"github.com/google/uuid"
)

// parseUserUUID parses a user ID string to uuid.UUID with consistent error message.
// Use this instead of repeating uuid.Parse + error wrapping throughout the codebase.
func parseUserUUID(userID string) (uuid.UUID, error) {
	u, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id: %w", err)
	}
	return u, nil
}
