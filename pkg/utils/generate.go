package utils

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== ORDER ID ====================

// GenerateOrderID creates a display order id.
// Format: KC-NNNN (four digits, 1000-9999)
func GenerateOrderID() string {
	return fmt.Sprintf("KC-%d", 1000+rand.Intn(9000))
}
