package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for notes and categories. V7 UUIDs
// are time-ordered, which keeps freshly created records adjacent in
// b-tree indexes.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a V7 UUID string, falling back to V4 if the system
// clock source is unavailable.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
