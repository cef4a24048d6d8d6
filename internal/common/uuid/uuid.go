package uuid

import "github.com/google/uuid"

// UUID generates the identifiers of games and their archived results
//
//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/charades/internal/common/uuid UUID
type UUID interface {
	NewUUID() string
}

// Generator implements UUID with random (version 4) UUIDs
type Generator struct{}

// New returns a UUID generator
func New() *Generator {
	return &Generator{}
}

// NewUUID returns a new UUID string
func (g *Generator) NewUUID() string {
	return uuid.New().String()
}
