package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator mints opaque identifiers for entities exposed over the API.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator issues random UUIDv4 strings.
type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	value, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}

	return value.String(), nil
}
