package auth

import (
	"contacts/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// uuidTokenGenerator issues random version 4 UUIDs as session tokens.
type uuidTokenGenerator struct{}

// NewTokenGenerator is the constructor for the session token generator.
func NewTokenGenerator() service.TokenGenerator {
	return &uuidTokenGenerator{}
}

// Generate returns a new random token. A v4 UUID carries 122 random bits.
func (g *uuidTokenGenerator) Generate() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate token")
	}

	return id.String(), nil
}
