package service

// TokenGenerator produces opaque session tokens.
type TokenGenerator interface {
	// Generate returns a new random token with at least 128 bits of entropy.
	Generate() (string, error)
}
