// Package service declares the stateless capabilities the usecases depend on.
package service

// PasswordHasher hashes user passwords and verifies login attempts against the stored hash.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Malformed hashes never match.
	Check(password, hash string) bool
}
