// Package service declares the ports the usecases depend on: hashing,
// tokens, identity verification and metrics. Implementations live under
// internal/infra.
package service

// PasswordHasher turns local-account passwords into stored hashes.
type PasswordHasher interface {
	// Hash returns a salted hash of password. Hashing the same password
	// twice gives different results.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash is a
	// mismatch. Login calls Check on every path, including with an empty
	// password or a placeholder hash, so its cost must not depend on the
	// outcome.
	Check(password, hash string) bool
}
