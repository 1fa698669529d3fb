// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
//
// The verification contract is fixed: Check always receives the
// caller-supplied plaintext candidate and the stored hash, in that order.
// Hashes are salted and non-deterministic, so verification never re-hashes
// the candidate for a byte comparison.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext candidate with a stored hash.
	Check(password, hash string) bool

	// ValidatePasswordStrength reports whether the plaintext satisfies the
	// configured strength policy. Called before Hash, never after.
	ValidatePasswordStrength(password string) error
}
