package service

// PasswordHasher abstracts the hashing of signup passwords so the account
// usecase does not depend on a concrete algorithm.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool
}
