package ports

// PasswordHasher produces and checks password hashes for seed accounts.
type PasswordHasher interface {
	// Hash returns a new hash for the password.
	Hash(password string) (string, error)

	// Validate reports an error if hash is not a usable hash.
	Validate(hash string) error
}
