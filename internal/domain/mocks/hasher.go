package mocks

// PasswordHasher is a mock implementation of ports.PasswordHasher.
type PasswordHasher struct {
	HashResult  string
	HashErr     error
	ValidateErr error

	LastPassword      string
	ValidateCallCount int
}

// Hash returns the configured hash or error.
func (m *PasswordHasher) Hash(password string) (string, error) {
	m.LastPassword = password
	if m.HashErr != nil {
		return "", m.HashErr
	}
	return m.HashResult, nil
}

// Validate returns the configured error.
func (m *PasswordHasher) Validate(_ string) error {
	m.ValidateCallCount++
	return m.ValidateErr
}
