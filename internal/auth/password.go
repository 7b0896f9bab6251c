package auth

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

// PasswordHasher produces and verifies salted one-way password hashes.
type PasswordHasher interface {
	Generate(password string) (string, error)
	Verify(password, hash string) bool
}

type bcryptHasher struct {
	cost int
}

// NewPasswordHasher returns a bcrypt-backed hasher. Each Generate call salts
// independently, so two hashes of the same password never compare equal.
func NewPasswordHasher() PasswordHasher {
	return &bcryptHasher{cost: bcryptCost}
}

// Generate hashes a plaintext password. The returned string is self-contained:
// it encodes the cost and the per-call salt alongside the digest.
func (h *bcryptHasher) Generate(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether password matches hash. A malformed hash is treated
// as a mismatch rather than an error.
func (h *bcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
