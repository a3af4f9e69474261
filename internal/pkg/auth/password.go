package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the hashing cost used for stored passwords.
const BcryptCost = 12

// DemoPassword is the shared credential accepted by the demo verifier.
const DemoPassword = "password123"

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a plaintext password against a stored hash.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// CredentialVerifier checks a submitted password against a stored hash.
type CredentialVerifier interface {
	Verify(storedHash, password string) bool
}

// BcryptVerifier is the production verifier.
type BcryptVerifier struct{}

// Verify compares against the bcrypt hash.
func (BcryptVerifier) Verify(storedHash, password string) bool {
	return CheckPassword(storedHash, password)
}

// DemoVerifier accepts the shared demo password for every account. It exists
// only for classroom/demo deployments and is selected by auth.mode=demo;
// it must never be wired into a production build.
type DemoVerifier struct{}

// Verify accepts only the demo constant, ignoring the stored hash.
func (DemoVerifier) Verify(_, password string) bool {
	return password == DemoPassword
}
