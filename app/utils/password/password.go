package password

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// Charset used for generated temporary passwords. Matches what the reset
// mail promises the member: digits and upper-case letters only.
const tempPasswordCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// TempPasswordLength is the length of generated temporary passwords
const TempPasswordLength = 10

// Hash hashes a plaintext password with bcrypt at the default cost
func Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify compares a plaintext password against a stored bcrypt hash
func Verify(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// GenerateTemp generates a temporary password for the password reset flow
func GenerateTemp() (string, error) {
	buf := make([]byte, TempPasswordLength)
	max := big.NewInt(int64(len(tempPasswordCharset)))

	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate temporary password: %w", err)
		}
		buf[i] = tempPasswordCharset[n.Int64()]
	}

	return string(buf), nil
}
