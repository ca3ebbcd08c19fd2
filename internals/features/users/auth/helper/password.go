package helper

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword computes the stored verifier: bcrypt, salted and slow by
// construction. The raw secret never leaves this function's stack.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
