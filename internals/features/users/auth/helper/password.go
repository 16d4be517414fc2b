package helpers

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is lowered by tests; production keeps the library default.
var BcryptCost = bcrypt.DefaultCost

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPasswordHash returns nil when plaintext matches the stored hash.
func CheckPasswordHash(hash, plaintext string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
}
