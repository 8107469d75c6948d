package auth

import "golang.org/x/crypto/bcrypt"

// HashCost is the bcrypt work factor used for all stored passwords.
const HashCost = 12

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
// Comparison is delegated to bcrypt; hashes are never compared with
// byte equality.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
