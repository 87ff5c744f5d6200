package user

import (
	"golang.org/x/crypto/bcrypt"
)

// User represents a demo user allowed to log in to the loan portal
type User struct {
	Username     string `json:"username"`
	DisplayName  string `json:"display_name"`
	PasswordHash string `json:"-"`
}

// VerifyPassword checks a cleartext password against the stored bcrypt hash
func (usr *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)) == nil
}

// HashPassword hashes a cleartext password for storage
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
