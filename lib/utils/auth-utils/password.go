package authutils

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateTempPassword returns a random password of the requested length (max 32).
func GenerateTempPassword(length int) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	if length <= 0 || length > len(raw) {
		length = len(raw)
	}
	return raw[:length]
}
