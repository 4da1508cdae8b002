package services

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// CredentialStore verifies admin credentials. Handlers depend on this
// interface so the backing store (env vars today, a secrets manager or
// database later) can change without touching them.
type CredentialStore interface {
	Verify(username, password string) bool
}

// StaticCredentialStore holds a fixed username -> password table. Stored
// values may be plaintext or bcrypt hashes; both verify.
type StaticCredentialStore struct {
	users map[string]string
}

func NewStaticCredentialStore(users map[string]string) *StaticCredentialStore {
	return &StaticCredentialStore{users: users}
}

func (s *StaticCredentialStore) Verify(username, password string) bool {
	stored, ok := s.users[strings.TrimSpace(username)]
	if !ok || password == "" {
		return false
	}
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return stored == password
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

// HashPassword is kept for when credentials move to hashed storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
