package services

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters
const (
	memory      = 64 * 1024
	iterations  = 3
	parallelism = 2
	keyLength   = 32
	saltLength  = 16
)

var ErrInvalidHash = errors.New("invalid stored password format")

// HashPassword returns base64(salt) + "$" + base64(argon2id(password, salt)).
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password is required")
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.New("failed to generate salt")
	}

	hash := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, keyLength)

	encodedSalt := base64.RawStdEncoding.EncodeToString(salt)
	encodedHash := base64.RawStdEncoding.EncodeToString(hash)
	return encodedSalt + "$" + encodedHash, nil
}

// VerifyPassword checks providedPassword against a hash produced by HashPassword.
func VerifyPassword(storedPassword, providedPassword string) (bool, error) {
	salt64, hash64, ok := strings.Cut(storedPassword, "$")
	if !ok {
		return false, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(salt64)
	if err != nil {
		return false, ErrInvalidHash
	}
	storedHash, err := base64.RawStdEncoding.DecodeString(hash64)
	if err != nil || len(storedHash) == 0 || len(salt) == 0 {
		return false, ErrInvalidHash
	}

	computedHash := argon2.IDKey([]byte(providedPassword), salt, iterations, memory, parallelism, uint32(len(storedHash)))
	return subtle.ConstantTimeCompare(computedHash, storedHash) == 1, nil
}
