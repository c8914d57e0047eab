// Package encryption protects holding memos at rest with fernet tokens.
package encryption

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fernet/fernet-go"
)

// ErrUndecryptable is returned when a stored memo is not a token signed by the configured key.
var ErrUndecryptable = errors.New("memo cannot be decrypted with the configured key")

// Memo tokens never expire; fernet only checks the age for a non-negative ttl.
const noExpiry time.Duration = -1

// MemoCipher encrypts and decrypts memo text. The zero value and a cipher
// built from an empty key store memos as plain text.
type MemoCipher struct {
	key *fernet.Key
}

// NewMemoCipher parses a base64 encoded 32 byte fernet key. An empty key
// disables encryption.
func NewMemoCipher(encodedKey string) (*MemoCipher, error) {
	encodedKey = strings.TrimSpace(encodedKey)
	if encodedKey == "" {
		return &MemoCipher{}, nil
	}

	key, err := fernet.DecodeKey(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("invalid memo key: %w", err)
	}
	return &MemoCipher{key: key}, nil
}

// GenerateKey returns a new random key in the encoding NewMemoCipher accepts.
func GenerateKey() (string, error) {
	var key fernet.Key
	if err := key.Generate(); err != nil {
		return "", fmt.Errorf("failed to generate key: %w", err)
	}
	return key.Encode(), nil
}

// Enabled reports whether memos are encrypted.
func (c *MemoCipher) Enabled() bool {
	return c != nil && c.key != nil
}

// Encrypt returns the stored form of memo. Empty memos stay empty.
func (c *MemoCipher) Encrypt(memo string) (string, error) {
	if !c.Enabled() || memo == "" {
		return memo, nil
	}

	token, err := fernet.EncryptAndSign([]byte(memo), c.key)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt memo: %w", err)
	}
	return string(token), nil
}

// Decrypt reverses Encrypt.
func (c *MemoCipher) Decrypt(stored string) (string, error) {
	if !c.Enabled() || stored == "" {
		return stored, nil
	}

	memo := fernet.VerifyAndDecrypt([]byte(stored), noExpiry, []*fernet.Key{c.key})
	if memo == nil {
		return "", ErrUndecryptable
	}
	return string(memo), nil
}
