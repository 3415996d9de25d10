package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-expense-note/internal/apperrors"
	"golang.org/x/crypto/scrypt"
)

const (
	ciphertextPrefix  = "v1:"
	keyDerivationSalt = "expense-note/api-keys"
)

var (
	// ErrEmptyEncryptionPassword is returned by New when no password is configured.
	ErrEmptyEncryptionPassword = errors.New("encryption password is empty")
	// ErrInvalidCiphertext is returned when a stored API key cannot be decrypted.
	ErrInvalidCiphertext = errors.New("invalid api key ciphertext")
)

// Vault encrypts and decrypts third-party API keys with AES-256-GCM. The owning
// user's id is bound to every ciphertext as additional authenticated data, so a
// ciphertext copied onto another account does not decrypt.
type Vault struct {
	aead cipher.AEAD
}

// New derives the encryption key from password and returns a ready Vault.
func New(password string) (*Vault, error) {
	if password == "" {
		return nil, ErrEmptyEncryptionPassword
	}

	key, err := scrypt.Key([]byte(password), []byte(keyDerivationSalt), 1<<15, 8, 1, 32)
	if err != nil {
		return nil, fmt.Errorf("derive encryption key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Vault{aead: aead}, nil
}

// EncryptAPIKey encrypts plaintext for the given user.
func (v *Vault) EncryptAPIKey(plaintext, userID string) (string, error) {
	nonce := make([]byte, v.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := v.aead.Seal(nonce, nonce, []byte(plaintext), []byte(userID))
	return ciphertextPrefix + base64.StdEncoding.EncodeToString(sealed), nil
}

// DecryptAPIKey reverses EncryptAPIKey.
func (v *Vault) DecryptAPIKey(ciphertext, userID string) (string, error) {
	if !strings.HasPrefix(ciphertext, ciphertextPrefix) {
		return "", ErrInvalidCiphertext
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(ciphertext, ciphertextPrefix))
	if err != nil {
		return "", ErrInvalidCiphertext
	}

	ns := v.aead.NonceSize()
	if len(raw) < ns+v.aead.Overhead() {
		return "", ErrInvalidCiphertext
	}

	plaintext, err := v.aead.Open(nil, raw[:ns], raw[ns:], []byte(userID))
	if err != nil {
		return "", ErrInvalidCiphertext
	}
	return string(plaintext), nil
}

// DecryptKeyForModel decrypts the ciphertext stored for model. An empty ciphertext
// means the key was never configured and is reported without touching the cipher.
func (v *Vault) DecryptKeyForModel(userID, model, ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", apperrors.NewBadRequest(fmt.Sprintf("API key for model %s is not set", model))
	}

	key, err := v.DecryptAPIKey(ciphertext, userID)
	if err != nil {
		return "", apperrors.NewBadRequest(fmt.Sprintf("API key for model %s is not configured", model))
	}
	return key, nil
}
