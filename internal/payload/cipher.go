// Package payload encrypts JSON bodies exchanged with the frontend tier using
// RSA-OAEP-SHA256. Each tier owns a key pair: a body is encrypted with the
// receiver's public key and decrypted with the receiver's private key.
//
// RSA encrypts a single block, so only small bounded payloads (a handful of short
// string fields) fit. Lists and binary data must never go through this package.
package payload

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"os"

	"github.com/sbilibin2017/gw-expense-note/internal/apperrors"
)

var (
	// ErrInvalidPayload is the only error DecryptFromPeer returns.
	ErrInvalidPayload = apperrors.NewBadRequest("Invalid encrypted payload")
	// ErrPayloadTooLarge is returned when a body does not fit into one OAEP block.
	ErrPayloadTooLarge = errors.New("payload exceeds the RSA-OAEP block size")
)

// Envelope is the wire shape that replaces an encrypted body.
type Envelope struct {
	Payload string `json:"payload"`
}

// Cipher holds this tier's private key and the peer's public key.
type Cipher struct {
	private *rsa.PrivateKey
	peer    *rsa.PublicKey
}

// New creates a Cipher from already parsed keys.
func New(private *rsa.PrivateKey, peer *rsa.PublicKey) *Cipher {
	return &Cipher{private: private, peer: peer}
}

// Load reads both PEM files. It is meant to run once at process start.
func Load(privateKeyPath, peerPublicKeyPath string) (*Cipher, error) {
	privPEM, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("read private key %s: %w", privateKeyPath, err)
	}
	private, err := ParsePrivateKey(privPEM)
	if err != nil {
		return nil, fmt.Errorf("parse private key %s: %w", privateKeyPath, err)
	}

	pubPEM, err := os.ReadFile(peerPublicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("read public key %s: %w", peerPublicKeyPath, err)
	}
	peer, err := ParsePublicKey(pubPEM)
	if err != nil {
		return nil, fmt.Errorf("parse public key %s: %w", peerPublicKeyPath, err)
	}

	return New(private, peer), nil
}

// MaxPlaintextSize is the largest body EncryptForPeer accepts.
func (c *Cipher) MaxPlaintextSize() int {
	return c.peer.Size() - 2*sha256.Size - 2
}

// EncryptForPeer serializes v to JSON and encrypts it for the peer tier.
func (c *Cipher) EncryptForPeer(v any) (string, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}
	if len(plaintext) > c.MaxPlaintextSize() {
		return "", ErrPayloadTooLarge
	}

	ciphertext, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, c.peer, plaintext, nil)
	if err != nil {
		return "", fmt.Errorf("encrypt payload: %w", err)
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// DecryptFromPeer decrypts a body the peer encrypted with this tier's public key
// and returns the JSON plaintext. Which step failed is never revealed.
func (c *Cipher) DecryptFromPeer(encoded string) ([]byte, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidPayload
	}

	plaintext, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, c.private, ciphertext, nil)
	if err != nil {
		return nil, ErrInvalidPayload
	}

	if !json.Valid(plaintext) {
		return nil, ErrInvalidPayload
	}
	return plaintext, nil
}

// ParsePrivateKey accepts PKCS#1 and PKCS#8 PEM blocks.
func ParsePrivateKey(data []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.New("no PEM block found")
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("private key is not RSA")
	}
	return key, nil
}

// ParsePublicKey accepts PKIX and PKCS#1 PEM blocks.
func ParsePublicKey(data []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.New("no PEM block found")
	}

	if parsed, err := x509.ParsePKIXPublicKey(block.Bytes); err == nil {
		key, ok := parsed.(*rsa.PublicKey)
		if !ok {
			return nil, errors.New("public key is not RSA")
		}
		return key, nil
	}

	return x509.ParsePKCS1PublicKey(block.Bytes)
}
