// Package vault protects user secrets: one-way hashing of passwords and security
// answers, and reversible encryption of third-party API keys.
package vault

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// ErrMalformedHash is returned when a stored hash cannot be decoded.
var ErrMalformedHash = errors.New("malformed password hash")

type argonParams struct {
	memory  uint32
	time    uint32
	threads uint8
	keyLen  uint32
	saltLen uint32
}

var defaultParams = argonParams{
	memory:  64 * 1024,
	time:    1,
	threads: 4,
	keyLen:  32,
	saltLen: 16,
}

// Bounds accepted when decoding a stored hash. Anything outside them is
// malformed rather than expensive: argon2 panics on zero time or threads and
// allocates memory KiB up front.
const (
	maxArgonMemory = 4 * 64 * 1024
	minSaltLen     = 8
	maxSaltLen     = 64
	minKeyLen      = 4
	maxKeyLen      = 64
)

const (
	argon2idPrefix = "$argon2id$"
	argon2iPrefix  = "$argon2i$"
)

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// HashSecret hashes plaintext with argon2id and returns the PHC-encoded digest.
func HashSecret(plaintext string) (string, error) {
	salt := make([]byte, defaultParams.saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	p := defaultParams
	key := argon2.IDKey([]byte(plaintext), salt, p.time, p.memory, p.threads, p.keyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.memory, p.time, p.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// VerifySecret checks candidate against hash. A mismatch is (false, nil); only an
// undecodable hash produces an error.
func VerifySecret(hash, candidate string) (bool, error) {
	if isBcrypt(hash) {
		err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate))
		switch {
		case err == nil:
			return true, nil
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, nil
		default:
			return false, fmt.Errorf("%w: %v", ErrMalformedHash, err)
		}
	}

	decoded, err := decodeArgon2(hash)
	if err != nil {
		return false, err
	}

	var key []byte
	if decoded.variant == "argon2id" {
		key = argon2.IDKey([]byte(candidate), decoded.salt, decoded.params.time, decoded.params.memory, decoded.params.threads, uint32(len(decoded.key)))
	} else {
		key = argon2.Key([]byte(candidate), decoded.salt, decoded.params.time, decoded.params.memory, decoded.params.threads, uint32(len(decoded.key)))
	}

	return subtle.ConstantTimeCompare(key, decoded.key) == 1, nil
}

// IsAlreadyHashed reports whether value carries a known hash format marker.
func IsAlreadyHashed(value string) bool {
	return strings.HasPrefix(value, argon2idPrefix) ||
		strings.HasPrefix(value, argon2iPrefix) ||
		isBcrypt(value)
}

// NeedsRehash reports whether a valid hash was produced by an older scheme or with
// weaker parameters than the current ones.
func NeedsRehash(hash string) bool {
	if isBcrypt(hash) {
		return true
	}
	decoded, err := decodeArgon2(hash)
	if err != nil {
		return false
	}
	return decoded.variant != "argon2id" ||
		decoded.params.memory != defaultParams.memory ||
		decoded.params.time != defaultParams.time ||
		decoded.params.threads != defaultParams.threads ||
		uint32(len(decoded.key)) != defaultParams.keyLen
}

// NormalizeAnswer makes security answers case-insensitive.
func NormalizeAnswer(answer string) string {
	return strings.ToLower(answer)
}

func isBcrypt(value string) bool {
	for _, p := range bcryptPrefixes {
		if strings.HasPrefix(value, p) {
			return true
		}
	}
	return false
}

type argon2Hash struct {
	variant string
	params  argonParams
	salt    []byte
	key     []byte
}

func decodeArgon2(hash string) (*argon2Hash, error) {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[0] != "" {
		return nil, ErrMalformedHash
	}

	variant := parts[1]
	if variant != "argon2id" && variant != "argon2i" {
		return nil, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, ErrMalformedHash
	}

	var p argonParams
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return nil, ErrMalformedHash
	}

	if p.time < 1 || p.threads < 1 || p.memory < 8*uint32(p.threads) || p.memory > maxArgonMemory {
		return nil, ErrMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) < minSaltLen || len(salt) > maxSaltLen {
		return nil, ErrMalformedHash
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) < minKeyLen || len(key) > maxKeyLen {
		return nil, ErrMalformedHash
	}

	return &argon2Hash{variant: variant, params: p, salt: salt, key: key}, nil
}
