package vault

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// ErrPlainSecret is returned when a secret that was never hashed reaches the database.
var ErrPlainSecret = errors.New("refusing to persist a plaintext secret")

// Secret is either a plaintext value supplied by a caller or a digest loaded from
// storage. The zero value is an empty plaintext secret.
type Secret struct {
	value  string
	hashed bool
}

// Plain wraps caller-supplied plaintext.
func Plain(plaintext string) Secret {
	return Secret{value: plaintext}
}

// Hashed wraps a digest produced by HashSecret.
func Hashed(digest string) Secret {
	return Secret{value: digest, hashed: true}
}

// IsHashed reports whether the secret holds a digest.
func (s Secret) IsHashed() bool {
	return s.hashed
}

// IsZero reports whether the secret holds nothing at all.
func (s Secret) IsZero() bool {
	return s.value == ""
}

// Digest returns the stored digest, or "" for a plaintext secret.
func (s Secret) Digest() string {
	if !s.hashed {
		return ""
	}
	return s.value
}

// Plaintext returns the caller-supplied value, or "" for a hashed secret.
func (s Secret) Plaintext() string {
	if s.hashed {
		return ""
	}
	return s.value
}

// String never prints the underlying value.
func (s Secret) String() string {
	if s.hashed {
		return "[hashed]"
	}
	return "[plain]"
}

// Value implements driver.Valuer. Only digests may be written.
func (s Secret) Value() (driver.Value, error) {
	if !s.hashed {
		return nil, ErrPlainSecret
	}
	return s.value, nil
}

// Scan implements sql.Scanner. Everything read from storage must already be a digest.
func (s *Secret) Scan(src any) error {
	var v string
	switch t := src.(type) {
	case string:
		v = t
	case []byte:
		v = string(t)
	case nil:
		*s = Secret{}
		return nil
	default:
		return fmt.Errorf("unsupported secret column type %T", src)
	}
	if !IsAlreadyHashed(v) {
		return errors.New("stored secret is not in a hashed format")
	}
	*s = Hashed(v)
	return nil
}

// Seal turns a plaintext secret into a hashed one. A secret that is already hashed
// is returned unchanged, so re-saving a loaded record never re-hashes a digest.
func Seal(s Secret) (Secret, error) {
	if s.hashed {
		return s, nil
	}
	digest, err := HashSecret(s.value)
	if err != nil {
		return Secret{}, err
	}
	return Hashed(digest), nil
}
