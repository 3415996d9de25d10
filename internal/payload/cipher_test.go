package payload

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tiers returns the backend and frontend ciphers built from two fresh key pairs.
func tiers(t *testing.T) (backend, frontend *Cipher) {
	t.Helper()
	backendKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	frontendKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	return New(backendKey, &frontendKey.PublicKey), New(frontendKey, &backendKey.PublicKey)
}

type apiTokenStatus struct {
	DefaultModel string `json:"defaultModel"`
	GeminiKey    string `json:"geminiKey"`
	OpenAIKey    string `json:"openaiKey"`
}

func TestCipher_RoundTrip(t *testing.T) {
	backend, frontend := tiers(t)

	in := apiTokenStatus{DefaultModel: "GEMINI", GeminiKey: "SET", OpenAIKey: "UNSET"}
	encoded, err := backend.EncryptForPeer(in)
	require.NoError(t, err)

	plaintext, err := frontend.DecryptFromPeer(encoded)
	require.NoError(t, err)

	var out apiTokenStatus
	require.NoError(t, json.Unmarshal(plaintext, &out))
	assert.Equal(t, in, out)

	// the sender cannot read its own message
	_, err = backend.DecryptFromPeer(encoded)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestCipher_DecryptFailuresAreGeneric(t *testing.T) {
	backend, frontend := tiers(t)

	encoded, err := frontend.EncryptForPeer(map[string]string{"geminiKey": "AIza"})
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	raw[10] ^= 0xff
	tampered := base64.StdEncoding.EncodeToString(raw)

	for name, input := range map[string]string{
		"tampered":    tampered,
		"not base64":  "%%%not-base64%%%",
		"empty":       "",
		"short block": base64.StdEncoding.EncodeToString([]byte("short")),
	} {
		t.Run(name, func(t *testing.T) {
			out, err := backend.DecryptFromPeer(input)
			assert.Nil(t, out)
			assert.Same(t, ErrInvalidPayload, err)
			assert.Equal(t, "Invalid encrypted payload", err.Error())
		})
	}

	plaintext, err := backend.DecryptFromPeer(encoded)
	require.NoError(t, err)
	assert.JSONEq(t, `{"geminiKey":"AIza"}`, string(plaintext))
}

func TestCipher_PayloadTooLarge(t *testing.T) {
	backend, _ := tiers(t)

	assert.Equal(t, 256-66, backend.MaxPlaintextSize())

	_, err := backend.EncryptForPeer(map[string]string{"blob": strings.Repeat("x", 300)})
	assert.ErrorIs(t, err, ErrPayloadTooLarge)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	backendFiles := KeyPairFiles{
		Private: filepath.Join(dir, "backend_private.pem"),
		Public:  filepath.Join(dir, "backend_public.pem"),
	}
	frontendFiles := KeyPairFiles{
		Private: filepath.Join(dir, "frontend_private.pem"),
		Public:  filepath.Join(dir, "frontend_public.pem"),
	}
	require.NoError(t, GenerateKeyPair(backendFiles, 2048))
	require.NoError(t, GenerateKeyPair(frontendFiles, 2048))

	info, err := os.Stat(backendFiles.Private)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	backend, err := Load(backendFiles.Private, frontendFiles.Public)
	require.NoError(t, err)
	frontend, err := Load(frontendFiles.Private, backendFiles.Public)
	require.NoError(t, err)

	encoded, err := frontend.EncryptForPeer(map[string]string{"openaiKey": "sk-1"})
	require.NoError(t, err)
	plaintext, err := backend.DecryptFromPeer(encoded)
	require.NoError(t, err)
	assert.JSONEq(t, `{"openaiKey":"sk-1"}`, string(plaintext))

	_, err = Load(filepath.Join(dir, "missing.pem"), frontendFiles.Public)
	assert.Error(t, err)

	garbage := filepath.Join(dir, "garbage.pem")
	require.NoError(t, os.WriteFile(garbage, []byte("not pem"), 0o600))
	_, err = Load(backendFiles.Private, garbage)
	assert.Error(t, err)
}

func TestParseKeys_PKCS1(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PUBLIC KEY", Bytes: x509.MarshalPKCS1PublicKey(&key.PublicKey)})

	priv, err := ParsePrivateKey(privPEM)
	require.NoError(t, err)
	assert.True(t, key.Equal(priv))

	pub, err := ParsePublicKey(pubPEM)
	require.NoError(t, err)
	assert.True(t, key.PublicKey.Equal(pub))
}
