package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("Food")
	assert.True(t, ok)
	assert.Equal(t, CategoryFood, c)

	_, ok = ParseCategory("food")
	assert.False(t, ok)
	_, ok = ParseCategory("")
	assert.False(t, ok)
}

func TestParseModel(t *testing.T) {
	m, ok := ParseModel("OPENAI")
	assert.True(t, ok)
	assert.Equal(t, ModelOpenAI, m)

	_, ok = ParseModel("CLAUDE")
	assert.False(t, ok)
}

func TestAPIToken_KeyFor(t *testing.T) {
	var missing *APIToken
	assert.Equal(t, "", missing.KeyFor(ModelGemini))

	token := &APIToken{DefaultModel: ModelGemini, GeminiKey: "v1:g", OpenAIKey: ""}
	assert.Equal(t, "v1:g", token.KeyFor(ModelGemini))
	assert.Equal(t, "", token.KeyFor(ModelOpenAI))
	assert.Equal(t, "", token.KeyFor(ModelUnset))
}

func TestNewAPITokenStatus(t *testing.T) {
	assert.Equal(t,
		APITokenStatus{DefaultModel: ModelUnset, GeminiKey: KeyUnset, OpenAIKey: KeyUnset},
		NewAPITokenStatus(nil))

	assert.Equal(t,
		APITokenStatus{DefaultModel: ModelOpenAI, GeminiKey: KeyUnset, OpenAIKey: KeySet},
		NewAPITokenStatus(&APIToken{DefaultModel: ModelOpenAI, OpenAIKey: "v1:o"}))
}

func TestUser_ResetTokenValid(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	token := "t"
	expiry := now.Add(15 * time.Minute)

	u := &User{}
	assert.False(t, u.ResetTokenValid(now))

	u.PasswordResetToken = &token
	u.PasswordResetTokenExpiry = &expiry
	assert.True(t, u.ResetTokenValid(now.Add(10*time.Minute)))
	assert.True(t, u.ResetTokenValid(expiry))
	assert.False(t, u.ResetTokenValid(now.Add(20*time.Minute)))
}

func TestNewReceiptResponse(t *testing.T) {
	r := &Receipt{
		ID:           "r1",
		UserID:       "u1",
		MerchantName: "KFC",
		Date:         time.Date(2023, 10, 20, 0, 0, 0, 0, time.UTC),
		TotalCost:    19.99,
		Category:     CategoryFood,
		Image:        []byte{1, 2, 3},
	}

	resp := NewReceiptResponse(r)
	assert.Equal(t, "2023-10-20T00:00:00.000Z", resp.Date)
	assert.Equal(t, "AQID", resp.Image)
	assert.NotNil(t, resp.ItemizedList)
	assert.Empty(t, resp.ItemizedList)
	assert.Equal(t, "u1", resp.UserID)
}

func TestNewUserResponse(t *testing.T) {
	u := &User{ID: "u1", Username: "mike", Email: "m@example.com", Image: []byte("png")}
	resp := NewUserResponse(u)
	assert.Equal(t, "cG5n", resp.Image)
	assert.Equal(t, u.Identity(), Identity{ID: "u1", Username: "mike", Email: "m@example.com"})
}
