package models

// Model names the OCR provider a user selected.
type Model string

const (
	ModelGemini Model = "GEMINI"
	ModelOpenAI Model = "OPENAI"
	ModelUnset  Model = "UNSET"
)

// ParseModel returns the Model named by s.
func ParseModel(s string) (Model, bool) {
	switch m := Model(s); m {
	case ModelGemini, ModelOpenAI, ModelUnset:
		return m, true
	}
	return "", false
}

// Key status values reported instead of the keys themselves.
const (
	KeySet   = "SET"
	KeyUnset = "UNSET"
)

// APIToken holds the user's provider selection and encrypted provider keys.
// Keys are ciphertexts produced by the vault or empty when not configured.
type APIToken struct {
	DefaultModel Model
	GeminiKey    string
	OpenAIKey    string
}

// KeyFor returns the stored ciphertext for model, or "" when none is stored.
func (t *APIToken) KeyFor(model Model) string {
	if t == nil {
		return ""
	}
	switch model {
	case ModelGemini:
		return t.GeminiKey
	case ModelOpenAI:
		return t.OpenAIKey
	}
	return ""
}

// APITokenStatus reports which keys are configured without revealing them
// swagger:model APITokenStatus
type APITokenStatus struct {
	// example: GEMINI
	DefaultModel Model `json:"defaultModel"`

	// example: SET
	GeminiKey string `json:"geminiKey"`

	// example: UNSET
	OpenAIKey string `json:"openaiKey"`
}

// NewAPITokenStatus builds the status view of t. A nil token reports everything unset.
func NewAPITokenStatus(t *APIToken) APITokenStatus {
	status := APITokenStatus{DefaultModel: ModelUnset, GeminiKey: KeyUnset, OpenAIKey: KeyUnset}
	if t == nil {
		return status
	}
	if t.DefaultModel != "" {
		status.DefaultModel = t.DefaultModel
	}
	if t.GeminiKey != "" {
		status.GeminiKey = KeySet
	}
	if t.OpenAIKey != "" {
		status.OpenAIKey = KeySet
	}
	return status
}

// UpdateAPITokenInput carries plaintext keys. Nil fields keep their stored value.
// swagger:model UpdateAPITokenInput
type UpdateAPITokenInput struct {
	// example: GEMINI
	DefaultModel *string `json:"defaultModel,omitempty"`

	// example: gemini_api_key
	GeminiKey *string `json:"geminiKey,omitempty"`

	// example: openai_api_key
	OpenAIKey *string `json:"openaiKey,omitempty"`
}
