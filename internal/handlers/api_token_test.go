package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-expense-note/internal/models"
	"github.com/sbilibin2017/gw-expense-note/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGetAPITokenHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockAPITokenManager(ctrl)
	tk := NewMockTokener(ctrl)

	expectSession(tk, "u-1")
	svc.EXPECT().GetAPITokenStatus(gomock.Any(), "u-1").Return(models.APITokenStatus{
		DefaultModel: models.ModelGemini,
		GeminiKey:    models.KeySet,
		OpenAIKey:    models.KeyUnset,
	}, nil)

	rr := httptest.NewRecorder()
	NewGetAPITokenHandler(svc, tk)(rr, httptest.NewRequest(http.MethodGet, "/api/users/api-token", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, map[string]any{"defaultModel": "GEMINI", "geminiKey": "SET", "openaiKey": "UNSET"}, decodeBody(t, rr))
}

func TestUpdateAPITokenHandler(t *testing.T) {
	model := "OPENAI"
	key := "sk-123"

	tests := []struct {
		name         string
		svcErr       error
		expectedCode int
		expectedKey  string
		expectedVal  string
	}{
		{
			name:         "stored",
			expectedCode: http.StatusOK,
			expectedKey:  "message",
			expectedVal:  "API tokens updated successfully.",
		},
		{
			name:         "invalid model",
			svcErr:       services.ErrInvalidDefaultModel,
			expectedCode: http.StatusBadRequest,
			expectedKey:  "error",
			expectedVal:  "Invalid default model",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockAPITokenManager(ctrl)
			tk := NewMockTokener(ctrl)

			expectSession(tk, "u-1")
			svc.EXPECT().
				UpdateAPIToken(gomock.Any(), "u-1", models.UpdateAPITokenInput{DefaultModel: &model, OpenAIKey: &key}).
				Return(tt.svcErr)

			rr := httptest.NewRecorder()
			NewUpdateAPITokenHandler(svc, tk)(rr, jsonRequest(t, http.MethodPut, "/api/users/api-token",
				map[string]string{"defaultModel": model, "openaiKey": key}))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedVal, decodeBody(t, rr)[tt.expectedKey])
		})
	}
}
