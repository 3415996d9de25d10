package services

//go:generate mockgen -source=credentials.go -destination=mock_credentials.go -package=services

import (
	"context"
	"strings"

	"github.com/sbilibin2017/gw-expense-note/internal/apperrors"
	"github.com/sbilibin2017/gw-expense-note/internal/logger"
	"github.com/sbilibin2017/gw-expense-note/internal/models"
	"github.com/sbilibin2017/gw-expense-note/internal/reporter"
)

// ErrInvalidDefaultModel is returned for a default model outside GEMINI, OPENAI and UNSET.
var ErrInvalidDefaultModel = apperrors.NewBadRequest("Invalid default model")

// APIKeyEncrypter seals provider API keys for storage.
type APIKeyEncrypter interface {
	EncryptAPIKey(plaintext, userID string) (string, error)
}

// CredentialService manages the per-user provider API token.
type CredentialService struct {
	reader    UserReader
	writer    UserWriter
	encrypter APIKeyEncrypter
	reporter  reporter.Reporter
}

// NewCredentialService creates a new CredentialService.
func NewCredentialService(reader UserReader, writer UserWriter, encrypter APIKeyEncrypter, rep reporter.Reporter) *CredentialService {
	if rep == nil {
		rep = reporter.Nop{}
	}
	return &CredentialService{reader: reader, writer: writer, encrypter: encrypter, reporter: rep}
}

// GetAPITokenStatus reports which keys are configured without revealing them.
func (s *CredentialService) GetAPITokenStatus(ctx context.Context, userID string) (status models.APITokenStatus, err error) {
	defer reporter.TrackErrors(ctx, s.reporter, "CredentialService.GetAPITokenStatus", &err)

	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "error", err)
		return models.APITokenStatus{}, err
	}
	if user == nil {
		return models.APITokenStatus{}, ErrUserNotFound
	}
	return models.NewAPITokenStatus(user.APIToken), nil
}

// UpdateAPIToken merges in into the stored token. Keys are encrypted before saving;
// an empty key clears the stored one.
func (s *CredentialService) UpdateAPIToken(ctx context.Context, userID string, in models.UpdateAPITokenInput) (err error) {
	defer reporter.TrackErrors(ctx, s.reporter, "CredentialService.UpdateAPIToken", &err)

	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "error", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	token := models.APIToken{DefaultModel: models.ModelUnset}
	if user.APIToken != nil {
		token = *user.APIToken
	}

	if in.DefaultModel != nil {
		model, ok := models.ParseModel(strings.ToUpper(strings.TrimSpace(*in.DefaultModel)))
		if !ok {
			return ErrInvalidDefaultModel
		}
		token.DefaultModel = model
	}
	if in.GeminiKey != nil {
		if token.GeminiKey, err = s.seal(*in.GeminiKey, userID); err != nil {
			return err
		}
	}
	if in.OpenAIKey != nil {
		if token.OpenAIKey, err = s.seal(*in.OpenAIKey, userID); err != nil {
			return err
		}
	}

	user.APIToken = &token
	if err := s.writer.Update(ctx, user); err != nil {
		logger.Log.Errorw("failed to save API token", "user_id", userID, "error", err)
		return err
	}

	logger.Log.Infow("API token updated", "user_id", userID, "default_model", token.DefaultModel)
	return nil
}

func (s *CredentialService) seal(key, userID string) (string, error) {
	if key == "" {
		return "", nil
	}
	sealed, err := s.encrypter.EncryptAPIKey(key, userID)
	if err != nil {
		logger.Log.Errorw("failed to encrypt API key", "user_id", userID, "error", err)
		return "", err
	}
	return sealed, nil
}
