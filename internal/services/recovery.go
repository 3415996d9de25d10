package services

//go:generate mockgen -source=recovery.go -destination=mock_recovery.go -package=services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-note/internal/apperrors"
	"github.com/sbilibin2017/gw-expense-note/internal/logger"
	"github.com/sbilibin2017/gw-expense-note/internal/models"
	"github.com/sbilibin2017/gw-expense-note/internal/reporter"
	"github.com/sbilibin2017/gw-expense-note/internal/vault"
)

// ResetTokenTTL is how long a password reset token stays valid.
const ResetTokenTTL = 15 * time.Minute

const (
	resetRequestSubject    = "ExpenseNote - Password Reset Request"
	passwordChangedSubject = "ExpenseNote - Password Changed"
	passwordChangedBody    = "Your password has been successfully changed."
)

// ErrInvalidResetToken is returned for unknown, cleared or expired reset tokens.
var ErrInvalidResetToken = apperrors.NewBadRequest("Invalid or expired token")

// RecoveryUserReader looks users up for the recovery flow.
type RecoveryUserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByResetToken(ctx context.Context, token string) (*models.User, error)
}

// Mailer delivers plain text email.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// RecoveryOption configures a PasswordRecoveryService.
type RecoveryOption func(*PasswordRecoveryService)

// WithRecoveryClock overrides the time source used for token expiry.
func WithRecoveryClock(now func() time.Time) RecoveryOption {
	return func(s *PasswordRecoveryService) {
		s.now = now
	}
}

// WithTokenGenerator overrides how reset tokens are minted.
func WithTokenGenerator(gen func() string) RecoveryOption {
	return func(s *PasswordRecoveryService) {
		s.newToken = gen
	}
}

// PasswordRecoveryService drives the token and security question password reset.
type PasswordRecoveryService struct {
	reader      RecoveryUserReader
	writer      UserWriter
	mailer      Mailer
	frontendURL string
	reporter    reporter.Reporter
	now         func() time.Time
	newToken    func() string
}

// NewPasswordRecoveryService creates a new PasswordRecoveryService. frontendURL is the
// base of the reset link put into emails.
func NewPasswordRecoveryService(
	reader RecoveryUserReader,
	writer UserWriter,
	mailer Mailer,
	frontendURL string,
	rep reporter.Reporter,
	opts ...RecoveryOption,
) *PasswordRecoveryService {
	if rep == nil {
		rep = reporter.Nop{}
	}
	s := &PasswordRecoveryService{
		reader:      reader,
		writer:      writer,
		mailer:      mailer,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		reporter:    rep,
		now:         time.Now,
		newToken:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RequestReset issues a fresh reset token for the user with email and mails the link.
// A previously issued token is replaced.
func (s *PasswordRecoveryService) RequestReset(ctx context.Context, email string) (err error) {
	defer reporter.TrackErrors(ctx, s.reporter, "PasswordRecoveryService.RequestReset", &err)

	user, err := s.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user by email", "error", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	token := s.newToken()
	expiry := s.now().Add(ResetTokenTTL)
	user.PasswordResetToken = &token
	user.PasswordResetTokenExpiry = &expiry

	if err := s.writer.Update(ctx, user); err != nil {
		logger.Log.Errorw("failed to store reset token", "user_id", user.ID, "error", err)
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, token)
	s.send(ctx, user, resetRequestSubject, "Click the link to reset your password: "+link)
	return nil
}

// GetSecurityQuestion returns the question of the user holding token.
func (s *PasswordRecoveryService) GetSecurityQuestion(ctx context.Context, token string) (question string, err error) {
	defer reporter.TrackErrors(ctx, s.reporter, "PasswordRecoveryService.GetSecurityQuestion", &err)

	user, err := s.userByToken(ctx, token)
	if err != nil {
		return "", err
	}
	return user.SecurityQuestion, nil
}

// VerifyAnswer checks answer against the stored one, ignoring case. The token is left intact.
func (s *PasswordRecoveryService) VerifyAnswer(ctx context.Context, token, answer string) (ok bool, err error) {
	defer reporter.TrackErrors(ctx, s.reporter, "PasswordRecoveryService.VerifyAnswer", &err)

	user, err := s.userByToken(ctx, token)
	if err != nil {
		return false, err
	}

	ok, err = vault.VerifySecret(user.SecurityAnswer.Digest(), vault.NormalizeAnswer(answer))
	if err != nil {
		logger.Log.Errorw("failed to verify security answer", "user_id", user.ID, "error", err)
		return false, err
	}
	return ok, nil
}

// ResetPassword replaces the password of the user holding token and consumes the token.
func (s *PasswordRecoveryService) ResetPassword(ctx context.Context, token, newPassword string) (err error) {
	defer reporter.TrackErrors(ctx, s.reporter, "PasswordRecoveryService.ResetPassword", &err)

	user, err := s.userByToken(ctx, token)
	if err != nil {
		return err
	}

	user.Password = vault.Plain(newPassword)
	user.PasswordResetToken = nil
	user.PasswordResetTokenExpiry = nil

	if err := s.writer.Update(ctx, user); err != nil {
		logger.Log.Errorw("failed to reset password", "user_id", user.ID, "error", err)
		return err
	}

	s.send(ctx, user, passwordChangedSubject, passwordChangedBody)
	return nil
}

func (s *PasswordRecoveryService) userByToken(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrInvalidResetToken
	}
	user, err := s.reader.GetByResetToken(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to get user by reset token", "error", err)
		return nil, err
	}
	if user == nil || !user.ResetTokenValid(s.now()) {
		return nil, ErrInvalidResetToken
	}
	return user, nil
}

// send delivers mail on a best effort basis. Failures are logged and never fail the caller.
func (s *PasswordRecoveryService) send(ctx context.Context, user *models.User, subject, body string) {
	if s.mailer == nil {
		logger.Log.Warnw("mailer not configured, skipping email", "user_id", user.ID, "subject", subject)
		return
	}
	if err := s.mailer.Send(ctx, user.Email, subject, body); err != nil {
		logger.Log.Errorw("failed to send email", "user_id", user.ID, "subject", subject, "error", err)
		return
	}
	logger.Log.Infow("email sent", "user_id", user.ID, "subject", subject)
}
