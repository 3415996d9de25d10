package handlers

//go:generate mockgen -source=recovery.go -destination=mock_recovery.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-expense-note/internal/models"
)

// PasswordRecoverer defines the password reset operations the service must implement.
type PasswordRecoverer interface {
	RequestReset(ctx context.Context, email string) error
	GetSecurityQuestion(ctx context.Context, token string) (string, error)
	VerifyAnswer(ctx context.Context, token, answer string) (bool, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// SecurityQuestionResponse carries the question bound to a reset token
// swagger:model SecurityQuestionResponse
type SecurityQuestionResponse struct {
	// default: What was your childhood nickname?
	Question string `json:"question"`
}

// VerifyAnswerResponse reports whether the security answer matched
// swagger:model VerifyAnswerResponse
type VerifyAnswerResponse struct {
	Verified bool `json:"verified"`
}

// NewRequestPasswordResetHandler returns an HTTP handler that mails a reset link.
// @Summary Request a password reset
// @Tags users
// @Accept json
// @Produce json
// @Param request body models.RequestPasswordResetInput true "Account email"
// @Success 200 {object} handlers.MessageResponse "Password reset link sent to email"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Router /users/request-password-reset [post]
func NewRequestPasswordResetHandler(svc PasswordRecoverer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.RequestPasswordResetInput
		if !decodeJSON(w, r, &in) || !validateInput(w, in) {
			return
		}

		if err := svc.RequestReset(r.Context(), in.Email); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Password reset link sent to email"})
	}
}

// NewGetSecurityQuestionHandler returns an HTTP handler resolving the question for a reset token.
// @Summary Get user-specific security question for password reset
// @Tags users
// @Produce json
// @Param token query string true "The token sent to the user for password reset"
// @Success 200 {object} handlers.SecurityQuestionResponse "Security question retrieved successfully"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired token"
// @Router /users/get-security-question [get]
func NewGetSecurityQuestionHandler(svc PasswordRecoverer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		question, err := svc.GetSecurityQuestion(r.Context(), r.URL.Query().Get("token"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, SecurityQuestionResponse{Question: question})
	}
}

// NewVerifySecurityQuestionHandler returns an HTTP handler checking a security answer.
// @Summary Verify the security answer for a reset token
// @Tags users
// @Accept json
// @Produce json
// @Param request body models.VerifySecurityQuestionInput true "Token and answer"
// @Success 200 {object} handlers.VerifyAnswerResponse "Verification result"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired token"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Router /users/verify-security-question [post]
func NewVerifySecurityQuestionHandler(svc PasswordRecoverer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.VerifySecurityQuestionInput
		if !decodeJSON(w, r, &in) || !validateInput(w, in) {
			return
		}

		ok, err := svc.VerifyAnswer(r.Context(), in.Token, in.Answer)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, VerifyAnswerResponse{Verified: ok})
	}
}

// NewResetPasswordHandler returns an HTTP handler replacing the password of a reset token holder.
// @Summary Reset the password
// @Tags users
// @Accept json
// @Produce json
// @Param request body models.ResetPasswordInput true "Token and new password"
// @Success 200 {object} handlers.MessageResponse "Password successfully reset"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired token"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Router /users/reset-password [post]
func NewResetPasswordHandler(svc PasswordRecoverer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.ResetPasswordInput
		if !decodeJSON(w, r, &in) || !validateInput(w, in) {
			return
		}

		if err := svc.ResetPassword(r.Context(), in.Token, in.NewPassword); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Password successfully reset"})
	}
}
