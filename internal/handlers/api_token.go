package handlers

//go:generate mockgen -source=api_token.go -destination=mock_api_token.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-expense-note/internal/models"
)

// APITokenManager defines the provider credential operations the service must implement.
type APITokenManager interface {
	GetAPITokenStatus(ctx context.Context, userID string) (models.APITokenStatus, error)
	UpdateAPIToken(ctx context.Context, userID string, in models.UpdateAPITokenInput) error
}

// NewGetAPITokenHandler returns an HTTP handler reporting which provider keys are set.
// Mounted under /users/v2 the response is wrapped in an encrypted envelope.
// @Summary Get API token status
// @Description Reports SET or UNSET per provider key. Keys are never returned.
// @Tags users
// @Produce json
// @Success 200 {object} models.APITokenStatus "Token status"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/api-token [get]
// @Security BearerAuth
func NewGetAPITokenHandler(svc APITokenManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokener)
		if claims == nil {
			return
		}

		status, err := svc.GetAPITokenStatus(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, status)
	}
}

// NewUpdateAPITokenHandler returns an HTTP handler storing provider keys and the default model.
// Mounted under /users/v2 the request body is read from an encrypted envelope.
// @Summary Update API tokens for the user
// @Tags users
// @Accept json
// @Produce json
// @Param request body models.UpdateAPITokenInput true "Keys and default model"
// @Success 200 {object} handlers.MessageResponse "API tokens updated successfully."
// @Failure 400 {object} handlers.ErrorResponse "Invalid default model / invalid encrypted payload"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/api-token [put]
// @Security BearerAuth
func NewUpdateAPITokenHandler(svc APITokenManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokener)
		if claims == nil {
			return
		}

		var in models.UpdateAPITokenInput
		if !decodeJSON(w, r, &in) {
			return
		}

		if err := svc.UpdateAPIToken(r.Context(), claims.UserID, in); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "API tokens updated successfully."})
	}
}
