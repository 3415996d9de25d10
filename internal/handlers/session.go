package handlers

//go:generate mockgen -source=session.go -destination=mock_session.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-expense-note/internal/jwt"
	"github.com/sbilibin2017/gw-expense-note/internal/logger"
)

// Tokener reads the session of an authenticated request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SessionCookies writes and clears the session cookie.
type SessionCookies interface {
	SetCookie(w http.ResponseWriter, token string)
	ClearCookie(w http.ResponseWriter)
}

// claimsFromRequest writes a 401 response and returns nil when the request carries no valid session.
func claimsFromRequest(w http.ResponseWriter, r *http.Request, tokener Tokener) *jwt.Claims {
	ctx := r.Context()

	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Infow("unauthorized request: missing token", "path", r.URL.Path)
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil
	}

	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Infow("failed to parse token claims", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil
	}
	return claims
}
