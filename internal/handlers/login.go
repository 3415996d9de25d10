package handlers

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-expense-note/internal/jwt"
	"github.com/sbilibin2017/gw-expense-note/internal/logger"
	"github.com/sbilibin2017/gw-expense-note/internal/models"
)

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, in models.LoginInput) (*models.User, string, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Login a user
// @Description Authenticates a user by username and password, returns a JWT valid for one hour and sets it as the jwt cookie.
// @Tags users
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginInput true "User login request"
// @Success 200 {object} models.AuthResponse "Successful login"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Invalid credentials"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/login [post]
func NewLoginHandler(svc Loginer, cookies SessionCookies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.LoginInput
		if !decodeJSON(w, r, &in) {
			return
		}
		if !validateInput(w, in) {
			return
		}

		user, token, err := svc.Login(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}

		cookies.SetCookie(w, token)
		writeJSON(w, http.StatusOK, models.AuthResponse{
			User:  models.NewUserResponse(user),
			Token: token,
		})
	}
}

// NewLogoutHandler returns an HTTP handler that clears the session cookie.
// @Summary Log out the current user
// @Tags users
// @Produce json
// @Success 200 {object} handlers.MessageResponse "User successfully logged out"
// @Failure 401 {object} handlers.ErrorResponse "User not logged in"
// @Router /users/logout [post]
func NewLogoutHandler(cookies SessionCookies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(jwt.CookieName); err != nil || c.Value == "" {
			logger.Log.Infow("logout without session cookie")
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "User not logged in"})
			return
		}

		cookies.ClearCookie(w)
		writeJSON(w, http.StatusOK, MessageResponse{Message: "User successfully logged out"})
	}
}
