package handlers

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-expense-note/internal/logger"
	"github.com/sbilibin2017/gw-expense-note/internal/models"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, in models.RegisterInput) (*models.User, string, error)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user account from a multipart form (optional "image" file) or a JSON body. Username uniqueness is checked before email uniqueness. Sets the jwt session cookie.
// @Tags users
// @Accept mpfd
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterInput true "User registration request"
// @Param image formData file false "Profile picture"
// @Success 201 {object} models.AuthResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Username or email already exists / invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/register [post]
func NewRegisterHandler(svc Registerer, cookies SessionCookies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.RegisterInput

		if isMultipart(r) {
			if !parseMultipart(w, r) {
				return
			}
			in = models.RegisterInput{
				Username:         r.FormValue("username"),
				Email:            r.FormValue("email"),
				FirstName:        r.FormValue("firstName"),
				LastName:         r.FormValue("lastName"),
				Password:         r.FormValue("password"),
				SecurityQuestion: r.FormValue("securityQuestion"),
				SecurityAnswer:   r.FormValue("securityAnswer"),
			}
			image, err := formFile(r, "image")
			if err != nil {
				logger.Log.Infow("failed to read profile image", "error", err)
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid image upload"})
				return
			}
			if image != nil {
				in.Image = image.Data
			}
		} else if !decodeJSON(w, r, &in) {
			return
		}

		if !validateInput(w, in) {
			return
		}

		user, token, err := svc.Register(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}

		cookies.SetCookie(w, token)
		writeJSON(w, http.StatusCreated, models.AuthResponse{
			User:  models.NewUserResponse(user),
			Token: token,
		})
	}
}
