package handlers

//go:generate mockgen -source=user.go -destination=mock_user.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-expense-note/internal/logger"
	"github.com/sbilibin2017/gw-expense-note/internal/models"
)

// UserManager defines the profile operations the service must implement.
type UserManager interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, in models.UpdateUserInput) (*models.User, error)
}

// SecurityQuestionLister returns the questions offered at registration.
type SecurityQuestionLister interface {
	SecurityQuestions() []string
}

// SecurityQuestionsResponse lists the selectable security questions
// swagger:model SecurityQuestionsResponse
type SecurityQuestionsResponse struct {
	Questions []string `json:"questions"`
}

// NewGetUserHandler returns an HTTP handler for the current user's profile.
// @Summary Get current user
// @Tags users
// @Produce json
// @Success 200 {object} models.UserResponse "User profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users [get]
// @Security BearerAuth
func NewGetUserHandler(svc UserManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokener)
		if claims == nil {
			return
		}

		user, err := svc.GetUser(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.NewUserResponse(user))
	}
}

// NewUpdateUserHandler returns an HTTP handler that partially updates the current user.
// @Summary Update current user
// @Description Accepts a JSON body or a multipart form with an optional "image" file. Absent fields are left unchanged.
// @Tags users
// @Accept json
// @Accept mpfd
// @Produce json
// @Param updateRequest body models.UpdateUserInput true "Fields to change"
// @Param image formData file false "Profile picture"
// @Success 200 {object} models.UserResponse "Updated profile"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users [put]
// @Security BearerAuth
func NewUpdateUserHandler(svc UserManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokener)
		if claims == nil {
			return
		}

		var in models.UpdateUserInput
		if isMultipart(r) {
			if !parseMultipart(w, r) {
				return
			}
			in = models.UpdateUserInput{
				Username:  formString(r, "username"),
				Email:     formString(r, "email"),
				FirstName: formString(r, "firstName"),
				LastName:  formString(r, "lastName"),
				Password:  formString(r, "password"),
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

		user, err := svc.UpdateUser(r.Context(), claims.UserID, in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.NewUserResponse(user))
	}
}

// NewSecurityQuestionsHandler returns an HTTP handler listing the security questions.
// @Summary Get list of security questions
// @Tags users
// @Produce json
// @Success 200 {object} handlers.SecurityQuestionsResponse "List of security questions"
// @Router /users/security-questions [get]
func NewSecurityQuestionsHandler(svc SecurityQuestionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, SecurityQuestionsResponse{Questions: svc.SecurityQuestions()})
	}
}
