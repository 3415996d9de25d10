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

func TestGetUserHandler(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(s *MockUserManager, tk *MockTokener)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			setup: func(s *MockUserManager, tk *MockTokener) {
				expectSession(tk, "u-1")
				s.EXPECT().GetUser(gomock.Any(), "u-1").Return(&models.User{ID: "u-1", Username: "alice"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "no session",
			setup: func(_ *MockUserManager, tk *MockTokener) {
				expectNoSession(tk)
			},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "Unauthorized",
		},
		{
			name: "user gone",
			setup: func(s *MockUserManager, tk *MockTokener) {
				expectSession(tk, "u-1")
				s.EXPECT().GetUser(gomock.Any(), "u-1").Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  "User not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockUserManager(ctrl)
			tk := NewMockTokener(ctrl)
			tt.setup(svc, tk)

			rr := httptest.NewRecorder()
			NewGetUserHandler(svc, tk)(rr, httptest.NewRequest(http.MethodGet, "/api/users", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			resp := decodeBody(t, rr)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, resp["error"])
				return
			}
			assert.Equal(t, "alice", resp["username"])
			assert.NotContains(t, resp, "password")
		})
	}
}

func TestUpdateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockUserManager(ctrl)
	tk := NewMockTokener(ctrl)

	first := "Alicia"
	expectSession(tk, "u-1")
	svc.EXPECT().
		UpdateUser(gomock.Any(), "u-1", models.UpdateUserInput{FirstName: &first}).
		Return(&models.User{ID: "u-1", FirstName: first}, nil)

	rr := httptest.NewRecorder()
	NewUpdateUserHandler(svc, tk)(rr, jsonRequest(t, http.MethodPut, "/api/users", map[string]string{"firstName": first}))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Alicia", decodeBody(t, rr)["firstName"])

	expectSession(tk, "u-1")
	rr = httptest.NewRecorder()
	NewUpdateUserHandler(svc, tk)(rr, jsonRequest(t, http.MethodPut, "/api/users", map[string]string{"email": "not-an-email"}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSecurityQuestionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockSecurityQuestionLister(ctrl)
	svc.EXPECT().SecurityQuestions().Return([]string{"Q1", "Q2"})

	rr := httptest.NewRecorder()
	NewSecurityQuestionsHandler(svc)(rr, httptest.NewRequest(http.MethodGet, "/api/users/security-questions", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []any{"Q1", "Q2"}, decodeBody(t, rr)["questions"])
}
