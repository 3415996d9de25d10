package models

// RequestPasswordResetInput represents the JSON body for a reset request
// swagger:model RequestPasswordResetInput
type RequestPasswordResetInput struct {
	// required: true
	// example: mike@example.com
	Email string `json:"email" validate:"required,email"`
}

// VerifySecurityQuestionInput represents the JSON body for answer verification
// swagger:model VerifySecurityQuestionInput
type VerifySecurityQuestionInput struct {
	// required: true
	// example: c02d1e8a-7861-4f0c-93f3-ff63b40eb6e8
	Token string `json:"token" validate:"required"`

	// required: true
	// example: Rex
	Answer string `json:"answer" validate:"required"`
}

// ResetPasswordInput represents the JSON body for a password reset
// swagger:model ResetPasswordInput
type ResetPasswordInput struct {
	// required: true
	// example: c02d1e8a-7861-4f0c-93f3-ff63b40eb6e8
	Token string `json:"token" validate:"required"`

	// required: true
	// example: NewP@ssword123
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}
