package dto

import (
	"rupeess_backend/internals/features/users/auth/model"
)

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin agent operator user"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse: profil tanpa field password.
type UserResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone,omitempty"`
	Role            string  `json:"role"`
	AgentCode       *string `json:"agentCode,omitempty"`
	OperatorCode    *string `json:"operatorCode,omitempty"`
	IsEmailVerified bool    `json:"isEmailVerified"`
}

func ToUserResponse(u model.UserModel) UserResponse {
	return UserResponse{
		ID:              u.UserID.String(),
		Name:            u.UserName,
		Email:           u.UserEmail,
		Phone:           u.UserPhone,
		Role:            u.UserRole,
		AgentCode:       u.UserAgentCode,
		OperatorCode:    u.UserOperatorCode,
		IsEmailVerified: u.UserIsEmailVerified,
	}
}
