package dto

import "github.com/GlebRadaev/globalfund/internal/domain"

type RegisterRequestDTO struct {
	Name     string `json:"name" validate:"required" example:"Ayesha Khan"`
	Email    string `json:"email" validate:"required,email" example:"ayesha@example.com"`
	Password string `json:"password" validate:"required,min=6" example:"secret123"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,max=32" example:"+92 300 1234567"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"ayesha@example.com"`
	Password string `json:"password" validate:"required" example:"secret123"`
}

type ForgotPasswordRequestDTO struct {
	Email string `json:"email" validate:"required,email" example:"ayesha@example.com"`
}

type ResetPasswordRequestDTO struct {
	Email       string `json:"email" validate:"required,email" example:"ayesha@example.com"`
	OTP         string `json:"otp" validate:"required" example:"A1B2C3"`
	NewPassword string `json:"newPassword" validate:"required,min=6" example:"newsecret123"`
}

type ChangePasswordRequestDTO struct {
	CurrentPassword string `json:"currentPassword" validate:"required" example:"secret123"`
	NewPassword     string `json:"newPassword" validate:"required,min=6" example:"newsecret123"`
}

// UpdateUserRequestDTO is decoded loosely: IsAdmin stays untyped so a
// non-boolean value can be reported instead of failing the whole body.
type UpdateUserRequestDTO struct {
	Name     *string `json:"name,omitempty" example:"Ayesha Khan"`
	Email    *string `json:"email,omitempty" example:"ayesha@example.com"`
	Phone    *string `json:"phone,omitempty" example:"03001234567"`
	Password *string `json:"password,omitempty" example:"secret123"`
	IsAdmin  any     `json:"isAdmin,omitempty" swaggertype:"boolean" example:"true"`
}

type UserResponseDTO struct {
	ID      string `json:"_id" example:"4b6f1c9e-3a34-4c7e-9d0e-2f5c1b0a9e11"`
	Name    string `json:"name" example:"Ayesha Khan"`
	Email   string `json:"email" example:"ayesha@example.com"`
	Phone   string `json:"phone,omitempty" example:"03001234567"`
	IsAdmin bool   `json:"isAdmin" example:"false"`
	Token   string `json:"token,omitempty" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

func NewUserResponse(u *domain.User, token string) UserResponseDTO {
	return UserResponseDTO{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Phone:   u.Phone,
		IsAdmin: u.IsAdmin,
		Token:   token,
	}
}

type MessageResponseDTO struct {
	Message string `json:"message" example:"Campaign removed successfully"`
}
