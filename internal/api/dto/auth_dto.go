package dto

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/spec-kit/agrilink/internal/domain"
)

var validate = validator.New()

// SignupRequest payload for farmer self-registration.
type SignupRequest struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	Phone           string `json:"phone"`
	District        string `json:"district"`
}

// Validate runs format checks on the signup payload.
func (r SignupRequest) Validate() error {
	return validate.Struct(r)
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        string      `json:"id"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	Phone     string      `json:"phone,omitempty"`
	District  string      `json:"district,omitempty"`
}

// NewUserResponse maps the domain model, dropping credentials.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
		Phone:     user.Phone,
		District:  user.District,
	}
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Message   string       `json:"message"`
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}
