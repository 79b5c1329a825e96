package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/agrilink/internal/api/dto"
	"github.com/spec-kit/agrilink/internal/service"
	apperrors "github.com/spec-kit/agrilink/pkg/util"
)

// AuthHandler exposes signup, login and logout.
type AuthHandler struct {
	auth         *service.AuthService
	cookieName   string
	secureCookie bool
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(authService *service.AuthService, cookieName string, secureCookie bool) *AuthHandler {
	return &AuthHandler{auth: authService, cookieName: cookieName, secureCookie: secureCookie}
}

// Signup handles POST /api/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if missing, ok := apperrors.FirstMissingField(map[string]any{
		"firstName":       req.FirstName,
		"lastName":        req.LastName,
		"email":           req.Email,
		"password":        req.Password,
		"confirmPassword": req.ConfirmPassword,
	}, []string{"firstName", "lastName", "email", "password", "confirmPassword"}); ok {
		return apperrors.NewValidationError(missing+" is required", nil)
	}
	if req.Password != req.ConfirmPassword {
		return apperrors.NewValidationError("passwords do not match", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("invalid signup details", nil)
	}

	if _, err := h.auth.Signup(c.Context(), service.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
		District:  req.District,
	}); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"message": "account created"})
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	user, token, exp, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Expires:  exp,
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	})
	return c.JSON(dto.LoginResponse{
		Message:   "login successful",
		User:      dto.NewUserResponse(user),
		Token:     token,
		ExpiresAt: exp,
	})
}

// Logout handles POST /api/logout by expiring the identity cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	})
	return c.JSON(fiber.Map{"message": "logged out"})
}
