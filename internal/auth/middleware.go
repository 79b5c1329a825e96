package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/agrilink/internal/domain"
	apperrors "github.com/spec-kit/agrilink/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller. It is derived purely from
// verified token claims; handlers trust it without re-verifying.
type Principal struct {
	SubjectID string
	Email     string
	Role      domain.Role
}

// Middleware validates bearer tokens and stores the principal in locals.
type Middleware struct {
	tokens     *TokenManager
	cookieName string
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager, cookieName string) *Middleware {
	return &Middleware{tokens: tokens, cookieName: cookieName}
}

// Handle enforces authentication for protected routes. The Authorization
// header takes precedence over the token cookie when both are present.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	raw := m.extractToken(c)
	if raw == "" {
		return apperrors.NewUnauthorized("authentication required")
	}

	claims, err := m.tokens.ParseToken(raw)
	if err != nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if !claims.Role.Valid() {
		return apperrors.NewInternalError(domain.ErrInvalidRole)
	}

	c.Locals(principalKey, &Principal{
		SubjectID: claims.SubjectID,
		Email:     claims.Email,
		Role:      claims.Role,
	})
	return c.Next()
}

func (m *Middleware) extractToken(c *fiber.Ctx) string {
	if header := c.Get("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return c.Cookies(m.cookieName)
}

// PrincipalFromContext retrieves the authenticated identity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
