package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/agrilink/internal/domain"
	apperrors "github.com/spec-kit/agrilink/pkg/util"
)

// RequireRole restricts a route to identities holding one of the allowed
// roles. With no arguments any authenticated identity passes.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.Role]; !exists {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}

// RequireFarmer restricts a route to farmer identities.
func RequireFarmer() fiber.Handler {
	return RequireRole(domain.RoleFarmer)
}

// RequireOfficer restricts a route to officer identities.
func RequireOfficer() fiber.Handler {
	return RequireRole(domain.RoleOfficer)
}
