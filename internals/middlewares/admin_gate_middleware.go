package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/soungoolwin/EduBusinessAcademy/internals/features/auth/session"
	helper "github.com/soungoolwin/EduBusinessAcademy/internals/helpers"
)

// AdminGate lets a request through only when the session cookie verifies.
// API calls get a 401 JSON; dashboard page requests redirect to the login
// page instead.
func AdminGate(verifier session.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if verifier.Verify(c) {
			return c.Next()
		}
		if strings.HasPrefix(c.Path(), "/api/") {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Admin session required")
		}
		return c.Redirect("/admin", fiber.StatusFound)
	}
}
