package controller

import (
	"crypto/subtle"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/soungoolwin/EduBusinessAcademy/internals/configs"
	"github.com/soungoolwin/EduBusinessAcademy/internals/features/auth/session"
	helper "github.com/soungoolwin/EduBusinessAcademy/internals/helpers"
)

type AuthController struct {
	Sessions session.Verifier
}

func NewAuthController(v session.Verifier) *AuthController {
	return &AuthController{Sessions: v}
}

type loginRequest struct {
	Password string `json:"password" validate:"required"`
}

// Login checks the submitted password against the configured admin secret
// and issues the session cookie. ADMIN_PASSWORD_HASH (bcrypt) takes
// precedence over the plain ADMIN_PASSWORD when both are set.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if configs.AdminPassword == "" && configs.AdminPasswordHash == "" {
		log.Println("❌ admin login attempted but no ADMIN_PASSWORD(_HASH) configured")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Admin login is not configured")
	}

	if !passwordMatches(req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid password")
	}

	if err := ctrl.Sessions.Issue(c); err != nil {
		log.Printf("session issue failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to start session")
	}
	return helper.JsonOK(c, "Login successful", nil)
}

func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	ctrl.Sessions.Clear(c)
	return helper.JsonOK(c, "Logged out", nil)
}

func passwordMatches(submitted string) bool {
	if configs.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(configs.AdminPasswordHash), []byte(submitted)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(configs.AdminPassword)) == 1
}
