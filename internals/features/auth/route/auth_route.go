package route

import (
	"github.com/gofiber/fiber/v2"

	"github.com/soungoolwin/EduBusinessAcademy/internals/features/auth/controller"
	"github.com/soungoolwin/EduBusinessAcademy/internals/features/auth/session"
	"github.com/soungoolwin/EduBusinessAcademy/internals/middlewares"
)

func AuthRoutes(api fiber.Router, verifier session.Verifier) {
	ctrl := controller.NewAuthController(verifier)

	auth := api.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/logout", ctrl.Logout)
}
