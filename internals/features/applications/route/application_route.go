package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/soungoolwin/EduBusinessAcademy/internals/features/applications/controller"
)

// ApplicationPublicRoutes: intake submissions from the apply pages.
func ApplicationPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewApplicationController(db)

	api.Post("/investors", ctrl.SubmitInvestor)
	api.Post("/entrepreneurs", ctrl.SubmitEntrepreneur)
}

// ApplicationAdminRoutes: review listings behind the admin gate.
func ApplicationAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewApplicationController(db)

	api.Get("/investors", ctrl.GetAllInvestors)
	api.Get("/entrepreneurs", ctrl.GetAllEntrepreneurs)
}
