package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/soungoolwin/EduBusinessAcademy/internals/features/pages/controller"
)

func PagePublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPageController(db)

	pages := api.Group("/pages")
	pages.Get("/:slug", ctrl.GetPage)
}

func PageAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPageController(db)

	pages := api.Group("/pages")
	pages.Put("/:slug", ctrl.UpdatePage)
}
