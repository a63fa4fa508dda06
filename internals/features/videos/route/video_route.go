package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/soungoolwin/EduBusinessAcademy/internals/features/videos/controller"
)

func VideoPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewVideoController(db)

	videos := api.Group("/videos")
	videos.Get("/", ctrl.GetAllVideos)
}

func VideoAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewVideoController(db)

	videos := api.Group("/videos")
	videos.Post("/", ctrl.CreateVideo)
	videos.Delete("/:id", ctrl.DeleteVideo)
}
