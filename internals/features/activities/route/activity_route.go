package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/soungoolwin/EduBusinessAcademy/internals/features/activities/controller"
	"github.com/soungoolwin/EduBusinessAcademy/internals/helpers/storage"
)

// ActivityPublicRoutes: read-only listing for the marketing pages.
func ActivityPublicRoutes(api fiber.Router, db *gorm.DB, up *storage.Uploader) {
	ctrl := controller.NewActivityController(db, up)

	activities := api.Group("/activities")
	activities.Get("/", ctrl.GetAllActivities)
	activities.Get("/:id", ctrl.GetActivity)
}

// ActivityAdminRoutes: write operations behind the admin gate.
func ActivityAdminRoutes(api fiber.Router, db *gorm.DB, up *storage.Uploader) {
	ctrl := controller.NewActivityController(db, up)

	activities := api.Group("/activities")
	activities.Post("/", ctrl.CreateActivity)
	activities.Put("/:id", ctrl.UpdateActivity)
	activities.Delete("/:id", ctrl.DeleteActivity)
}
