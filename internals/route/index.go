// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityRoute "github.com/soungoolwin/EduBusinessAcademy/internals/features/activities/route"
	applicationRoute "github.com/soungoolwin/EduBusinessAcademy/internals/features/applications/route"
	authRoute "github.com/soungoolwin/EduBusinessAcademy/internals/features/auth/route"
	"github.com/soungoolwin/EduBusinessAcademy/internals/features/auth/session"
	pageRoute "github.com/soungoolwin/EduBusinessAcademy/internals/features/pages/route"
	videoRoute "github.com/soungoolwin/EduBusinessAcademy/internals/features/videos/route"
	"github.com/soungoolwin/EduBusinessAcademy/internals/helpers/storage"
	"github.com/soungoolwin/EduBusinessAcademy/internals/middlewares"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, up *storage.Uploader, verifier session.Verifier) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC routes...")
	public := app.Group("/api")

	authRoute.AuthRoutes(public, verifier)
	activityRoute.ActivityPublicRoutes(public, db, up)
	videoRoute.VideoPublicRoutes(public, db)
	applicationRoute.ApplicationPublicRoutes(public, db)
	pageRoute.PagePublicRoutes(public, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN routes...")
	admin := app.Group("/api", middlewares.AdminGate(verifier))

	activityRoute.ActivityAdminRoutes(admin, db, up)
	videoRoute.VideoAdminRoutes(admin, db)
	applicationRoute.ApplicationAdminRoutes(admin, db)
	pageRoute.PageAdminRoutes(admin, db)
}
