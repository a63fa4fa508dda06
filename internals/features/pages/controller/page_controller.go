package controller

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityDTO "github.com/soungoolwin/EduBusinessAcademy/internals/features/activities/dto"
	activityModel "github.com/soungoolwin/EduBusinessAcademy/internals/features/activities/model"
	"github.com/soungoolwin/EduBusinessAcademy/internals/features/pages/dto"
	"github.com/soungoolwin/EduBusinessAcademy/internals/features/pages/model"
	videoDTO "github.com/soungoolwin/EduBusinessAcademy/internals/features/videos/dto"
	videoModel "github.com/soungoolwin/EduBusinessAcademy/internals/features/videos/model"
	helper "github.com/soungoolwin/EduBusinessAcademy/internals/helpers"
)

const homeRecentLimit = 3

type PageController struct {
	DB *gorm.DB
}

func NewPageController(db *gorm.DB) *PageController {
	return &PageController{DB: db}
}

// 🔍 Page content by slug. Home also carries the most recent activities and
// videos so the landing page is a single request.
func (ctrl *PageController) GetPage(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var page model.PageModel
	if err := ctrl.DB.First(&page, "page_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Page not found")
		}
		log.Printf("fetch page failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch page")
	}

	out := dto.ToPageDTO(page)

	if slug == model.SlugHome {
		var activities []activityModel.ActivityModel
		if err := ctrl.DB.
			Preload("Images", func(db *gorm.DB) *gorm.DB {
				return db.Order("image_order ASC")
			}).
			Order("activity_created_at DESC").
			Limit(homeRecentLimit).
			Find(&activities).Error; err != nil {
			log.Printf("fetch recent activities failed: %v", err)
		} else {
			out.RecentActivities = activityDTO.ToActivityDTOs(activities)
		}

		var videos []videoModel.VideoModel
		if err := ctrl.DB.
			Order("video_order ASC, video_created_at ASC").
			Limit(homeRecentLimit).
			Find(&videos).Error; err != nil {
			log.Printf("fetch recent videos failed: %v", err)
		} else {
			out.RecentVideos = videoDTO.ToVideoDTOs(videos)
		}
	}

	return helper.JsonOK(c, "", out)
}

// ✏️ Admin content edit for one page.
func (ctrl *PageController) UpdatePage(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var page model.PageModel
	if err := ctrl.DB.First(&page, "page_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Page not found")
		}
		log.Printf("fetch page failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch page")
	}

	var req dto.UpdatePageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !json.Valid(req.Sections) {
		return helper.JsonError(c, fiber.StatusBadRequest, "sections must be valid JSON")
	}

	page.PageTitle = req.Title
	page.PageSections = dto.SectionsFromRaw(req.Sections)

	if err := ctrl.DB.Save(&page).Error; err != nil {
		log.Printf("update page failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update page")
	}
	return helper.JsonUpdated(c, "Page updated", dto.ToPageDTO(page))
}
