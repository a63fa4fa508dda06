package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/soungoolwin/EduBusinessAcademy/internals/features/videos/dto"
	"github.com/soungoolwin/EduBusinessAcademy/internals/features/videos/model"
	helper "github.com/soungoolwin/EduBusinessAcademy/internals/helpers"
)

type VideoController struct {
	DB *gorm.DB
}

func NewVideoController(db *gorm.DB) *VideoController {
	return &VideoController{DB: db}
}

// 📄 All videos in display order.
func (ctrl *VideoController) GetAllVideos(c *fiber.Ctx) error {
	var videos []model.VideoModel
	if err := ctrl.DB.
		Order("video_order ASC, video_created_at ASC").
		Find(&videos).Error; err != nil {
		log.Printf("fetch videos failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch videos")
	}
	return helper.JsonOK(c, "", dto.ToVideoDTOs(videos))
}

// ➕ Create from a YouTube URL. Unparseable URLs are rejected before
// anything is stored; the thumbnail is derived from the video ID.
func (ctrl *VideoController) CreateVideo(c *fiber.Ctx) error {
	var req dto.CreateVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	youtubeID := helper.ExtractYouTubeID(req.YoutubeURL)
	if youtubeID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid YouTube URL")
	}

	var description *string
	if req.Description != nil && strings.TrimSpace(*req.Description) != "" {
		description = req.Description
	}

	video := model.VideoModel{
		VideoTitle:       strings.TrimSpace(req.Title),
		VideoDescription: description,
		VideoYoutubeURL:  req.YoutubeURL,
		VideoThumbnail:   helper.YouTubeThumbnail(youtubeID),
		VideoOrder:       req.Order,
	}

	if err := ctrl.DB.Create(&video).Error; err != nil {
		log.Printf("create video failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add video")
	}
	return helper.JsonCreated(c, "Video added", fiber.Map{"id": video.VideoID})
}

// 🗑️ Videos have no update path — delete and recreate instead.
func (ctrl *VideoController) DeleteVideo(c *fiber.Ctx) error {
	id := c.Params("id")

	var video model.VideoModel
	if err := ctrl.DB.First(&video, "video_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Video not found")
		}
		log.Printf("fetch video failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete video")
	}

	if err := ctrl.DB.Delete(&video).Error; err != nil {
		log.Printf("delete video failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete video")
	}
	return helper.JsonDeleted(c, "Video deleted", fiber.Map{"id": video.VideoID})
}
