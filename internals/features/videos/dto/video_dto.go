package dto

import (
	"time"

	"github.com/soungoolwin/EduBusinessAcademy/internals/features/videos/model"
)

// ============================
// Response DTO
// ============================
type VideoDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	YoutubeURL  string    `json:"youtubeUrl"`
	Thumbnail   string    `json:"thumbnail"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ============================
// Create Request DTO
// ============================
type CreateVideoRequest struct {
	Title       string  `json:"title" validate:"required"`
	YoutubeURL  string  `json:"youtubeUrl" validate:"required,url"`
	Description *string `json:"description"`
	Order       int     `json:"order" validate:"gte=0"`
}

// ============================
// Converter
// ============================
func ToVideoDTO(m model.VideoModel) VideoDTO {
	return VideoDTO{
		ID:          m.VideoID,
		Title:       m.VideoTitle,
		Description: m.VideoDescription,
		YoutubeURL:  m.VideoYoutubeURL,
		Thumbnail:   m.VideoThumbnail,
		Order:       m.VideoOrder,
		CreatedAt:   m.VideoCreatedAt,
		UpdatedAt:   m.VideoUpdatedAt,
	}
}

func ToVideoDTOs(ms []model.VideoModel) []VideoDTO {
	out := make([]VideoDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToVideoDTO(m))
	}
	return out
}
