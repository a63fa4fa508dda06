package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	activityDTO "github.com/soungoolwin/EduBusinessAcademy/internals/features/activities/dto"
	"github.com/soungoolwin/EduBusinessAcademy/internals/features/pages/model"
	videoDTO "github.com/soungoolwin/EduBusinessAcademy/internals/features/videos/dto"
)

// ============================
// Response DTO
// ============================
type PageDTO struct {
	ID        string          `json:"id"`
	Slug      string          `json:"slug"`
	Title     string          `json:"title"`
	Sections  json.RawMessage `json:"sections"`
	UpdatedAt time.Time       `json:"updatedAt"`

	// Home only: the freshest content for the landing page.
	RecentActivities []activityDTO.ActivityDTO `json:"recentActivities,omitempty"`
	RecentVideos     []videoDTO.VideoDTO       `json:"recentVideos,omitempty"`
}

// ============================
// Update Request DTO
// ============================
type UpdatePageRequest struct {
	Title    string          `json:"title" validate:"required"`
	Sections json.RawMessage `json:"sections" validate:"required"`
}

// ============================
// Converter
// ============================
func ToPageDTO(m model.PageModel) PageDTO {
	return PageDTO{
		ID:        m.PageID,
		Slug:      m.PageSlug,
		Title:     m.PageTitle,
		Sections:  json.RawMessage(m.PageSections),
		UpdatedAt: m.PageUpdatedAt,
	}
}

func SectionsFromRaw(raw json.RawMessage) datatypes.JSON {
	return datatypes.JSON(raw)
}
