package dto

import (
	"time"

	"github.com/soungoolwin/EduBusinessAcademy/internals/features/activities/model"
)

// ============================
// Response DTO
// ============================
type ActivityImageDTO struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Order int    `json:"order"`
}

type ActivityDTO struct {
	ID               string             `json:"id"`
	Slug             string             `json:"slug"`
	Title            string             `json:"title"`
	ShortDescription string             `json:"shortDescription"`
	LongDescription  string             `json:"longDescription"`
	ImageURL         string             `json:"imageUrl"`
	Images           []ActivityImageDTO `json:"images"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

// ============================
// Converter
// ============================
func ToActivityDTO(m model.ActivityModel) ActivityDTO {
	images := make([]ActivityImageDTO, 0, len(m.Images))
	for _, img := range m.Images {
		images = append(images, ActivityImageDTO{
			ID:    img.ImageID,
			URL:   img.ImageURL,
			Order: img.ImageOrder,
		})
	}
	return ActivityDTO{
		ID:               m.ActivityID,
		Slug:             m.ActivitySlug,
		Title:            m.ActivityTitle,
		ShortDescription: m.ActivityShortDescription,
		LongDescription:  m.ActivityLongDescription,
		ImageURL:         m.ActivityImageURL,
		Images:           images,
		CreatedAt:        m.ActivityCreatedAt,
		UpdatedAt:        m.ActivityUpdatedAt,
	}
}

func ToActivityDTOs(ms []model.ActivityModel) []ActivityDTO {
	out := make([]ActivityDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToActivityDTO(m))
	}
	return out
}
