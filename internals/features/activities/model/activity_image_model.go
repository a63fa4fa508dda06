package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityImageModel is one entry of an activity's ordered gallery. Rows are
// owned by their activity and go away with it; the stored files do not.
type ActivityImageModel struct {
	ImageID         string `gorm:"column:image_id;primaryKey;type:uuid"`
	ImageURL        string `gorm:"column:image_url;type:text;not null"`
	ImageOrder      int    `gorm:"column:image_order;not null;default:0"`
	ImageActivityID string `gorm:"column:image_activity_id;type:uuid;not null;index"`

	ImageCreatedAt time.Time `gorm:"column:image_created_at;autoCreateTime"`
}

func (ActivityImageModel) TableName() string {
	return "activity_images"
}

func (m *ActivityImageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ImageID == "" {
		m.ImageID = uuid.NewString()
	}
	return nil
}
