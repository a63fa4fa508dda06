package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlaceholderImageURL is stored as the primary image when an activity is
// created without any upload.
const PlaceholderImageURL = "/placeholder.svg"

type ActivityModel struct {
	ActivityID               string `gorm:"column:activity_id;primaryKey;type:uuid"`
	ActivitySlug             string `gorm:"column:activity_slug;type:varchar(160);uniqueIndex;not null"`
	ActivityTitle            string `gorm:"column:activity_title;type:varchar(255);not null"`
	ActivityShortDescription string `gorm:"column:activity_short_description;type:text;not null"`
	ActivityLongDescription  string `gorm:"column:activity_long_description;type:text;not null"`
	ActivityImageURL         string `gorm:"column:activity_image_url;type:text;not null;default:'/placeholder.svg'"`

	ActivityCreatedAt time.Time `gorm:"column:activity_created_at;autoCreateTime"`
	ActivityUpdatedAt time.Time `gorm:"column:activity_updated_at;autoUpdateTime"`

	// Relations
	Images []ActivityImageModel `gorm:"foreignKey:ImageActivityID;references:ActivityID;constraint:OnDelete:CASCADE"`
}

func (ActivityModel) TableName() string {
	return "activities"
}

func (m *ActivityModel) BeforeCreate(tx *gorm.DB) error {
	if m.ActivityID == "" {
		m.ActivityID = uuid.NewString()
	}
	return nil
}
