package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoModel struct {
	VideoID          string  `gorm:"column:video_id;primaryKey;type:uuid"`
	VideoTitle       string  `gorm:"column:video_title;type:varchar(255);not null"`
	VideoDescription *string `gorm:"column:video_description;type:text"`
	VideoYoutubeURL  string  `gorm:"column:video_youtube_url;type:text;not null"`
	VideoThumbnail   string  `gorm:"column:video_thumbnail;type:text;not null"`
	VideoOrder       int     `gorm:"column:video_order;not null;default:0"`

	VideoCreatedAt time.Time `gorm:"column:video_created_at;autoCreateTime"`
	VideoUpdatedAt time.Time `gorm:"column:video_updated_at;autoUpdateTime"`
}

func (VideoModel) TableName() string {
	return "videos"
}

func (m *VideoModel) BeforeCreate(tx *gorm.DB) error {
	if m.VideoID == "" {
		m.VideoID = uuid.NewString()
	}
	return nil
}
