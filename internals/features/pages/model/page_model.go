package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Known page slugs. Content is semi-fixed: seeded at startup, editable from
// the admin dashboard.
const (
	SlugHome     = "home"
	SlugAbout    = "about"
	SlugServices = "services"
	SlugPrograms = "programs"
	SlugContact  = "contact"
)

type PageModel struct {
	PageID       string         `gorm:"column:page_id;primaryKey;type:uuid"`
	PageSlug     string         `gorm:"column:page_slug;type:varchar(50);uniqueIndex;not null"`
	PageTitle    string         `gorm:"column:page_title;type:varchar(255);not null"`
	PageSections datatypes.JSON `gorm:"column:page_sections;type:jsonb"`

	PageCreatedAt time.Time `gorm:"column:page_created_at;autoCreateTime"`
	PageUpdatedAt time.Time `gorm:"column:page_updated_at;autoUpdateTime"`
}

func (PageModel) TableName() string {
	return "pages"
}

func (m *PageModel) BeforeCreate(tx *gorm.DB) error {
	if m.PageID == "" {
		m.PageID = uuid.NewString()
	}
	return nil
}
