package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessStages is the fixed enumeration a submission must pick from.
var BusinessStages = []string{"idea", "research", "testing", "operating"}

func IsValidBusinessStage(s string) bool {
	for _, v := range BusinessStages {
		if s == v {
			return true
		}
	}
	return false
}

type EntrepreneurApplicationModel struct {
	EntrepreneurID                string  `gorm:"column:entrepreneur_id;primaryKey;type:uuid"`
	EntrepreneurFullName          string  `gorm:"column:entrepreneur_full_name;type:varchar(255);not null"`
	EntrepreneurEmail             string  `gorm:"column:entrepreneur_email;type:varchar(255);not null"`
	EntrepreneurPhoneNumber       string  `gorm:"column:entrepreneur_phone_number;type:varchar(50);not null"`
	EntrepreneurCurrentOccupation string  `gorm:"column:entrepreneur_current_occupation;type:varchar(255);not null"`
	EntrepreneurAddress           string  `gorm:"column:entrepreneur_address;type:text;not null"`
	EntrepreneurSocialLinks       *string `gorm:"column:entrepreneur_social_links;type:text"`
	EntrepreneurBusinessName      *string `gorm:"column:entrepreneur_business_name;type:varchar(255)"`

	EntrepreneurIdeaSummary    string  `gorm:"column:entrepreneur_idea_summary;type:text;not null"`
	EntrepreneurProblemSolved  string  `gorm:"column:entrepreneur_problem_solved;type:text;not null"`
	EntrepreneurTargetCustomer *string `gorm:"column:entrepreneur_target_customer;type:text"`
	EntrepreneurBusinessStage  string  `gorm:"column:entrepreneur_business_stage;type:varchar(50);not null"`

	EntrepreneurPhysicalAssets   string `gorm:"column:entrepreneur_physical_assets;type:text;not null"`
	EntrepreneurMentalAssets     string `gorm:"column:entrepreneur_mental_assets;type:text;not null"`
	EntrepreneurAssistanceNeeded string `gorm:"column:entrepreneur_assistance_needed;type:text;not null"`
	EntrepreneurExpectations     string `gorm:"column:entrepreneur_expectations;type:text;not null"`

	EntrepreneurStatus string `gorm:"column:entrepreneur_status;type:varchar(50);not null;default:'pending'"`

	EntrepreneurCreatedAt time.Time `gorm:"column:entrepreneur_created_at;autoCreateTime"`
	EntrepreneurUpdatedAt time.Time `gorm:"column:entrepreneur_updated_at;autoUpdateTime"`
}

func (EntrepreneurApplicationModel) TableName() string {
	return "entrepreneur_applications"
}

func (m *EntrepreneurApplicationModel) BeforeCreate(tx *gorm.DB) error {
	if m.EntrepreneurID == "" {
		m.EntrepreneurID = uuid.NewString()
	}
	return nil
}
