package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusPending is the only status any exposed operation ever writes. The
// column is mutable in principle but no mutation path exists.
const StatusPending = "pending"

type InvestorApplicationModel struct {
	InvestorID            string  `gorm:"column:investor_id;primaryKey;type:uuid"`
	InvestorFullName      string  `gorm:"column:investor_full_name;type:varchar(255);not null"`
	InvestorEmail         string  `gorm:"column:investor_email;type:varchar(255);not null"`
	InvestorPhoneNumber   string  `gorm:"column:investor_phone_number;type:varchar(50);not null"`
	InvestorOrganization  *string `gorm:"column:investor_organization;type:varchar(255)"`
	InvestorAddress       string  `gorm:"column:investor_address;type:text;not null"`
	InvestorSocialWebsite *string `gorm:"column:investor_social_website;type:text"`

	InvestorFinancialInvestor bool    `gorm:"column:investor_financial_investor;not null;default:false"`
	InvestorAdvisorMentor     bool    `gorm:"column:investor_advisor_mentor;not null;default:false"`
	InvestorBusinessPartner   bool    `gorm:"column:investor_business_partner;not null;default:false"`
	InvestorOtherType         *string `gorm:"column:investor_other_type;type:varchar(255)"`

	InvestorSector           string `gorm:"column:investor_sector;type:varchar(255);not null"`
	InvestorExperienceSkills string `gorm:"column:investor_experience_skills;type:text;not null"`
	InvestorInvestmentModel  string `gorm:"column:investor_investment_model;type:text;not null"`

	InvestorStatus string `gorm:"column:investor_status;type:varchar(50);not null;default:'pending'"`

	InvestorCreatedAt time.Time `gorm:"column:investor_created_at;autoCreateTime"`
	InvestorUpdatedAt time.Time `gorm:"column:investor_updated_at;autoUpdateTime"`
}

func (InvestorApplicationModel) TableName() string {
	return "investor_applications"
}

func (m *InvestorApplicationModel) BeforeCreate(tx *gorm.DB) error {
	if m.InvestorID == "" {
		m.InvestorID = uuid.NewString()
	}
	return nil
}
