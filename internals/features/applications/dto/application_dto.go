package dto

import (
	"time"

	"github.com/soungoolwin/EduBusinessAcademy/internals/features/applications/model"
)

/* ===============================
   Investor
=================================*/

type InvestorApplicationDTO struct {
	ID                string    `json:"id"`
	FullName          string    `json:"fullName"`
	Email             string    `json:"email"`
	PhoneNumber       string    `json:"phoneNumber"`
	Organization      *string   `json:"organization"`
	Address           string    `json:"address"`
	SocialWebsite     *string   `json:"socialWebsite"`
	FinancialInvestor bool      `json:"financialInvestor"`
	AdvisorMentor     bool      `json:"advisorMentor"`
	BusinessPartner   bool      `json:"businessPartner"`
	OtherType         *string   `json:"otherType"`
	Sector            string    `json:"sector"`
	ExperienceSkills  string    `json:"experienceSkills"`
	InvestmentModel   string    `json:"investmentModel"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type CreateInvestorRequest struct {
	FullName          string `json:"fullName" validate:"required"`
	Email             string `json:"email" validate:"required,email"`
	PhoneNumber       string `json:"phoneNumber" validate:"required"`
	Organization      string `json:"organization"`
	Address           string `json:"address" validate:"required"`
	SocialWebsite     string `json:"socialWebsite"`
	FinancialInvestor bool   `json:"financialInvestor"`
	AdvisorMentor     bool   `json:"advisorMentor"`
	BusinessPartner   bool   `json:"businessPartner"`
	OtherType         string `json:"otherType"`
	Sector            string `json:"sector" validate:"required"`
	ExperienceSkills  string `json:"experienceSkills" validate:"required"`
	InvestmentModel   string `json:"investmentModel" validate:"required"`
}

// HasRoleIndicator reports the intake invariant: at least one of the three
// role flags, or a non-blank free-text "other" type.
func (r CreateInvestorRequest) HasRoleIndicator(trimmedOther string) bool {
	return r.FinancialInvestor || r.AdvisorMentor || r.BusinessPartner || trimmedOther != ""
}

func ToInvestorDTO(m model.InvestorApplicationModel) InvestorApplicationDTO {
	return InvestorApplicationDTO{
		ID:                m.InvestorID,
		FullName:          m.InvestorFullName,
		Email:             m.InvestorEmail,
		PhoneNumber:       m.InvestorPhoneNumber,
		Organization:      m.InvestorOrganization,
		Address:           m.InvestorAddress,
		SocialWebsite:     m.InvestorSocialWebsite,
		FinancialInvestor: m.InvestorFinancialInvestor,
		AdvisorMentor:     m.InvestorAdvisorMentor,
		BusinessPartner:   m.InvestorBusinessPartner,
		OtherType:         m.InvestorOtherType,
		Sector:            m.InvestorSector,
		ExperienceSkills:  m.InvestorExperienceSkills,
		InvestmentModel:   m.InvestorInvestmentModel,
		Status:            m.InvestorStatus,
		CreatedAt:         m.InvestorCreatedAt,
		UpdatedAt:         m.InvestorUpdatedAt,
	}
}

func ToInvestorDTOs(ms []model.InvestorApplicationModel) []InvestorApplicationDTO {
	out := make([]InvestorApplicationDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToInvestorDTO(m))
	}
	return out
}

/* ===============================
   Entrepreneur
=================================*/

type EntrepreneurApplicationDTO struct {
	ID                string    `json:"id"`
	FullName          string    `json:"fullName"`
	Email             string    `json:"email"`
	PhoneNumber       string    `json:"phoneNumber"`
	CurrentOccupation string    `json:"currentOccupation"`
	Address           string    `json:"address"`
	SocialLinks       *string   `json:"socialLinks"`
	BusinessName      *string   `json:"businessName"`
	IdeaSummary       string    `json:"ideaSummary"`
	ProblemSolved     string    `json:"problemSolved"`
	TargetCustomer    *string   `json:"targetCustomer"`
	BusinessStage     string    `json:"businessStage"`
	PhysicalAssets    string    `json:"physicalAssets"`
	MentalAssets      string    `json:"mentalAssets"`
	AssistanceNeeded  string    `json:"assistanceNeeded"`
	Expectations      string    `json:"expectations"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type CreateEntrepreneurRequest struct {
	FullName          string `json:"fullName" validate:"required"`
	Email             string `json:"email" validate:"required,email"`
	PhoneNumber       string `json:"phoneNumber" validate:"required"`
	CurrentOccupation string `json:"currentOccupation" validate:"required"`
	Address           string `json:"address" validate:"required"`
	SocialLinks       string `json:"socialLinks"`
	BusinessName      string `json:"businessName"`
	IdeaSummary       string `json:"ideaSummary" validate:"required"`
	ProblemSolved     string `json:"problemSolved" validate:"required"`
	TargetCustomer    string `json:"targetCustomer"`
	BusinessStage     string `json:"businessStage" validate:"required,oneof=idea research testing operating"`
	PhysicalAssets    string `json:"physicalAssets" validate:"required"`
	MentalAssets      string `json:"mentalAssets" validate:"required"`
	AssistanceNeeded  string `json:"assistanceNeeded" validate:"required"`
	Expectations      string `json:"expectations" validate:"required"`
}

func ToEntrepreneurDTO(m model.EntrepreneurApplicationModel) EntrepreneurApplicationDTO {
	return EntrepreneurApplicationDTO{
		ID:                m.EntrepreneurID,
		FullName:          m.EntrepreneurFullName,
		Email:             m.EntrepreneurEmail,
		PhoneNumber:       m.EntrepreneurPhoneNumber,
		CurrentOccupation: m.EntrepreneurCurrentOccupation,
		Address:           m.EntrepreneurAddress,
		SocialLinks:       m.EntrepreneurSocialLinks,
		BusinessName:      m.EntrepreneurBusinessName,
		IdeaSummary:       m.EntrepreneurIdeaSummary,
		ProblemSolved:     m.EntrepreneurProblemSolved,
		TargetCustomer:    m.EntrepreneurTargetCustomer,
		BusinessStage:     m.EntrepreneurBusinessStage,
		PhysicalAssets:    m.EntrepreneurPhysicalAssets,
		MentalAssets:      m.EntrepreneurMentalAssets,
		AssistanceNeeded:  m.EntrepreneurAssistanceNeeded,
		Expectations:      m.EntrepreneurExpectations,
		Status:            m.EntrepreneurStatus,
		CreatedAt:         m.EntrepreneurCreatedAt,
		UpdatedAt:         m.EntrepreneurUpdatedAt,
	}
}

func ToEntrepreneurDTOs(ms []model.EntrepreneurApplicationModel) []EntrepreneurApplicationDTO {
	out := make([]EntrepreneurApplicationDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToEntrepreneurDTO(m))
	}
	return out
}

/* ===============================
   Shared
=================================*/

// NullableString maps an optional form value to NULL when blank.
func NullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
