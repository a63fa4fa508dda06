package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/soungoolwin/EduBusinessAcademy/internals/features/applications/dto"
	"github.com/soungoolwin/EduBusinessAcademy/internals/features/applications/model"
	helper "github.com/soungoolwin/EduBusinessAcademy/internals/helpers"
)

// Applications are write-once: submitted with status "pending", listable by
// admins, never updated or deleted through the API.
type ApplicationController struct {
	DB *gorm.DB
}

func NewApplicationController(db *gorm.DB) *ApplicationController {
	return &ApplicationController{DB: db}
}

/* ===============================
   Investor
=================================*/

func (ctrl *ApplicationController) SubmitInvestor(c *fiber.Ctx) error {
	var req dto.CreateInvestorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	otherType := strings.TrimSpace(req.OtherType)
	if !req.HasRoleIndicator(otherType) {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Please select at least one investor/partner type")
	}

	app := model.InvestorApplicationModel{
		InvestorFullName:          strings.TrimSpace(req.FullName),
		InvestorEmail:             strings.TrimSpace(req.Email),
		InvestorPhoneNumber:       strings.TrimSpace(req.PhoneNumber),
		InvestorOrganization:      dto.NullableString(strings.TrimSpace(req.Organization)),
		InvestorAddress:           strings.TrimSpace(req.Address),
		InvestorSocialWebsite:     dto.NullableString(strings.TrimSpace(req.SocialWebsite)),
		InvestorFinancialInvestor: req.FinancialInvestor,
		InvestorAdvisorMentor:     req.AdvisorMentor,
		InvestorBusinessPartner:   req.BusinessPartner,
		InvestorOtherType:         dto.NullableString(otherType),
		InvestorSector:            strings.TrimSpace(req.Sector),
		InvestorExperienceSkills:  req.ExperienceSkills,
		InvestorInvestmentModel:   req.InvestmentModel,
		InvestorStatus:            model.StatusPending,
	}

	if err := ctrl.DB.Create(&app).Error; err != nil {
		log.Printf("create investor application failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit application")
	}
	return helper.JsonCreated(c, "Application submitted", fiber.Map{"id": app.InvestorID})
}

// 📄 Admin-only: all investor applications, newest first.
func (ctrl *ApplicationController) GetAllInvestors(c *fiber.Ctx) error {
	var apps []model.InvestorApplicationModel
	if err := ctrl.DB.
		Order("investor_created_at DESC").
		Find(&apps).Error; err != nil {
		log.Printf("fetch investor applications failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch applications")
	}
	return helper.JsonOK(c, "", dto.ToInvestorDTOs(apps))
}

/* ===============================
   Entrepreneur
=================================*/

func (ctrl *ApplicationController) SubmitEntrepreneur(c *fiber.Ctx) error {
	var req dto.CreateEntrepreneurRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	// oneof already enforces the enumeration; keep the explicit guard so the
	// model invariant holds even if a caller bypasses the DTO.
	if !model.IsValidBusinessStage(req.BusinessStage) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid business stage")
	}

	app := model.EntrepreneurApplicationModel{
		EntrepreneurFullName:          strings.TrimSpace(req.FullName),
		EntrepreneurEmail:             strings.TrimSpace(req.Email),
		EntrepreneurPhoneNumber:       strings.TrimSpace(req.PhoneNumber),
		EntrepreneurCurrentOccupation: strings.TrimSpace(req.CurrentOccupation),
		EntrepreneurAddress:           strings.TrimSpace(req.Address),
		EntrepreneurSocialLinks:       dto.NullableString(strings.TrimSpace(req.SocialLinks)),
		EntrepreneurBusinessName:      dto.NullableString(strings.TrimSpace(req.BusinessName)),
		EntrepreneurIdeaSummary:       req.IdeaSummary,
		EntrepreneurProblemSolved:     req.ProblemSolved,
		EntrepreneurTargetCustomer:    dto.NullableString(strings.TrimSpace(req.TargetCustomer)),
		EntrepreneurBusinessStage:     req.BusinessStage,
		EntrepreneurPhysicalAssets:    req.PhysicalAssets,
		EntrepreneurMentalAssets:      req.MentalAssets,
		EntrepreneurAssistanceNeeded:  req.AssistanceNeeded,
		EntrepreneurExpectations:      req.Expectations,
		EntrepreneurStatus:            model.StatusPending,
	}

	if err := ctrl.DB.Create(&app).Error; err != nil {
		log.Printf("create entrepreneur application failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit application")
	}
	return helper.JsonCreated(c, "Application submitted", fiber.Map{"id": app.EntrepreneurID})
}

// 📄 Admin-only: all entrepreneur applications, newest first.
func (ctrl *ApplicationController) GetAllEntrepreneurs(c *fiber.Ctx) error {
	var apps []model.EntrepreneurApplicationModel
	if err := ctrl.DB.
		Order("entrepreneur_created_at DESC").
		Find(&apps).Error; err != nil {
		log.Printf("fetch entrepreneur applications failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch applications")
	}
	return helper.JsonOK(c, "", dto.ToEntrepreneurDTOs(apps))
}
