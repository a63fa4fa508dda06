package controller

import (
	"errors"
	"log"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/soungoolwin/EduBusinessAcademy/internals/features/activities/dto"
	"github.com/soungoolwin/EduBusinessAcademy/internals/features/activities/model"
	helper "github.com/soungoolwin/EduBusinessAcademy/internals/helpers"
	"github.com/soungoolwin/EduBusinessAcademy/internals/helpers/storage"
)

type ActivityController struct {
	DB       *gorm.DB
	Uploader *storage.Uploader
}

func NewActivityController(db *gorm.DB, up *storage.Uploader) *ActivityController {
	return &ActivityController{DB: db, Uploader: up}
}

// 📄 All activities, newest first, galleries in display order.
func (ctrl *ActivityController) GetAllActivities(c *fiber.Ctx) error {
	var activities []model.ActivityModel
	if err := ctrl.DB.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("image_order ASC")
		}).
		Order("activity_created_at DESC").
		Find(&activities).Error; err != nil {
		log.Printf("fetch activities failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch activities")
	}
	return helper.JsonOK(c, "", dto.ToActivityDTOs(activities))
}

// 🔍 One activity by id, or by slug when the param is not a UUID.
func (ctrl *ActivityController) GetActivity(c *fiber.Ctx) error {
	param := c.Params("id")

	q := ctrl.DB.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("image_order ASC")
	})
	if _, err := uuid.Parse(param); err == nil {
		q = q.Where("activity_id = ?", param)
	} else {
		q = q.Where("activity_slug = ?", param)
	}

	var activity model.ActivityModel
	if err := q.First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Activity not found")
		}
		log.Printf("fetch activity failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch activity")
	}
	return helper.JsonOK(c, "", dto.ToActivityDTO(activity))
}

// ➕ Create from multipart form: title, shortDescription, longDescription,
// images[]. Text fields are checked before any upload happens.
func (ctrl *ActivityController) CreateActivity(c *fiber.Ctx) error {
	title := strings.TrimSpace(c.FormValue("title"))
	shortDesc := strings.TrimSpace(c.FormValue("shortDescription"))
	longDesc := strings.TrimSpace(c.FormValue("longDescription"))

	if title == "" || shortDesc == "" || longDesc == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing required text fields")
	}

	files := formImages(c)

	imageURLs := []string{}
	if len(files) > 0 {
		urls, err := ctrl.Uploader.StoreAll(c.Context(), files)
		if err != nil {
			log.Printf("image upload failed: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		imageURLs = urls
	}

	primary := model.PlaceholderImageURL
	if len(imageURLs) > 0 {
		primary = imageURLs[0]
	}

	slug, err := helper.EnsureUniqueSlugCI(
		c.Context(), ctrl.DB, "activities", "activity_slug",
		helper.Slugify(title, 160), nil, 160,
	)
	if err != nil {
		log.Printf("slug generation failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create activity")
	}

	activity := model.ActivityModel{
		ActivitySlug:             slug,
		ActivityTitle:            title,
		ActivityShortDescription: shortDesc,
		ActivityLongDescription:  longDesc,
		ActivityImageURL:         primary,
		Images:                   imageRows(imageURLs, 0),
	}

	if err := ctrl.DB.Create(&activity).Error; err != nil {
		// Another request may have grabbed the same slug between the
		// uniqueness probe and the insert: re-derive once and retry.
		if isUniqueViolation(err) {
			slug, serr := helper.EnsureUniqueSlugCI(
				c.Context(), ctrl.DB, "activities", "activity_slug",
				helper.Slugify(title, 160), nil, 160,
			)
			if serr == nil {
				activity.ActivitySlug = slug
				activity.ActivityID = ""
				err = ctrl.DB.Create(&activity).Error
			}
		}
		if err != nil {
			log.Printf("create activity failed: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create activity")
		}
	}

	return helper.JsonCreated(c, "Activity created", dto.ToActivityDTO(activity))
}

// ✏️ Update text fields and the gallery. keepExistingImages=true appends new
// uploads after the current set; otherwise the set is replaced outright.
func (ctrl *ActivityController) UpdateActivity(c *fiber.Ctx) error {
	id := c.Params("id")

	var activity model.ActivityModel
	if err := ctrl.DB.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("image_order ASC")
	}).First(&activity, "activity_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Activity not found")
		}
		log.Printf("fetch activity failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch activity")
	}

	title := strings.TrimSpace(c.FormValue("title"))
	shortDesc := strings.TrimSpace(c.FormValue("shortDescription"))
	longDesc := strings.TrimSpace(c.FormValue("longDescription"))
	keepExisting := c.FormValue("keepExistingImages") == "true"

	if title == "" || shortDesc == "" || longDesc == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing required text fields")
	}

	files := formImages(c)

	var newURLs []string
	if len(files) > 0 {
		urls, err := ctrl.Uploader.StoreAll(c.Context(), files)
		if err != nil {
			log.Printf("image upload failed: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		newURLs = urls
	}

	// Re-derive the slug only when the title actually changed; uniqueness
	// check excludes the row being updated.
	slug := activity.ActivitySlug
	if base := helper.Slugify(title, 160); base != activity.ActivitySlug {
		var err error
		slug, err = helper.EnsureUniqueSlugCI(
			c.Context(), ctrl.DB, "activities", "activity_slug", base,
			func(q *gorm.DB) *gorm.DB {
				return q.Where("activity_id <> ?", activity.ActivityID)
			}, 160,
		)
		if err != nil {
			log.Printf("slug generation failed: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update activity")
		}
	}

	primary := activity.ActivityImageURL
	if !keepExisting && len(newURLs) > 0 {
		primary = newURLs[0]
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if !keepExisting {
			// Replace-all: drop the current gallery. Stored files stay
			// behind (same orphan policy as delete).
			if err := tx.Where("image_activity_id = ?", activity.ActivityID).
				Delete(&model.ActivityImageModel{}).Error; err != nil {
				return err
			}
			activity.Images = nil
		}

		startOrder := 0
		if keepExisting {
			for _, img := range activity.Images {
				if img.ImageOrder >= startOrder {
					startOrder = img.ImageOrder + 1
				}
			}
		}
		if len(newURLs) > 0 {
			rows := imageRows(newURLs, startOrder)
			for i := range rows {
				rows[i].ImageActivityID = activity.ActivityID
			}
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}

		return tx.Model(&model.ActivityModel{}).
			Where("activity_id = ?", activity.ActivityID).
			Updates(map[string]any{
				"activity_slug":              slug,
				"activity_title":             title,
				"activity_short_description": shortDesc,
				"activity_long_description":  longDesc,
				"activity_image_url":         primary,
			}).Error
	})
	if err != nil {
		log.Printf("update activity failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update activity")
	}

	// Re-read for the response with the final gallery order.
	if err := ctrl.DB.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("image_order ASC")
	}).First(&activity, "activity_id = ?", activity.ActivityID).Error; err != nil {
		log.Printf("reload activity failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update activity")
	}
	return helper.JsonUpdated(c, "Activity updated", dto.ToActivityDTO(activity))
}

// 🗑️ Delete the activity and its image rows. Stored files are not reclaimed.
func (ctrl *ActivityController) DeleteActivity(c *fiber.Ctx) error {
	id := c.Params("id")

	var activity model.ActivityModel
	if err := ctrl.DB.First(&activity, "activity_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Activity not found")
		}
		log.Printf("fetch activity failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete activity")
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		// FK cascade covers this on Postgres; the explicit delete keeps the
		// behavior identical on backends without enforced FKs.
		if err := tx.Where("image_activity_id = ?", activity.ActivityID).
			Delete(&model.ActivityImageModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&activity).Error
	})
	if err != nil {
		log.Printf("delete activity failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete activity")
	}
	return helper.JsonDeleted(c, "Activity deleted", fiber.Map{"id": activity.ActivityID})
}

/* ===============================
   Internal helpers
=================================*/

// formImages collects non-empty uploads from the "images" multipart field.
func formImages(c *fiber.Ctx) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return storage.FilterNonEmpty(form.File["images"])
}

func imageRows(urls []string, startOrder int) []model.ActivityImageModel {
	rows := make([]model.ActivityImageModel, 0, len(urls))
	for i, u := range urls {
		rows = append(rows, model.ActivityImageModel{
			ImageURL:   u,
			ImageOrder: startOrder + i,
		})
	}
	return rows
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	// string fallback (covers pgx wrapping and sqlite in tests)
	lo := strings.ToLower(err.Error())
	return strings.Contains(lo, "duplicate") || strings.Contains(lo, "unique")
}
