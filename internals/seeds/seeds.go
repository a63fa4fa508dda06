// Package seeds fills an empty database with the initial marketing content.
// Every seed is an upsert keyed by slug, so running it at each startup is
// safe.
package seeds

import (
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	activityModel "github.com/soungoolwin/EduBusinessAcademy/internals/features/activities/model"
	pageModel "github.com/soungoolwin/EduBusinessAcademy/internals/features/pages/model"
)

func Run(db *gorm.DB) {
	seedPages(db)
	seedActivities(db)
}

func seedPages(db *gorm.DB) {
	pages := []pageModel.PageModel{
		{
			PageSlug:  pageModel.SlugHome,
			PageTitle: "EduBusiness Academy",
			PageSections: datatypes.JSON(`[
				{"type":"hero","heading":"Grow your business with us","text":"Training, mentorship and investment matchmaking for small businesses."},
				{"type":"cta","heading":"Apply now","links":["/entrepreneurs/apply","/investors/apply"]}
			]`),
		},
		{
			PageSlug:  pageModel.SlugAbout,
			PageTitle: "About Us",
			PageSections: datatypes.JSON(`[
				{"type":"text","heading":"Who we are","text":"We support small-business owners with practical training and access to investors."}
			]`),
		},
		{
			PageSlug:  pageModel.SlugServices,
			PageTitle: "Our Services",
			PageSections: datatypes.JSON(`[
				{"type":"list","heading":"Services","items":["Business training","Mentorship","Investor matchmaking"]}
			]`),
		},
		{
			PageSlug:  pageModel.SlugPrograms,
			PageTitle: "Programs",
			PageSections: datatypes.JSON(`[
				{"type":"list","heading":"Programs","items":["Startup incubation","Growth accelerator"]}
			]`),
		},
		{
			PageSlug:  pageModel.SlugContact,
			PageTitle: "Contact",
			PageSections: datatypes.JSON(`[
				{"type":"contact","email":"info@edubusinessacademy.com"}
			]`),
		},
	}

	for _, p := range pages {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "page_slug"}},
			DoNothing: true,
		}).Create(&p).Error
		if err != nil {
			log.Printf("seed page %s failed: %v", p.PageSlug, err)
		}
	}
	log.Println("✅ Pages seeded.")
}

func seedActivities(db *gorm.DB) {
	activities := []activityModel.ActivityModel{
		{
			ActivitySlug:             "first-first-activity",
			ActivityTitle:            "First First Activity",
			ActivityShortDescription: "This is a short description for the first activity.",
			ActivityLongDescription:  "This is a longer, more detailed description of the first activity.",
			ActivityImageURL:         "/uploads/sample-first-activity.jpg",
		},
		{
			ActivitySlug:             "second-activity",
			ActivityTitle:            "Second Activity",
			ActivityShortDescription: "A brief look at our second amazing activity.",
			ActivityLongDescription:  "Here we dive deep into the details of the second activity.",
			ActivityImageURL:         activityModel.PlaceholderImageURL,
		},
	}

	for _, a := range activities {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "activity_slug"}},
			DoNothing: true,
		}).Create(&a).Error
		if err != nil {
			log.Printf("seed activity %s failed: %v", a.ActivitySlug, err)
		}
	}
	log.Println("✅ Activities seeded.")
}
