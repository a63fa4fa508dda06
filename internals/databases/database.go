package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/soungoolwin/EduBusinessAcademy/internals/configs"
	activityModel "github.com/soungoolwin/EduBusinessAcademy/internals/features/activities/model"
	applicationModel "github.com/soungoolwin/EduBusinessAcademy/internals/features/applications/model"
	pageModel "github.com/soungoolwin/EduBusinessAcademy/internals/features/pages/model"
	videoModel "github.com/soungoolwin/EduBusinessAcademy/internals/features/videos/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=edubusinessacademy&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // PgBouncer (transaction pooling) friendly
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate keeps the content tables in sync. Column definitions live on the
// models; no separate migration tooling is used.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&activityModel.ActivityModel{},
		&activityModel.ActivityImageModel{},
		&videoModel.VideoModel{},
		&applicationModel.InvestorApplicationModel{},
		&applicationModel.EntrepreneurApplicationModel{},
		&pageModel.PageModel{},
	)
}
