package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/soungoolwin/EduBusinessAcademy/internals/features/videos/dto"
	"github.com/soungoolwin/EduBusinessAcademy/internals/features/videos/model"
)

func testApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.VideoModel{}))

	ctrl := NewVideoController(db)
	app := fiber.New()
	api := app.Group("/api/videos")
	api.Get("/", ctrl.GetAllVideos)
	api.Post("/", ctrl.CreateVideo)
	api.Delete("/:id", ctrl.DeleteVideo)
	return app, db
}

func postVideo(t *testing.T, app *fiber.App, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/videos/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func listVideos(t *testing.T, app *fiber.App) []dto.VideoDTO {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/videos/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env struct {
		Data []dto.VideoDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &env), "body: %s", raw)
	return env.Data
}

func TestCreateVideo(t *testing.T) {
	app, db := testApp(t)

	resp := postVideo(t, app, fiber.Map{
		"title":      "Intro Session",
		"youtubeUrl": "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var video model.VideoModel
	require.NoError(t, db.First(&video).Error)
	assert.Equal(t, "Intro Session", video.VideoTitle)
	assert.Equal(t,
		"https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		video.VideoThumbnail)
	assert.Nil(t, video.VideoDescription)
	assert.Equal(t, 0, video.VideoOrder)
}

func TestCreateVideoShortURL(t *testing.T) {
	app, db := testApp(t)

	resp := postVideo(t, app, fiber.Map{
		"title":      "Short Link",
		"youtubeUrl": "https://youtu.be/abc123XYZ",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var video model.VideoModel
	require.NoError(t, db.First(&video).Error)
	assert.Equal(t,
		"https://img.youtube.com/vi/abc123XYZ/maxresdefault.jpg",
		video.VideoThumbnail)
}

func TestCreateVideoBlankDescriptionStoredAsNull(t *testing.T) {
	app, db := testApp(t)

	resp := postVideo(t, app, fiber.Map{
		"title":       "Blank Desc",
		"youtubeUrl":  "https://youtu.be/abc123",
		"description": "   ",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var video model.VideoModel
	require.NoError(t, db.First(&video).Error)
	assert.Nil(t, video.VideoDescription)
}

func TestCreateVideoInvalidURL(t *testing.T) {
	app, db := testApp(t)

	resp := postVideo(t, app, fiber.Map{
		"title":      "Bad Link",
		"youtubeUrl": "https://vimeo.com/123456",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.VideoModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateVideoMissingTitle(t *testing.T) {
	app, db := testApp(t)

	resp := postVideo(t, app, fiber.Map{
		"youtubeUrl": "https://youtu.be/abc123",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.VideoModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetAllVideosDisplayOrder(t *testing.T) {
	app, _ := testApp(t)

	for _, v := range []fiber.Map{
		{"title": "Third", "youtubeUrl": "https://youtu.be/c333", "order": 2},
		{"title": "First", "youtubeUrl": "https://youtu.be/a111", "order": 0},
		{"title": "Second", "youtubeUrl": "https://youtu.be/b222", "order": 1},
	} {
		resp := postVideo(t, app, v)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	videos := listVideos(t, app)
	require.Len(t, videos, 3)
	assert.Equal(t, "First", videos[0].Title)
	assert.Equal(t, "Second", videos[1].Title)
	assert.Equal(t, "Third", videos[2].Title)
}

func TestDeleteVideo(t *testing.T) {
	app, db := testApp(t)

	resp := postVideo(t, app, fiber.Map{
		"title":      "Doomed",
		"youtubeUrl": "https://youtu.be/abc123",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var video model.VideoModel
	require.NoError(t, db.First(&video).Error)

	del, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/videos/"+video.VideoID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, del.StatusCode)

	// Second delete of the same id is a 404.
	del, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/videos/"+video.VideoID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, del.StatusCode)

	assert.Empty(t, listVideos(t, app))
}
