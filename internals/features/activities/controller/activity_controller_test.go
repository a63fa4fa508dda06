package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/soungoolwin/EduBusinessAcademy/internals/features/activities/dto"
	"github.com/soungoolwin/EduBusinessAcademy/internals/features/activities/model"
	"github.com/soungoolwin/EduBusinessAcademy/internals/helpers/storage"
)

/* ===============================
   Test harness
=================================*/

// fakeStorage hands out predictable URLs and counts calls.
type fakeStorage struct {
	calls int
	fail  bool
}

func (s *fakeStorage) Store(_ context.Context, fh *multipart.FileHeader) (string, error) {
	if s.fail {
		return "", fmt.Errorf("backend unavailable")
	}
	s.calls++
	return fmt.Sprintf("/uploads/%d-%s", s.calls, fh.Filename), nil
}

func (s *fakeStorage) Delete(context.Context, string) error { return nil }
func (s *fakeStorage) Mode() string                         { return "fake" }

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&model.ActivityModel{},
		&model.ActivityImageModel{},
	))
	return db
}

func testApp(t *testing.T) (*fiber.App, *gorm.DB, *fakeStorage) {
	t.Helper()
	db := testDB(t)
	fs := &fakeStorage{}
	ctrl := NewActivityController(db, &storage.Uploader{Storage: fs, Delay: 0})

	app := fiber.New()
	api := app.Group("/api/activities")
	api.Get("/", ctrl.GetAllActivities)
	api.Get("/:id", ctrl.GetActivity)
	api.Post("/", ctrl.CreateActivity)
	api.Put("/:id", ctrl.UpdateActivity)
	api.Delete("/:id", ctrl.DeleteActivity)
	return app, db, fs
}

// multipartBody renders fields plus one image part per file name.
func multipartBody(t *testing.T, fields map[string]string, imageNames ...string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, name := range imageNames {
		fw, err := w.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("imagedata"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func activityFields(title string) map[string]string {
	return map[string]string{
		"title":            title,
		"shortDescription": "short text",
		"longDescription":  "long text",
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env), "body: %s", raw)
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out), "data: %s", env.Data)
	}
}

func createActivity(t *testing.T, app *fiber.App, title string, imageNames ...string) dto.ActivityDTO {
	t.Helper()
	body, ct := multipartBody(t, activityFields(title), imageNames...)
	req := httptest.NewRequest(http.MethodPost, "/api/activities/", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var got dto.ActivityDTO
	decodeEnvelope(t, resp, &got)
	return got
}

/* ===============================
   Create
=================================*/

func TestCreateActivityWithoutImages(t *testing.T) {
	app, _, fs := testApp(t)

	got := createActivity(t, app, "Hello World!")

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "hello-world", got.Slug)
	assert.Equal(t, "Hello World!", got.Title)
	assert.Equal(t, model.PlaceholderImageURL, got.ImageURL)
	assert.Empty(t, got.Images)
	assert.Zero(t, fs.calls)
}

func TestCreateActivityWithImages(t *testing.T) {
	app, _, _ := testApp(t)

	got := createActivity(t, app, "Gallery Day", "a.jpg", "b.jpg")

	require.Len(t, got.Images, 2)
	assert.Equal(t, 0, got.Images[0].Order)
	assert.Equal(t, 1, got.Images[1].Order)
	// The first upload becomes the primary image.
	assert.Equal(t, got.Images[0].URL, got.ImageURL)
	assert.Contains(t, got.Images[0].URL, "a.jpg")
	assert.Contains(t, got.Images[1].URL, "b.jpg")
}

func TestCreateActivityMissingTextRejectedBeforeUpload(t *testing.T) {
	app, db, fs := testApp(t)

	body, ct := multipartBody(t, map[string]string{
		"title":            "Only Title",
		"shortDescription": "   ",
		"longDescription":  "long",
	}, "a.jpg")
	req := httptest.NewRequest(http.MethodPost, "/api/activities/", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	// Validation happens before any file is stored.
	assert.Zero(t, fs.calls)

	var count int64
	require.NoError(t, db.Model(&model.ActivityModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateActivityUploadFailure(t *testing.T) {
	app, db, fs := testApp(t)
	fs.fail = true

	body, ct := multipartBody(t, activityFields("Broken Upload"), "a.jpg")
	req := httptest.NewRequest(http.MethodPost, "/api/activities/", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.ActivityModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateActivitySlugCollision(t *testing.T) {
	app, _, _ := testApp(t)

	first := createActivity(t, app, "My Event")
	second := createActivity(t, app, "My Event")
	third := createActivity(t, app, "My Event")

	assert.Equal(t, "my-event", first.Slug)
	assert.Equal(t, "my-event-2", second.Slug)
	assert.Equal(t, "my-event-3", third.Slug)
}

/* ===============================
   Read
=================================*/

func TestGetActivityByIDAndSlug(t *testing.T) {
	app, _, _ := testApp(t)
	created := createActivity(t, app, "Lookup Target", "a.jpg")

	for _, param := range []string{created.ID, created.Slug} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/activities/"+param, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode, "param %q", param)

		var got dto.ActivityDTO
		decodeEnvelope(t, resp, &got)
		assert.Equal(t, created.ID, got.ID)
		assert.Len(t, got.Images, 1)
	}
}

func TestGetActivityNotFound(t *testing.T) {
	app, _, _ := testApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/activities/no-such-slug", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetAllActivitiesNewestFirst(t *testing.T) {
	app, db, _ := testApp(t)
	createActivity(t, app, "Older")
	newer := createActivity(t, app, "Newer")

	// sqlite timestamps have second precision; force a distinct order.
	require.NoError(t, db.Model(&model.ActivityModel{}).
		Where("activity_id = ?", newer.ID).
		Update("activity_created_at", gorm.Expr("datetime('now', '+1 hour')")).Error)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/activities/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got []dto.ActivityDTO
	decodeEnvelope(t, resp, &got)
	require.Len(t, got, 2)
	assert.Equal(t, "Newer", got[0].Title)
	assert.Equal(t, "Older", got[1].Title)
}

/* ===============================
   Update
=================================*/

func updateActivity(t *testing.T, app *fiber.App, id string, fields map[string]string, imageNames ...string) *http.Response {
	t.Helper()
	body, ct := multipartBody(t, fields, imageNames...)
	req := httptest.NewRequest(http.MethodPut, "/api/activities/"+id, body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestUpdateActivityReplaceImages(t *testing.T) {
	app, db, _ := testApp(t)
	created := createActivity(t, app, "Replace Me", "old1.jpg", "old2.jpg")

	resp := updateActivity(t, app, created.ID, activityFields("Replace Me"), "new1.jpg", "new2.jpg", "new3.jpg")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got dto.ActivityDTO
	decodeEnvelope(t, resp, &got)

	require.Len(t, got.Images, 3)
	for i, img := range got.Images {
		assert.Equal(t, i, img.Order)
		assert.NotContains(t, img.URL, "old")
	}
	assert.Equal(t, got.Images[0].URL, got.ImageURL)
	assert.Contains(t, got.ImageURL, "new1.jpg")

	// Old gallery rows are really gone, not just hidden.
	var count int64
	require.NoError(t, db.Model(&model.ActivityImageModel{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestUpdateActivityAppendImages(t *testing.T) {
	app, _, _ := testApp(t)
	created := createActivity(t, app, "Append Here", "old1.jpg", "old2.jpg")

	fields := activityFields("Append Here")
	fields["keepExistingImages"] = "true"
	resp := updateActivity(t, app, created.ID, fields, "new1.jpg")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got dto.ActivityDTO
	decodeEnvelope(t, resp, &got)

	require.Len(t, got.Images, 3)
	assert.Contains(t, got.Images[0].URL, "old1.jpg")
	assert.Contains(t, got.Images[1].URL, "old2.jpg")
	assert.Contains(t, got.Images[2].URL, "new1.jpg")
	// Appended images continue the order sequence.
	assert.Equal(t, 2, got.Images[2].Order)
	// Primary stays on the original first image.
	assert.Equal(t, created.ImageURL, got.ImageURL)
}

func TestUpdateActivityKeepImagesNoUploads(t *testing.T) {
	app, _, _ := testApp(t)
	created := createActivity(t, app, "Untouched Gallery", "a.jpg", "b.jpg")

	fields := activityFields("Untouched Gallery")
	fields["keepExistingImages"] = "true"
	fields["shortDescription"] = "edited short"
	resp := updateActivity(t, app, created.ID, fields)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got dto.ActivityDTO
	decodeEnvelope(t, resp, &got)
	assert.Equal(t, "edited short", got.ShortDescription)
	require.Len(t, got.Images, 2)
	assert.Equal(t, created.ImageURL, got.ImageURL)
	assert.Equal(t, created.Slug, got.Slug)
}

func TestUpdateActivityTitleChangeReslugs(t *testing.T) {
	app, _, _ := testApp(t)
	created := createActivity(t, app, "Original Title")

	resp := updateActivity(t, app, created.ID, activityFields("Brand New Title"))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got dto.ActivityDTO
	decodeEnvelope(t, resp, &got)
	assert.Equal(t, "brand-new-title", got.Slug)

	// The new slug resolves, the old one no longer does.
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/activities/brand-new-title", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/activities/original-title", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateActivityTitleCollisionGetsSuffix(t *testing.T) {
	app, _, _ := testApp(t)
	createActivity(t, app, "Taken Title")
	other := createActivity(t, app, "Something Else")

	resp := updateActivity(t, app, other.ID, activityFields("Taken Title"))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got dto.ActivityDTO
	decodeEnvelope(t, resp, &got)
	assert.Equal(t, "taken-title-2", got.Slug)
}

func TestUpdateActivityMissingText(t *testing.T) {
	app, _, fs := testApp(t)
	created := createActivity(t, app, "Valid Activity", "a.jpg")
	uploadsBefore := fs.calls

	fields := activityFields("Valid Activity")
	fields["longDescription"] = ""
	resp := updateActivity(t, app, created.ID, fields, "new.jpg")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, uploadsBefore, fs.calls)
}

func TestUpdateActivityNotFound(t *testing.T) {
	app, _, _ := testApp(t)
	resp := updateActivity(t, app, "9f7b9c1e-0000-0000-0000-000000000000", activityFields("Whatever"))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

/* ===============================
   Delete
=================================*/

func TestDeleteActivityRemovesImages(t *testing.T) {
	app, db, _ := testApp(t)
	created := createActivity(t, app, "Doomed", "a.jpg", "b.jpg")
	survivor := createActivity(t, app, "Survivor", "c.jpg")

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/activities/"+created.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var activityCount, imageCount int64
	require.NoError(t, db.Model(&model.ActivityModel{}).Count(&activityCount).Error)
	require.NoError(t, db.Model(&model.ActivityImageModel{}).Count(&imageCount).Error)
	assert.EqualValues(t, 1, activityCount)
	assert.EqualValues(t, 1, imageCount)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/activities/"+survivor.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestDeleteActivityNotFound(t *testing.T) {
	app, _, _ := testApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/activities/9f7b9c1e-0000-0000-0000-000000000000", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
