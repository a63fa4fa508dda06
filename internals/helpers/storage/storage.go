// Package storage persists uploaded images and hands back publicly
// reachable URLs. Production uses Alibaba OSS; development writes under
// ./public/uploads. Files are never reclaimed when their database rows go
// away — orphans are accepted.
package storage

import (
	"context"
	"log"
	"mime/multipart"

	"github.com/soungoolwin/EduBusinessAcademy/internals/configs"
)

type ImageStorage interface {
	// Store persists one uploaded file and returns its public URL.
	Store(ctx context.Context, fh *multipart.FileHeader) (string, error)

	// Delete removes a previously stored file by its public URL. No caller
	// uses it today; it exists so a cleanup job could be added without
	// touching the interface.
	Delete(ctx context.Context, publicURL string) error

	// Mode reports "oss" or "local".
	Mode() string
}

// NewFromEnv picks the backend: OSS when running in production with OSS
// credentials present, local disk otherwise.
func NewFromEnv() (ImageStorage, error) {
	if configs.IsProduction() && configs.GetEnv("ALI_OSS_ACCESS_KEY") != "" {
		s, err := NewOSSStorageFromEnv()
		if err != nil {
			return nil, err
		}
		log.Println("✅ Image storage: Alibaba OSS")
		return s, nil
	}

	s, err := NewLocalStorage(
		configs.GetEnv("UPLOADS_DIR", "public/uploads"),
		configs.GetEnv("UPLOADS_BASE_URL", "/uploads"),
	)
	if err != nil {
		return nil, err
	}
	log.Println("✅ Image storage: local disk")
	return s, nil
}
