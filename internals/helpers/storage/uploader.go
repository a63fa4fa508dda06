package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"
)

// DefaultUploadDelay is the pause between consecutive uploads. The remote
// store rate-limits bursts, so batches go up strictly one at a time.
const DefaultUploadDelay = 500 * time.Millisecond

// Uploader runs multi-file uploads sequentially in input order. The first
// failure aborts the batch; files stored earlier in the batch stay where
// they are (same orphan policy as the delete paths).
type Uploader struct {
	Storage ImageStorage
	Delay   time.Duration
}

func NewUploader(s ImageStorage) *Uploader {
	return &Uploader{Storage: s, Delay: DefaultUploadDelay}
}

// StoreAll uploads every file and returns their public URLs in input order.
// Zero-size entries must be filtered out by the caller beforehand.
func (u *Uploader) StoreAll(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))

	for i, fh := range files {
		url, err := u.Storage.Store(ctx, fh)
		if err != nil {
			return nil, fmt.Errorf("upload %s: %w", fh.Filename, err)
		}
		urls = append(urls, url)

		// Throttle between files, not after the last one.
		if i < len(files)-1 && u.Delay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(u.Delay):
			}
		}
	}
	return urls, nil
}

// FilterNonEmpty drops nil and zero-size multipart entries, preserving order.
func FilterNonEmpty(files []*multipart.FileHeader) []*multipart.FileHeader {
	out := make([]*multipart.FileHeader, 0, len(files))
	for _, fh := range files {
		if fh != nil && fh.Size > 0 {
			out = append(out, fh)
		}
	}
	return out
}
