package service

import (
	"context"
	"io"
)

// ImageUpload is one file received from the admin form
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// ImageStorage stores uploaded images and hands back their public URL
type ImageStorage interface {
	// Upload writes the image under bucket/path and returns its public URL.
	Upload(ctx context.Context, bucket, path string, image *ImageUpload) (string, error)

	// Delete removes the object identified by key. Missing objects are not an error.
	Delete(ctx context.Context, key string) error

	// ObjectKey reports the object key behind a public URL this storage produced.
	// URLs that point elsewhere return false.
	ObjectKey(publicURL string) (key string, ok bool)
}

// MediaReader is implemented by storages that can stream objects back, for /media serving
type MediaReader interface {
	Open(ctx context.Context, key string) (content io.ReadCloser, contentType string, err error)
}
