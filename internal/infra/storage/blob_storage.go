package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"profilecard/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket URL schemes accepted in storage.bucketUrl
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// blobStorage stores images in a gocloud.dev bucket (local files, memory, S3 or GCS).
// Object keys are "<bucket>/<path>" and public URLs are "<publicBaseURL>/<key>".
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// NewBlobStorage wraps an opened bucket.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) *blobStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// OpenBlobStorage opens the bucket behind bucketURL, e.g. file:///var/data/images or s3://my-bucket.
func OpenBlobStorage(ctx context.Context, bucketURL, publicBaseURL string, logger *slog.Logger) (*blobStorage, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return NewBlobStorage(bucket, publicBaseURL, logger), nil
}

// Upload streams the image into the bucket.
func (s *blobStorage) Upload(ctx context.Context, bucket, objectPath string, image *service.ImageUpload) (string, error) {
	key := path.Join(bucket, objectPath)

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: image.ContentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}
	if _, err := io.Copy(w, image.Content); err != nil {
		_ = w.Close()

		return "", errors.Wrapf(err, "failed to write %s", key)
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to commit %s", key)
	}

	s.logger.Debug("Image stored", slog.String("key", key), slog.Int64("size", image.Size))

	return s.publicURL(key), nil
}

// Delete removes the object; a missing object is not an error.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

// ObjectKey maps a public URL produced by Upload back to its key.
func (s *blobStorage) ObjectKey(publicURL string) (string, bool) {
	prefix := s.publicBaseURL + "/"
	if s.publicBaseURL == "" || !strings.HasPrefix(publicURL, prefix) {
		return "", false
	}

	var segments []string
	for _, seg := range strings.Split(strings.TrimPrefix(publicURL, prefix), "/") {
		unescaped, err := url.PathUnescape(seg)
		if err != nil || unescaped == "" || unescaped == "." || unescaped == ".." {
			return "", false
		}
		segments = append(segments, unescaped)
	}
	return strings.Join(segments, "/"), true
}

// Open streams an object back, used for /media serving.
func (s *blobStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", ErrObjectNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to read %s", key)
	}

	return r, r.ContentType(), nil
}

// Close releases the bucket.
func (s *blobStorage) Close() error {
	return s.bucket.Close()
}

func (s *blobStorage) publicURL(key string) string {
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}

	return s.publicBaseURL + "/" + strings.Join(segments, "/")
}
