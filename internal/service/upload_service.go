//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"bhavesh/backend/pkg/logger"
)

// MaxUploadSize is the per-file attachment cap.
const MaxUploadSize = 10 << 20

var allowedContentTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".dwg":  true,
	".dxf":  true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// Upload is a single attachment to store.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// StoredFile is a stored attachment: its public URL and the original
// file name, in that pairing.
type StoredFile struct {
	URL      string
	Filename string
}

// ObjectStore writes attachment bytes to durable storage and resolves
// public links. Implementations must be safe for concurrent use.
type ObjectStore interface {
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	PublicURL(key string) string
}

// UploadService validates and stores enquiry attachments.
type UploadService interface {
	Upload(ctx context.Context, upload Upload) (StoredFile, error)
	UploadAll(ctx context.Context, uploads []Upload) ([]StoredFile, error)
}

type uploadService struct {
	store ObjectStore
	clock func() time.Time
}

func NewUploadService(store ObjectStore) UploadService {
	return &uploadService{store: store, clock: time.Now}
}

// Upload stores one attachment and returns its public URL with the
// original file name. Unsupported types and oversize files are rejected
// before any bytes reach storage.
func (s *uploadService) Upload(ctx context.Context, upload Upload) (StoredFile, error) {
	if err := validateUpload(upload); err != nil {
		return StoredFile{}, err
	}

	key := s.objectKey(upload.Filename)
	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// Cap the read as well: the declared size is client-supplied.
	reader := io.LimitReader(upload.Reader, MaxUploadSize)
	if err := s.store.Put(ctx, key, reader, upload.Size, contentType); err != nil {
		logger.Error("attachment upload failed", "key", key, "error", err)
		return StoredFile{}, fmt.Errorf("%w: put object: %v", ErrStorage, err)
	}

	return StoredFile{URL: s.store.PublicURL(key), Filename: upload.Filename}, nil
}

// UploadAll stores a batch of attachments, preserving input order in
// the result. If any upload fails the whole batch fails and no result
// is returned, so callers never link a partial attachment set.
func (s *uploadService) UploadAll(ctx context.Context, uploads []Upload) ([]StoredFile, error) {
	stored := make([]StoredFile, len(uploads))

	g, gctx := errgroup.WithContext(ctx)
	for i, upload := range uploads {
		g.Go(func() error {
			file, err := s.Upload(gctx, upload)
			if err != nil {
				return err
			}
			stored[i] = file
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return stored, nil
}

// objectKey builds a content-addressed-by-timestamp key under uploads/:
// millis + a uuid component + the sanitized original name.
func (s *uploadService) objectKey(filename string) string {
	sanitized := unsafeFilenameChars.ReplaceAllString(filename, "_")
	if len(sanitized) > 100 {
		sanitized = sanitized[:100]
	}
	return fmt.Sprintf("uploads/%d-%s-%s", s.clock().UnixMilli(), uuid.NewString(), sanitized)
}

func validateUpload(upload Upload) error {
	if strings.TrimSpace(upload.Filename) == "" {
		return &ValidationError{Issues: []FieldIssue{{Field: "file", Message: "file name is required"}}}
	}
	if !allowedContentTypes[upload.ContentType] && !allowedExtensions[strings.ToLower(path.Ext(upload.Filename))] {
		return ErrUnsupportedFile
	}
	if upload.Size > MaxUploadSize {
		return ErrFileTooLarge
	}
	return nil
}
