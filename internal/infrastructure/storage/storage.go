// Package storage keeps uploaded images and documents. Entities store only
// the returned reference; URL turns it into a public address.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/expohub/expohub/internal/shared/config"
	"github.com/expohub/expohub/internal/shared/logger"
)

var ErrInvalidRef = errors.New("invalid storage reference")

// Storage saves objects and resolves references to URLs.
type Storage interface {
	Put(ctx context.Context, ref string, body io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, ref string) error
	URL(ref string) string
}

var allowedExtensions = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/webp":    ".webp",
	"image/gif":     ".gif",
	"image/svg+xml": ".svg",
}

var documentExtensions = map[string]string{
	"application/pdf":               ".pdf",
	"application/msword":            ".doc",
	"application/vnd.ms-excel":      ".xls",
	"application/vnd.ms-powerpoint": ".ppt",

	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   ".docx",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         ".xlsx",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": ".pptx",

	"text/plain": ".txt",
}

// ExtensionFor returns the file extension for an accepted image type.
func ExtensionFor(contentType string) (string, bool) {
	ext, ok := allowedExtensions[normalizeType(contentType)]
	return ext, ok
}

// DocumentExtensionFor returns the file extension for an accepted
// document type.
func DocumentExtensionFor(contentType string) (string, bool) {
	ext, ok := documentExtensions[normalizeType(contentType)]
	return ext, ok
}

func normalizeType(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

// NewRef builds a fresh reference like logos/2024/05/<uuid>.png.
func NewRef(folder string, now time.Time, ext string) string {
	return path.Join(folder, now.UTC().Format("2006/01"), uuid.NewString()+ext)
}

// cleanRef rejects references that could escape the storage root.
func cleanRef(ref string) (string, error) {
	ref = strings.TrimPrefix(strings.ReplaceAll(strings.TrimSpace(ref), "\\", "/"), "/")
	if ref == "" {
		return "", ErrInvalidRef
	}
	cleaned := path.Clean(ref)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrInvalidRef
	}
	return cleaned, nil
}

// isAbsoluteURL reports refs that were stored as full URLs.
func isAbsoluteURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// New builds the backend selected in cfg.
func New(ctx context.Context, cfg config.StorageConfig, log logger.Interface) (Storage, error) {
	switch cfg.Backend {
	case config.StorageS3:
		s, err := NewS3Storage(ctx, cfg)
		if err != nil {
			return nil, err
		}
		log.Infow("asset storage initialized", "backend", "s3", "bucket", cfg.Bucket, "region", cfg.Region)
		return s, nil
	case config.StorageLocal, "":
		s, err := NewLocalStorage(cfg.LocalRoot, cfg.PublicURL)
		if err != nil {
			return nil, err
		}
		log.Infow("asset storage initialized", "backend", "local", "root", cfg.LocalRoot)
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.Backend)
	}
}
