package dto

import (
	"time"

	"github.com/expohub/expohub/internal/domain/media"
)

type ImageDTO struct {
	ID          uint      `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

type DocumentDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	FileSize      int64     `json:"file_size"`
	DownloadCount int64     `json:"download_count"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToImageDTO(img *media.Image, resolve func(string) string) ImageDTO {
	return ImageDTO{
		ID:          img.ID(),
		URL:         resolve(img.Ref()),
		Title:       img.Title(),
		Description: img.Description(),
		SortOrder:   img.SortOrder(),
		CreatedAt:   img.CreatedAt(),
	}
}

func ToDocumentDTO(doc *media.Document, resolve func(string) string) DocumentDTO {
	return DocumentDTO{
		ID:            doc.ID(),
		Title:         doc.Title(),
		URL:           resolve(doc.Ref()),
		FileSize:      doc.FileSize(),
		DownloadCount: doc.DownloadCount(),
		CreatedAt:     doc.CreatedAt(),
	}
}
