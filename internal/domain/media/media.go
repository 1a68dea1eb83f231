// Package media holds the pictures and files attached to listings:
// exhibition images and documents and company galleries. Only storage
// references are kept; the bytes live in the asset store.
package media

import (
	"fmt"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/expohub/expohub/internal/domain/lifecycle"
	vo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
)

// Upload folders the references must come from.
const (
	ImageFolder    = "gallery"
	DocumentFolder = "documents"
)

const (
	MaxImagesPerListing       = 30
	MaxDocumentsPerExhibition = 20
	maxTitleLength            = 200
)

// Image is one picture of an exhibition or one company gallery entry.
// Exhibition images carry a caption only; gallery entries may add a
// description.
type Image struct {
	id          uint
	owner       lifecycle.EntityRef
	ref         string
	title       string
	description string
	sortOrder   int
	createdAt   time.Time
}

func NewImage(owner lifecycle.EntityRef, ref, title, description string, sortOrder int, now time.Time) (*Image, error) {
	if owner.IsZero() {
		return nil, fmt.Errorf("image owner is required")
	}
	ref, err := checkRef(ref, ImageFolder)
	if err != nil {
		return nil, err
	}
	title, err = checkTitle(title, false)
	if err != nil {
		return nil, err
	}
	description = strings.TrimSpace(description)
	if description != "" && owner.Kind() == vo.KindExhibition {
		return nil, fmt.Errorf("exhibition images take a caption only")
	}
	if sortOrder < 0 {
		return nil, fmt.Errorf("sort order cannot be negative")
	}
	return &Image{
		owner:       owner,
		ref:         ref,
		title:       title,
		description: description,
		sortOrder:   sortOrder,
		createdAt:   now,
	}, nil
}

// ReconstructImage rebuilds an Image from persistence.
func ReconstructImage(id uint, owner lifecycle.EntityRef, ref, title, description string, sortOrder int, createdAt time.Time) *Image {
	return &Image{
		id:          id,
		owner:       owner,
		ref:         ref,
		title:       title,
		description: description,
		sortOrder:   sortOrder,
		createdAt:   createdAt,
	}
}

func (i *Image) ID() uint                   { return i.id }
func (i *Image) Owner() lifecycle.EntityRef { return i.owner }
func (i *Image) Ref() string                { return i.ref }
func (i *Image) Title() string              { return i.title }
func (i *Image) Description() string        { return i.description }
func (i *Image) SortOrder() int             { return i.sortOrder }
func (i *Image) CreatedAt() time.Time       { return i.createdAt }

// SetID sets the image ID (only for persistence layer use)
func (i *Image) SetID(id uint) {
	i.id = id
}

// Document is a downloadable file of an exhibition: a floor plan, a
// programme or a price list.
type Document struct {
	id            uint
	exhibitionID  uint
	title         string
	ref           string
	fileSize      int64
	downloadCount int64
	createdAt     time.Time
}

func NewDocument(exhibitionID uint, title, ref string, fileSize int64, now time.Time) (*Document, error) {
	if exhibitionID == 0 {
		return nil, fmt.Errorf("exhibition ID is required")
	}
	title, err := checkTitle(title, true)
	if err != nil {
		return nil, err
	}
	ref, err = checkRef(ref, DocumentFolder)
	if err != nil {
		return nil, err
	}
	if fileSize < 0 {
		return nil, fmt.Errorf("file size cannot be negative")
	}
	return &Document{
		exhibitionID: exhibitionID,
		title:        title,
		ref:          ref,
		fileSize:     fileSize,
		createdAt:    now,
	}, nil
}

// ReconstructDocument rebuilds a Document from persistence.
func ReconstructDocument(id, exhibitionID uint, title, ref string, fileSize, downloadCount int64, createdAt time.Time) *Document {
	return &Document{
		id:            id,
		exhibitionID:  exhibitionID,
		title:         title,
		ref:           ref,
		fileSize:      fileSize,
		downloadCount: downloadCount,
		createdAt:     createdAt,
	}
}

func (d *Document) ID() uint             { return d.id }
func (d *Document) ExhibitionID() uint   { return d.exhibitionID }
func (d *Document) Title() string        { return d.title }
func (d *Document) Ref() string          { return d.ref }
func (d *Document) FileSize() int64      { return d.fileSize }
func (d *Document) DownloadCount() int64 { return d.downloadCount }
func (d *Document) CreatedAt() time.Time { return d.createdAt }

// SetID sets the document ID (only for persistence layer use)
func (d *Document) SetID(id uint) {
	d.id = id
}

// checkRef accepts only references produced by an upload into folder.
func checkRef(ref, folder string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("file reference is required")
	}
	cleaned := path.Clean(ref)
	if cleaned != ref || !strings.HasPrefix(ref, folder+"/") {
		return "", fmt.Errorf("file reference must point into the %s folder", folder)
	}
	return ref, nil
}

func checkTitle(title string, required bool) (string, error) {
	title = strings.TrimSpace(title)
	if required && title == "" {
		return "", fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "", fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	return title, nil
}
