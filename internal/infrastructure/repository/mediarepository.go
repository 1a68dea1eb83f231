package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/expohub/expohub/internal/domain/lifecycle"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	"github.com/expohub/expohub/internal/domain/media"
	"github.com/expohub/expohub/internal/infrastructure/persistence/models"
	"github.com/expohub/expohub/internal/shared/db"
)

// imageTable maps one listing kind onto its image table.
type imageTable struct {
	model    func() any
	ownerCol string
	toModel  func(img *media.Image) (any, func() uint)
	listRows func(tx *gorm.DB) ([]*media.Image, error)
	firstRow func(tx *gorm.DB) (*media.Image, error)
}

var imageTables = map[lvo.Kind]imageTable{
	lvo.KindExhibition: {
		model:    func() any { return &models.ExhibitionImageModel{} },
		ownerCol: "exhibition_id",
		toModel: func(img *media.Image) (any, func() uint) {
			m := &models.ExhibitionImageModel{
				ExhibitionID: img.Owner().ID(),
				ImageRef:     img.Ref(),
				Caption:      img.Title(),
				SortOrder:    img.SortOrder(),
				CreatedAt:    img.CreatedAt(),
			}
			return m, func() uint { return m.ID }
		},
		listRows: func(tx *gorm.DB) ([]*media.Image, error) {
			var rows []*models.ExhibitionImageModel
			if err := tx.Find(&rows).Error; err != nil {
				return nil, err
			}
			out := make([]*media.Image, 0, len(rows))
			for _, m := range rows {
				out = append(out, exhibitionImageToEntity(m))
			}
			return out, nil
		},
		firstRow: func(tx *gorm.DB) (*media.Image, error) {
			var m models.ExhibitionImageModel
			if err := tx.First(&m).Error; err != nil {
				return nil, err
			}
			return exhibitionImageToEntity(&m), nil
		},
	},
	lvo.KindCompany: {
		model:    func() any { return &models.CompanyGalleryModel{} },
		ownerCol: "company_id",
		toModel: func(img *media.Image) (any, func() uint) {
			m := &models.CompanyGalleryModel{
				CompanyID:   img.Owner().ID(),
				ImageRef:    img.Ref(),
				Title:       img.Title(),
				Description: img.Description(),
				SortOrder:   img.SortOrder(),
				CreatedAt:   img.CreatedAt(),
			}
			return m, func() uint { return m.ID }
		},
		listRows: func(tx *gorm.DB) ([]*media.Image, error) {
			var rows []*models.CompanyGalleryModel
			if err := tx.Find(&rows).Error; err != nil {
				return nil, err
			}
			out := make([]*media.Image, 0, len(rows))
			for _, m := range rows {
				out = append(out, companyGalleryToEntity(m))
			}
			return out, nil
		},
		firstRow: func(tx *gorm.DB) (*media.Image, error) {
			var m models.CompanyGalleryModel
			if err := tx.First(&m).Error; err != nil {
				return nil, err
			}
			return companyGalleryToEntity(&m), nil
		},
	},
}

func exhibitionImageToEntity(m *models.ExhibitionImageModel) *media.Image {
	return media.ReconstructImage(m.ID, lifecycle.ExhibitionRef(m.ExhibitionID), m.ImageRef, m.Caption, "", m.SortOrder, m.CreatedAt)
}

func companyGalleryToEntity(m *models.CompanyGalleryModel) *media.Image {
	return media.ReconstructImage(m.ID, lifecycle.CompanyRef(m.CompanyID), m.ImageRef, m.Title, m.Description, m.SortOrder, m.CreatedAt)
}

// ImageRepository implements media.ImageRepository over exhibition_images
// and company_gallery.
type ImageRepository struct {
	db *gorm.DB
}

// NewImageRepository creates a new listing image repository
func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) table(owner lifecycle.EntityRef) (imageTable, error) {
	return lifecycle.Lookup(imageTables, owner)
}

// scoped starts a query on owner's image table limited to its rows.
func (r *ImageRepository) scoped(ctx context.Context, owner lifecycle.EntityRef) (*gorm.DB, imageTable, error) {
	t, err := r.table(owner)
	if err != nil {
		return nil, imageTable{}, err
	}
	tx := db.GetTxFromContext(ctx, r.db).Model(t.model()).Where(t.ownerCol+" = ?", owner.ID())
	return tx, t, nil
}

func (r *ImageRepository) Create(ctx context.Context, img *media.Image) error {
	t, err := r.table(img.Owner())
	if err != nil {
		return err
	}
	model, id := t.toModel(img)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	img.SetID(id())
	return nil
}

func (r *ImageRepository) GetByID(ctx context.Context, owner lifecycle.EntityRef, id uint) (*media.Image, error) {
	tx, t, err := r.scoped(ctx, owner)
	if err != nil {
		return nil, err
	}
	img, err := t.firstRow(tx.Where("id = ?", id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, media.ErrImageNotFound
		}
		return nil, fmt.Errorf("failed to get image: %w", err)
	}
	return img, nil
}

func (r *ImageRepository) Delete(ctx context.Context, owner lifecycle.EntityRef, id uint) error {
	tx, t, err := r.scoped(ctx, owner)
	if err != nil {
		return err
	}
	result := tx.Where("id = ?", id).Delete(t.model())
	if result.Error != nil {
		return fmt.Errorf("failed to delete image: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return media.ErrImageNotFound
	}
	return nil
}

func (r *ImageRepository) ListByOwner(ctx context.Context, owner lifecycle.EntityRef) ([]*media.Image, error) {
	tx, t, err := r.scoped(ctx, owner)
	if err != nil {
		return nil, err
	}
	images, err := t.listRows(tx.Order("sort_order ASC, created_at ASC, id ASC"))
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	return images, nil
}

func (r *ImageRepository) CountByOwner(ctx context.Context, owner lifecycle.EntityRef) (int64, error) {
	tx, _, err := r.scoped(ctx, owner)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count images: %w", err)
	}
	return count, nil
}

// DocumentRepository implements media.DocumentRepository
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new exhibition document repository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func documentToEntity(m *models.ExhibitionDocumentModel) *media.Document {
	return media.ReconstructDocument(m.ID, m.ExhibitionID, m.Title, m.FileRef, m.FileSize, m.DownloadCount, m.CreatedAt)
}

func (r *DocumentRepository) Create(ctx context.Context, doc *media.Document) error {
	model := &models.ExhibitionDocumentModel{
		ExhibitionID: doc.ExhibitionID(),
		Title:        doc.Title(),
		FileRef:      doc.Ref(),
		FileSize:     doc.FileSize(),
		CreatedAt:    doc.CreatedAt(),
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	doc.SetID(model.ID)
	return nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, exhibitionID, id uint) (*media.Document, error) {
	var model models.ExhibitionDocumentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("exhibition_id = ? AND id = ?", exhibitionID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, media.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return documentToEntity(&model), nil
}

func (r *DocumentRepository) Delete(ctx context.Context, exhibitionID, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Where("exhibition_id = ? AND id = ?", exhibitionID, id).
		Delete(&models.ExhibitionDocumentModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete document: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return media.ErrDocumentNotFound
	}
	return nil
}

func (r *DocumentRepository) ListByExhibition(ctx context.Context, exhibitionID uint) ([]*media.Document, error) {
	var modelList []*models.ExhibitionDocumentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("exhibition_id = ?", exhibitionID).
		Order("created_at DESC, id DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	out := make([]*media.Document, 0, len(modelList))
	for _, m := range modelList {
		out = append(out, documentToEntity(m))
	}
	return out, nil
}

func (r *DocumentRepository) CountByExhibition(ctx context.Context, exhibitionID uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.ExhibitionDocumentModel{}).
		Where("exhibition_id = ?", exhibitionID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return count, nil
}

// IncrementDownloads bumps download_count in a single UPDATE.
func (r *DocumentRepository) IncrementDownloads(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.ExhibitionDocumentModel{}).
		Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to count download: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return media.ErrDocumentNotFound
	}
	return nil
}
