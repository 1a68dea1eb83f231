package mappers

import (
	"fmt"

	"github.com/expohub/expohub/internal/domain/exhibition"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	"github.com/expohub/expohub/internal/infrastructure/persistence/models"
)

// ExhibitionMapper handles the conversion between exhibitions and their rows
type ExhibitionMapper interface {
	ToEntity(model *models.ExhibitionModel) (*exhibition.Exhibition, error)
	ToModel(entity *exhibition.Exhibition) *models.ExhibitionModel
	ToEntities(modelList []*models.ExhibitionModel) ([]*exhibition.Exhibition, error)
}

type exhibitionMapper struct{}

// NewExhibitionMapper creates a new exhibition mapper
func NewExhibitionMapper() ExhibitionMapper {
	return &exhibitionMapper{}
}

func (m *exhibitionMapper) ToEntity(model *models.ExhibitionModel) (*exhibition.Exhibition, error) {
	if model == nil {
		return nil, nil
	}
	state, err := columnsToLifecycle(lvo.KindExhibition, model.LifecycleColumns)
	if err != nil {
		return nil, fmt.Errorf("exhibition %d: %w", model.ID, err)
	}
	details := exhibition.Details{
		Title:                model.Title,
		Description:          model.Description,
		ShortDescription:     model.ShortDescription,
		CategoryID:           model.CategoryID,
		StartDate:            model.StartDate,
		EndDate:              model.EndDate,
		RegistrationDeadline: model.RegistrationDeadline,
		VenueName:            model.VenueName,
		Address:              model.Address,
		City:                 model.City,
		Country:              model.Country,
		ContactEmail:         model.ContactEmail,
		ContactPhone:         model.ContactPhone,
		Website:              model.Website,
		IsFree:               model.IsFree,
		MaxParticipants:      model.MaxParticipants,
	}
	return exhibition.ReconstructExhibition(
		model.ID,
		model.Slug,
		model.OwnerID,
		details,
		model.LogoRef,
		model.BannerRef,
		model.IsFeatured,
		state,
		columnsToStats(model.StatsColumns),
		model.RegistrationsCount,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *exhibitionMapper) ToModel(entity *exhibition.Exhibition) *models.ExhibitionModel {
	d := entity.Details()
	return &models.ExhibitionModel{
		ID:                   entity.ID(),
		Slug:                 entity.Slug(),
		OwnerID:              entity.OwnerID(),
		Title:                d.Title,
		Description:          d.Description,
		ShortDescription:     d.ShortDescription,
		CategoryID:           d.CategoryID,
		StartDate:            d.StartDate,
		EndDate:              d.EndDate,
		RegistrationDeadline: d.RegistrationDeadline,
		VenueName:            d.VenueName,
		Address:              d.Address,
		City:                 d.City,
		Country:              d.Country,
		ContactEmail:         d.ContactEmail,
		ContactPhone:         d.ContactPhone,
		Website:              d.Website,
		IsFree:               d.IsFree,
		MaxParticipants:      d.MaxParticipants,
		LogoRef:              entity.LogoRef(),
		BannerRef:            entity.BannerRef(),
		IsFeatured:           entity.IsFeatured(),
		LifecycleColumns:     lifecycleToColumns(entity.Lifecycle()),
		StatsColumns:         statsToColumns(entity.Stats()),
		RegistrationsCount:   entity.RegistrationsCount(),
		Version:              entity.Version(),
		CreatedAt:            entity.CreatedAt(),
		UpdatedAt:            entity.UpdatedAt(),
	}
}

func (m *exhibitionMapper) ToEntities(modelList []*models.ExhibitionModel) ([]*exhibition.Exhibition, error) {
	entities := make([]*exhibition.Exhibition, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
