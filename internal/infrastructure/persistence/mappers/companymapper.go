package mappers

import (
	"fmt"

	"github.com/expohub/expohub/internal/domain/company"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	"github.com/expohub/expohub/internal/infrastructure/persistence/models"
)

// CompanyMapper handles the conversion between companies and their rows
type CompanyMapper interface {
	ToEntity(model *models.CompanyModel) (*company.Company, error)
	ToModel(entity *company.Company) *models.CompanyModel
	ToEntities(modelList []*models.CompanyModel) ([]*company.Company, error)
	ProductToEntity(model *models.ProductModel) *company.Product
	ProductToModel(entity *company.Product) *models.ProductModel
}

type companyMapper struct{}

// NewCompanyMapper creates a new company mapper
func NewCompanyMapper() CompanyMapper {
	return &companyMapper{}
}

func (m *companyMapper) ToEntity(model *models.CompanyModel) (*company.Company, error) {
	if model == nil {
		return nil, nil
	}
	state, err := columnsToLifecycle(lvo.KindCompany, model.LifecycleColumns)
	if err != nil {
		return nil, fmt.Errorf("company %d: %w", model.ID, err)
	}
	profile := company.Profile{
		Name:             model.Name,
		Description:      model.Description,
		ShortDescription: model.ShortDescription,
		CategoryID:       model.CategoryID,
		City:             model.City,
		Country:          model.Country,
		Address:          model.Address,
		Website:          model.Website,
		Email:            model.Email,
		Phone:            model.Phone,
		FoundedYear:      model.FoundedYear,
		EmployeesCount:   model.EmployeesCount,
	}
	return company.ReconstructCompany(
		model.ID,
		model.Slug,
		model.OwnerID,
		profile,
		model.LogoRef,
		state,
		columnsToStats(model.StatsColumns),
		model.ContactRequestsCount,
		model.IsVerified,
		model.IsPremium,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *companyMapper) ToModel(entity *company.Company) *models.CompanyModel {
	p := entity.Profile()
	return &models.CompanyModel{
		ID:                   entity.ID(),
		Slug:                 entity.Slug(),
		OwnerID:              entity.OwnerID(),
		Name:                 p.Name,
		Description:          p.Description,
		ShortDescription:     p.ShortDescription,
		CategoryID:           p.CategoryID,
		City:                 p.City,
		Country:              p.Country,
		Address:              p.Address,
		Website:              p.Website,
		Email:                p.Email,
		Phone:                p.Phone,
		FoundedYear:          p.FoundedYear,
		EmployeesCount:       p.EmployeesCount,
		LogoRef:              entity.LogoRef(),
		IsVerified:           entity.IsVerified(),
		IsPremium:            entity.IsPremium(),
		LifecycleColumns:     lifecycleToColumns(entity.Lifecycle()),
		StatsColumns:         statsToColumns(entity.Stats()),
		ContactRequestsCount: entity.ContactRequestsCount(),
		Version:              entity.Version(),
		CreatedAt:            entity.CreatedAt(),
		UpdatedAt:            entity.UpdatedAt(),
	}
}

func (m *companyMapper) ToEntities(modelList []*models.CompanyModel) ([]*company.Company, error) {
	entities := make([]*company.Company, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *companyMapper) ProductToEntity(model *models.ProductModel) *company.Product {
	if model == nil {
		return nil
	}
	return company.ReconstructProduct(
		model.ID,
		model.CompanyID,
		model.Name,
		model.Slug,
		model.Description,
		model.PriceFrom,
		model.IsActive,
		model.ViewsCount,
		model.InquiriesCount,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *companyMapper) ProductToModel(entity *company.Product) *models.ProductModel {
	return &models.ProductModel{
		ID:             entity.ID(),
		CompanyID:      entity.CompanyID(),
		Name:           entity.Name(),
		Slug:           entity.Slug(),
		Description:    entity.Description(),
		PriceFrom:      entity.PriceFrom(),
		IsActive:       entity.IsActive(),
		ViewsCount:     entity.ViewsCount(),
		InquiriesCount: entity.InquiriesCount(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}
}
