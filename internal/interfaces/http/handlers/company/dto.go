package company

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/expohub/expohub/internal/application/company/usecases"
	"github.com/expohub/expohub/internal/domain/company"
	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/utils"
)

type CompanyRequest struct {
	Name             string `json:"name" binding:"required,max=200"`
	Description      string `json:"description" binding:"max=20000"`
	ShortDescription string `json:"short_description" binding:"max=500"`
	CategoryID       *uint  `json:"category_id,omitempty"`
	City             string `json:"city" binding:"max=100"`
	Country          string `json:"country" binding:"max=100"`
	Address          string `json:"address" binding:"max=300"`
	Website          string `json:"website" binding:"omitempty,url"`
	Email            string `json:"email" binding:"omitempty,email"`
	Phone            string `json:"phone" binding:"max=30"`
	FoundedYear      *int   `json:"founded_year,omitempty" binding:"omitempty,gte=1800"`
	EmployeesCount   string `json:"employees_count" binding:"max=50"`
}

func (r *CompanyRequest) profile() company.Profile {
	return company.Profile{
		Name:             r.Name,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		CategoryID:       r.CategoryID,
		City:             r.City,
		Country:          r.Country,
		Address:          r.Address,
		Website:          r.Website,
		Email:            r.Email,
		Phone:            r.Phone,
		FoundedYear:      r.FoundedYear,
		EmployeesCount:   r.EmployeesCount,
	}
}

func (r *CompanyRequest) ToCreateCommand(actor user.Principal) usecases.CreateCompanyCommand {
	return usecases.CreateCompanyCommand{Actor: actor, Profile: r.profile()}
}

type UpdateCompanyRequest struct {
	CompanyRequest
	LogoRef *string `json:"logo_ref,omitempty" binding:"omitempty,max=255"`
}

func (r *UpdateCompanyRequest) ToCommand(id uint, actor user.Principal) usecases.UpdateCompanyCommand {
	return usecases.UpdateCompanyCommand{
		ID:      id,
		Actor:   actor,
		Profile: r.profile(),
		LogoRef: r.LogoRef,
	}
}

type ProductRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=10000"`
	PriceFrom   *int64 `json:"price_from,omitempty" binding:"omitempty,gte=0"`
}

// ContactRequest is an inquiry sent to a company, optionally about one of
// its products.
type ContactRequest struct {
	ProductID *uint  `json:"product_id,omitempty" binding:"omitempty,gt=0"`
	Name      string `json:"name" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"max=30"`
	Message   string `json:"message" binding:"required,max=5000"`
}

func (r *ContactRequest) ToCommand(companyID uint, actor user.Principal) usecases.SubmitContactCommand {
	return usecases.SubmitContactCommand{
		CompanyID: companyID,
		ProductID: r.ProductID,
		Actor:     actor,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Message:   r.Message,
	}
}

type ContactResponse struct {
	RequestID uint `json:"request_id"`
}

// lookupParam is the :id path segment, either a numeric ID or a slug.
type lookupParam struct {
	Value string `uri:"id" binding:"required,slug"`
}

type ViewResponse struct {
	Counted bool `json:"counted"`
}

func parseListQuery(c *gin.Context, viewer user.Principal) (usecases.ListCompaniesQuery, error) {
	p := utils.ParsePagination(c)
	query := usecases.ListCompaniesQuery{
		Viewer:   viewer,
		Status:   c.Query("status"),
		City:     c.Query("city"),
		Page:     p.Page,
		PageSize: p.PageSize,
	}
	if raw := c.Query("owner_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return query, errors.NewValidationError("invalid owner_id")
		}
		query.OwnerID = uint(id)
	}
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return query, errors.NewValidationError("invalid category_id")
		}
		query.CategoryID = uint(id)
	}
	return query, nil
}
