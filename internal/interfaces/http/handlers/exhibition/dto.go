package exhibition

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expohub/expohub/internal/application/exhibition/usecases"
	"github.com/expohub/expohub/internal/domain/exhibition"
	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/utils"
)

type ExhibitionRequest struct {
	Title                string     `json:"title" binding:"required,max=200"`
	Description          string     `json:"description" binding:"max=20000"`
	ShortDescription     string     `json:"short_description" binding:"max=500"`
	CategoryID           *uint      `json:"category_id,omitempty"`
	StartDate            time.Time  `json:"start_date" binding:"required"`
	EndDate              time.Time  `json:"end_date" binding:"required"`
	RegistrationDeadline *time.Time `json:"registration_deadline,omitempty"`
	VenueName            string     `json:"venue_name" binding:"required,max=200"`
	Address              string     `json:"address" binding:"max=300"`
	City                 string     `json:"city" binding:"required,max=100"`
	Country              string     `json:"country" binding:"max=100"`
	ContactEmail         string     `json:"contact_email" binding:"omitempty,email"`
	ContactPhone         string     `json:"contact_phone" binding:"max=30"`
	Website              string     `json:"website" binding:"omitempty,url"`
	IsFree               bool       `json:"is_free"`
	MaxParticipants      *int       `json:"max_participants,omitempty" binding:"omitempty,gt=0"`
}

func (r *ExhibitionRequest) details() exhibition.Details {
	return exhibition.Details{
		Title:                r.Title,
		Description:          r.Description,
		ShortDescription:     r.ShortDescription,
		CategoryID:           r.CategoryID,
		StartDate:            r.StartDate,
		EndDate:              r.EndDate,
		RegistrationDeadline: r.RegistrationDeadline,
		VenueName:            r.VenueName,
		Address:              r.Address,
		City:                 r.City,
		Country:              r.Country,
		ContactEmail:         r.ContactEmail,
		ContactPhone:         r.ContactPhone,
		Website:              r.Website,
		IsFree:               r.IsFree,
		MaxParticipants:      r.MaxParticipants,
	}
}

func (r *ExhibitionRequest) ToCreateCommand(actor user.Principal) usecases.CreateExhibitionCommand {
	return usecases.CreateExhibitionCommand{Actor: actor, Details: r.details()}
}

// UpdateExhibitionRequest replaces the editable fields. Media refs come
// from the upload endpoint; an empty string clears the image.
type UpdateExhibitionRequest struct {
	ExhibitionRequest
	LogoRef   *string `json:"logo_ref,omitempty" binding:"omitempty,max=255"`
	BannerRef *string `json:"banner_ref,omitempty" binding:"omitempty,max=255"`
}

func (r *UpdateExhibitionRequest) ToCommand(id uint, actor user.Principal) usecases.UpdateExhibitionCommand {
	return usecases.UpdateExhibitionCommand{
		ID:        id,
		Actor:     actor,
		Details:   r.details(),
		LogoRef:   r.LogoRef,
		BannerRef: r.BannerRef,
	}
}

type RegistrationResponse struct {
	RegistrationID uint `json:"registration_id"`
	ExhibitionID   uint `json:"exhibition_id"`
}

// lookupParam is the :id path segment, either a numeric ID or a slug.
type lookupParam struct {
	Value string `uri:"id" binding:"required,slug"`
}

type ViewResponse struct {
	Counted bool `json:"counted"`
}

func parseListQuery(c *gin.Context, viewer user.Principal) (usecases.ListExhibitionsQuery, error) {
	p := utils.ParsePagination(c)
	query := usecases.ListExhibitionsQuery{
		Viewer:   viewer,
		Status:   c.Query("status"),
		City:     c.Query("city"),
		Type:     c.Query("type"),
		Page:     p.Page,
		PageSize: p.PageSize,
	}

	switch query.Type {
	case "", string(exhibition.TypeUpcoming), string(exhibition.TypeCurrent), string(exhibition.TypeCompleted):
	default:
		return query, errors.NewValidationError("invalid type filter", "use upcoming, current or completed")
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
	if raw := c.Query("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return query, errors.NewValidationError("invalid featured flag")
		}
		query.Featured = &featured
	}
	return query, nil
}
