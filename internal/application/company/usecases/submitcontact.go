package usecases

import (
	"context"
	"errors"

	"github.com/expohub/expohub/internal/application/aggregation"
	"github.com/expohub/expohub/internal/domain/company"
	"github.com/expohub/expohub/internal/domain/counter"
	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/shared/biztime"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

type SubmitContactCommand struct {
	CompanyID uint
	ProductID *uint
	Actor     user.Principal
	Name      string
	Email     string
	Phone     string
	Message   string
}

type SubmitContactResult struct {
	RequestID uint
}

// SubmitContactUseCase stores a visitor message to an active company. A
// message about a product counts as a product inquiry, otherwise as a
// company contact request.
type SubmitContactUseCase struct {
	companyRepo company.Repository
	productRepo company.ProductRepository
	contactRepo company.ContactRepository
	counters    *aggregation.CounterService
	logger      logger.Interface
}

func NewSubmitContactUseCase(
	companyRepo company.Repository,
	productRepo company.ProductRepository,
	contactRepo company.ContactRepository,
	counters *aggregation.CounterService,
	logger logger.Interface,
) *SubmitContactUseCase {
	return &SubmitContactUseCase{
		companyRepo: companyRepo,
		productRepo: productRepo,
		contactRepo: contactRepo,
		counters:    counters,
		logger:      logger,
	}
}

func (uc *SubmitContactUseCase) Execute(ctx context.Context, cmd SubmitContactCommand) (*SubmitContactResult, error) {
	c, err := uc.companyRepo.GetByID(ctx, cmd.CompanyID)
	if err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return nil, apperrors.NewNotFoundError("company not found")
		}
		return nil, err
	}
	if !c.AcceptsContacts() {
		return nil, apperrors.NewConflictError(company.ErrContactsNotAllowed.Error())
	}

	if cmd.ProductID != nil {
		p, err := uc.productRepo.GetByID(ctx, *cmd.ProductID)
		if err != nil || p.CompanyID() != c.ID() || !p.IsActive() {
			return nil, apperrors.NewNotFoundError("product not found")
		}
	}

	var userID *uint
	if cmd.Actor.UserID != 0 {
		id := cmd.Actor.UserID
		userID = &id
	}
	req, err := company.NewContactRequest(c.ID(), cmd.ProductID, userID, cmd.Name, cmd.Email, cmd.Phone, cmd.Message, biztime.NowUTC())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.contactRepo.Create(ctx, req); err != nil {
		uc.logger.Errorw("failed to store contact request", "company_id", c.ID(), "error", err)
		return nil, err
	}

	if cmd.ProductID != nil {
		uc.counters.BumpProduct(ctx, *cmd.ProductID, counter.ProductInquiries, 1)
	} else {
		uc.counters.Bump(ctx, c.Ref(), counter.ContactRequests, 1)
	}

	uc.logger.Infow("contact request stored", "company_id", c.ID(), "request_id", req.ID)
	return &SubmitContactResult{RequestID: req.ID}, nil
}
