package usecases

import (
	"context"
	"fmt"

	"github.com/expohub/expohub/internal/domain/company"
	"github.com/expohub/expohub/internal/domain/exhibition"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
)

// SubjectRepository loads and saves the entities of one family.
type SubjectRepository interface {
	Load(ctx context.Context, id uint) (lifecycle.Subject, error)
	Save(ctx context.Context, s lifecycle.Subject) error
}

// SubjectRepositories is the per-kind repository table.
type SubjectRepositories map[lvo.Kind]SubjectRepository

// NewSubjectRepositories registers every entity family.
func NewSubjectRepositories(exhibitions exhibition.Repository, companies company.Repository) SubjectRepositories {
	return SubjectRepositories{
		lvo.KindExhibition: exhibitionSubjects{repo: exhibitions},
		lvo.KindCompany:    companySubjects{repo: companies},
	}
}

type exhibitionSubjects struct {
	repo exhibition.Repository
}

func (s exhibitionSubjects) Load(ctx context.Context, id uint) (lifecycle.Subject, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s exhibitionSubjects) Save(ctx context.Context, subject lifecycle.Subject) error {
	e, ok := subject.(*exhibition.Exhibition)
	if !ok {
		return fmt.Errorf("%w: expected exhibition, got %T", lifecycle.ErrUnknownKind, subject)
	}
	return s.repo.Update(ctx, e)
}

type companySubjects struct {
	repo company.Repository
}

func (s companySubjects) Load(ctx context.Context, id uint) (lifecycle.Subject, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s companySubjects) Save(ctx context.Context, subject lifecycle.Subject) error {
	c, ok := subject.(*company.Company)
	if !ok {
		return fmt.Errorf("%w: expected company, got %T", lifecycle.ErrUnknownKind, subject)
	}
	return s.repo.Update(ctx, c)
}
