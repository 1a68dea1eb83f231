package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/expohub/expohub/internal/application/aggregation"
	"github.com/expohub/expohub/internal/domain/counter"
	"github.com/expohub/expohub/internal/domain/exhibition"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	svo "github.com/expohub/expohub/internal/domain/shared/valueobjects"
	"github.com/expohub/expohub/internal/domain/user"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

var (
	organizer = user.Principal{UserID: 5, Role: user.RoleOrganizer}
	visitor   = user.Principal{UserID: 6, Role: user.RoleVisitor}
)

func validDetails() exhibition.Details {
	start := time.Now().UTC().Add(7 * 24 * time.Hour)
	return exhibition.Details{
		Title:     "Выставка Мебели 2025",
		StartDate: start,
		EndDate:   start.Add(72 * time.Hour),
		VenueName: "Crocus Expo",
		City:      "Moscow",
	}
}

func storedExhibition(t *testing.T, id uint, status lvo.Status, details exhibition.Details, registrations int64) *exhibition.Exhibition {
	t.Helper()
	state, err := lifecycle.ReconstructState(lvo.KindExhibition, status, nil, nil, nil, "", "")
	require.NoError(t, err)
	e, err := exhibition.ReconstructExhibition(
		id, fmt.Sprintf("expo-%d", id), organizer.UserID, details,
		"logos/1.png", "", false, state, svo.Stats{Rating: 425}, registrations, 1,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return e
}

type nopCounterStore struct {
	counter.Store
	increments []counter.Counter
}

func (s *nopCounterStore) Increment(_ context.Context, _ lifecycle.EntityRef, c counter.Counter, _ int64) error {
	s.increments = append(s.increments, c)
	return nil
}

type prefixResolver struct{}

func (prefixResolver) URL(ref string) string { return "https://cdn.example.com/" + ref }

func TestCreateExhibitionUseCase(t *testing.T) {
	t.Run("transliterated slug with collision retry", func(t *testing.T) {
		taken := map[string]bool{"vystavka-mebeli-2025": true}
		creates := 0
		repo := &mockExhibitionRepository{
			SlugExistsFunc: func(_ context.Context, slug string, _ uint) (bool, error) {
				return taken[slug], nil
			},
			CreateFunc: func(_ context.Context, e *exhibition.Exhibition) error {
				creates++
				if creates == 1 {
					taken[e.Slug()] = true
					return gorm.ErrDuplicatedKey
				}
				e.SetID(11)
				return nil
			},
		}
		uc := NewCreateExhibitionUseCase(repo, nil, nil, prefixResolver{}, logger.NewNopLogger())

		out, err := uc.Execute(context.Background(), CreateExhibitionCommand{Actor: organizer, Details: validDetails()})

		require.NoError(t, err)
		assert.Equal(t, "vystavka-mebeli-2025-2", out.Slug)
		assert.Equal(t, "draft", out.Status)
		assert.Equal(t, "upcoming", out.Type)
		assert.Equal(t, 2, creates)
	})

	t.Run("visitor is forbidden", func(t *testing.T) {
		uc := NewCreateExhibitionUseCase(&mockExhibitionRepository{}, nil, nil, nil, logger.NewNopLogger())
		_, err := uc.Execute(context.Background(), CreateExhibitionCommand{Actor: visitor, Details: validDetails()})
		assert.True(t, apperrors.IsForbiddenError(err))
	})

	t.Run("invalid dates", func(t *testing.T) {
		d := validDetails()
		d.EndDate = d.StartDate.Add(-time.Hour)
		uc := NewCreateExhibitionUseCase(&mockExhibitionRepository{}, nil, nil, nil, logger.NewNopLogger())
		_, err := uc.Execute(context.Background(), CreateExhibitionCommand{Actor: organizer, Details: d})
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestGetExhibitionUseCase_Visibility(t *testing.T) {
	moderator := user.Principal{UserID: 1, Role: user.RoleAdmin}
	past := validDetails()
	past.StartDate = time.Now().UTC().Add(-72 * time.Hour)
	past.EndDate = time.Now().UTC().Add(-24 * time.Hour)

	tests := []struct {
		name       string
		status     lvo.Status
		details    exhibition.Details
		viewer     user.Principal
		wantStatus string
		notFound   bool
	}{
		{"public published", lvo.StatusPublished, validDetails(), user.Principal{}, "published", false},
		{"ended reads as completed", lvo.StatusPublished, past, user.Principal{}, "completed", false},
		{"draft hidden from visitor", lvo.StatusDraft, validDetails(), visitor, "", true},
		{"draft visible to owner", lvo.StatusDraft, validDetails(), organizer, "draft", false},
		{"pending visible to moderator", lvo.StatusPending, validDetails(), moderator, "pending", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := storedExhibition(t, 3, tt.status, tt.details, 0)
			repo := &mockExhibitionRepository{
				GetBySlugFunc: func(context.Context, string) (*exhibition.Exhibition, error) { return e, nil },
			}
			uc := NewGetExhibitionUseCase(repo, prefixResolver{}, logger.NewNopLogger())

			out, err := uc.Execute(context.Background(), GetExhibitionQuery{Slug: "expo-3", Viewer: tt.viewer})

			if tt.notFound {
				assert.True(t, apperrors.IsNotFoundError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, out.Status)
			assert.Equal(t, "4.25", out.Rating)
			assert.Equal(t, "https://cdn.example.com/logos/1.png", out.LogoURL)
		})
	}
}

func TestListExhibitionsUseCase_PublicDefaults(t *testing.T) {
	var got exhibition.ListFilter
	repo := &mockExhibitionRepository{
		ListFunc: func(_ context.Context, f exhibition.ListFilter) ([]*exhibition.Exhibition, int64, error) {
			got = f
			return nil, 0, nil
		},
	}
	uc := NewListExhibitionsUseCase(repo, nil, logger.NewNopLogger())

	res, err := uc.Execute(context.Background(), ListExhibitionsQuery{PageSize: 1000})
	require.NoError(t, err)
	assert.Equal(t, lvo.StatusPublished, got.Status)
	assert.Equal(t, 100, res.PageSize)

	_, err = uc.Execute(context.Background(), ListExhibitionsQuery{Status: "pending", Viewer: visitor})
	assert.True(t, apperrors.IsForbiddenError(err))

	_, err = uc.Execute(context.Background(), ListExhibitionsQuery{Status: "pending", OwnerID: organizer.UserID, Viewer: organizer})
	assert.NoError(t, err)

	_, err = uc.Execute(context.Background(), ListExhibitionsQuery{Type: "someday"})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestRegisterUseCase(t *testing.T) {
	capped := validDetails()
	limit := 10
	capped.MaxParticipants = &limit

	tests := []struct {
		name          string
		status        lvo.Status
		details       exhibition.Details
		registrations int64
		createErr     error
		check         func(error) bool
	}{
		{"open", lvo.StatusPublished, validDetails(), 0, nil, nil},
		{"not published", lvo.StatusApproved, validDetails(), 0, nil, apperrors.IsConflictError},
		{"full", lvo.StatusPublished, capped, 10, nil, apperrors.IsConflictError},
		{"twice", lvo.StatusPublished, validDetails(), 0, exhibition.ErrAlreadyRegistered, apperrors.IsConflictError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := storedExhibition(t, 4, tt.status, tt.details, tt.registrations)
			repo := &mockExhibitionRepository{
				GetByIDFunc: func(context.Context, uint) (*exhibition.Exhibition, error) { return e, nil },
			}
			regs := &mockRegistrationRepository{}
			if tt.createErr != nil {
				regs.CreateFunc = func(context.Context, *exhibition.Registration) error { return tt.createErr }
			}
			store := &nopCounterStore{}
			counters := aggregation.NewCounterService(store, nil, nil, nil, logger.NewNopLogger())
			uc := NewRegisterUseCase(repo, regs, counters, logger.NewNopLogger())

			res, err := uc.Execute(context.Background(), RegisterCommand{ExhibitionID: 4, Actor: visitor})

			if tt.check != nil {
				assert.True(t, tt.check(err), "unexpected error: %v", err)
				assert.Empty(t, store.increments)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(4), res.ExhibitionID)
			assert.Equal(t, []counter.Counter{counter.Registrations}, store.increments)
		})
	}
}
