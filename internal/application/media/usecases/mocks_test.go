package usecases

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/domain/company"
	"github.com/expohub/expohub/internal/domain/exhibition"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	"github.com/expohub/expohub/internal/domain/media"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
)

const ownerID = 3

var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type stubSubject struct {
	ref   lifecycle.EntityRef
	owner uint
	state lifecycle.State
}

func (s *stubSubject) Ref() lifecycle.EntityRef    { return s.ref }
func (s *stubSubject) OwnerID() uint               { return s.owner }
func (s *stubSubject) DisplayName() string         { return "Listing" }
func (s *stubSubject) Lifecycle() *lifecycle.State { return &s.state }
func (s *stubSubject) Version() int                { return 1 }
func (s *stubSubject) Touch(time.Time)             {}

// listingTargets serves exhibition 1 and company 1 in the given statuses.
func listingTargets(t *testing.T, exhibitionStatus, companyStatus lvo.Status) common.Targets {
	t.Helper()
	subject := func(kind lvo.Kind, status lvo.Status, notFound error) common.TargetLoader {
		state, err := lifecycle.ReconstructState(kind, status, nil, nil, nil, "", "")
		require.NoError(t, err)
		return func(_ context.Context, id uint) (lifecycle.Subject, error) {
			if id != 1 {
				return nil, notFound
			}
			ref, err := lifecycle.NewEntityRef(kind.String(), id)
			if err != nil {
				return nil, err
			}
			return &stubSubject{ref: ref, owner: ownerID, state: state}, nil
		}
	}
	return common.Targets{
		lvo.KindExhibition: subject(lvo.KindExhibition, exhibitionStatus, exhibition.ErrExhibitionNotFound),
		lvo.KindCompany:    subject(lvo.KindCompany, companyStatus, company.ErrCompanyNotFound),
	}
}

type mockImageRepository struct {
	images map[uint]*media.Image
	nextID uint
}

func newMockImageRepository() *mockImageRepository {
	return &mockImageRepository{images: make(map[uint]*media.Image), nextID: 1}
}

func (m *mockImageRepository) Create(_ context.Context, img *media.Image) error {
	img.SetID(m.nextID)
	m.nextID++
	m.images[img.ID()] = img
	return nil
}

func (m *mockImageRepository) GetByID(_ context.Context, owner lifecycle.EntityRef, id uint) (*media.Image, error) {
	img, ok := m.images[id]
	if !ok || img.Owner() != owner {
		return nil, media.ErrImageNotFound
	}
	return img, nil
}

func (m *mockImageRepository) Delete(ctx context.Context, owner lifecycle.EntityRef, id uint) error {
	if _, err := m.GetByID(ctx, owner, id); err != nil {
		return err
	}
	delete(m.images, id)
	return nil
}

func (m *mockImageRepository) ListByOwner(_ context.Context, owner lifecycle.EntityRef) ([]*media.Image, error) {
	var out []*media.Image
	for _, img := range m.images {
		if img.Owner() == owner {
			out = append(out, img)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder() != out[j].SortOrder() {
			return out[i].SortOrder() < out[j].SortOrder()
		}
		return out[i].ID() < out[j].ID()
	})
	return out, nil
}

func (m *mockImageRepository) CountByOwner(ctx context.Context, owner lifecycle.EntityRef) (int64, error) {
	list, _ := m.ListByOwner(ctx, owner)
	return int64(len(list)), nil
}

type mockDocumentRepository struct {
	documents    map[uint]*media.Document
	nextID       uint
	downloads    map[uint]int
	incrementErr error
}

func newMockDocumentRepository() *mockDocumentRepository {
	return &mockDocumentRepository{documents: make(map[uint]*media.Document), nextID: 1, downloads: make(map[uint]int)}
}

func (m *mockDocumentRepository) Create(_ context.Context, doc *media.Document) error {
	doc.SetID(m.nextID)
	m.nextID++
	m.documents[doc.ID()] = doc
	return nil
}

func (m *mockDocumentRepository) GetByID(_ context.Context, exhibitionID, id uint) (*media.Document, error) {
	doc, ok := m.documents[id]
	if !ok || doc.ExhibitionID() != exhibitionID {
		return nil, media.ErrDocumentNotFound
	}
	return doc, nil
}

func (m *mockDocumentRepository) Delete(ctx context.Context, exhibitionID, id uint) error {
	if _, err := m.GetByID(ctx, exhibitionID, id); err != nil {
		return err
	}
	delete(m.documents, id)
	return nil
}

func (m *mockDocumentRepository) ListByExhibition(_ context.Context, exhibitionID uint) ([]*media.Document, error) {
	var out []*media.Document
	for _, doc := range m.documents {
		if doc.ExhibitionID() == exhibitionID {
			out = append(out, doc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() > out[j].ID() })
	return out, nil
}

func (m *mockDocumentRepository) CountByExhibition(ctx context.Context, exhibitionID uint) (int64, error) {
	list, _ := m.ListByExhibition(ctx, exhibitionID)
	return int64(len(list)), nil
}

func (m *mockDocumentRepository) IncrementDownloads(_ context.Context, id uint) error {
	if m.incrementErr != nil {
		return m.incrementErr
	}
	m.downloads[id]++
	return nil
}

type mockObjects struct {
	deleted []string
	err     error
}

func (m *mockObjects) Delete(_ context.Context, ref string) error {
	m.deleted = append(m.deleted, ref)
	return m.err
}

var errStorageDown = errors.New("storage down")

type prefixResolver struct{}

func (prefixResolver) URL(ref string) string { return "https://cdn.example.com/" + ref }

func errorType(err error) apperrors.ErrorType {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		return appErr.Type
	}
	return ""
}
