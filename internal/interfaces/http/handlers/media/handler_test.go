package media

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expohub/expohub/internal/application/media/dto"
	"github.com/expohub/expohub/internal/application/media/usecases"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	"github.com/expohub/expohub/internal/interfaces/http/handlers/testutil"
	"github.com/expohub/expohub/internal/shared/errors"
)

type mockImages struct {
	added   []usecases.AddImageCommand
	removed []usecases.RemoveImageCommand
	listed  []usecases.ListImagesQuery
	err     error
}

func (m *mockImages) Add(_ context.Context, cmd usecases.AddImageCommand) (*dto.ImageDTO, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.added = append(m.added, cmd)
	return &dto.ImageDTO{ID: 1, URL: "/media/" + cmd.Ref}, nil
}

func (m *mockImages) Remove(_ context.Context, cmd usecases.RemoveImageCommand) error {
	m.removed = append(m.removed, cmd)
	return m.err
}

func (m *mockImages) List(_ context.Context, query usecases.ListImagesQuery) ([]dto.ImageDTO, error) {
	m.listed = append(m.listed, query)
	return []dto.ImageDTO{{ID: 1}}, m.err
}

type addImageFunc func(context.Context, usecases.AddImageCommand) (*dto.ImageDTO, error)

func (f addImageFunc) Execute(ctx context.Context, cmd usecases.AddImageCommand) (*dto.ImageDTO, error) {
	return f(ctx, cmd)
}

type removeImageFunc func(context.Context, usecases.RemoveImageCommand) error

func (f removeImageFunc) Execute(ctx context.Context, cmd usecases.RemoveImageCommand) error {
	return f(ctx, cmd)
}

type listImagesFunc func(context.Context, usecases.ListImagesQuery) ([]dto.ImageDTO, error)

func (f listImagesFunc) Execute(ctx context.Context, query usecases.ListImagesQuery) ([]dto.ImageDTO, error) {
	return f(ctx, query)
}

type mockDocuments struct {
	added      []usecases.AddDocumentCommand
	removed    []usecases.RemoveDocumentCommand
	downloaded []usecases.DownloadDocumentQuery
	err        error
}

type addDocumentFunc func(context.Context, usecases.AddDocumentCommand) (*dto.DocumentDTO, error)

func (f addDocumentFunc) Execute(ctx context.Context, cmd usecases.AddDocumentCommand) (*dto.DocumentDTO, error) {
	return f(ctx, cmd)
}

func (m *mockDocuments) add(_ context.Context, cmd usecases.AddDocumentCommand) (*dto.DocumentDTO, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.added = append(m.added, cmd)
	return &dto.DocumentDTO{ID: 2, Title: cmd.Title}, nil
}

type removeDocumentFunc func(context.Context, usecases.RemoveDocumentCommand) error

func (f removeDocumentFunc) Execute(ctx context.Context, cmd usecases.RemoveDocumentCommand) error {
	return f(ctx, cmd)
}

func (m *mockDocuments) remove(_ context.Context, cmd usecases.RemoveDocumentCommand) error {
	m.removed = append(m.removed, cmd)
	return m.err
}

type listDocumentsFunc func(context.Context, usecases.ListDocumentsQuery) ([]dto.DocumentDTO, error)

func (f listDocumentsFunc) Execute(ctx context.Context, query usecases.ListDocumentsQuery) ([]dto.DocumentDTO, error) {
	return f(ctx, query)
}

type downloadFunc func(context.Context, usecases.DownloadDocumentQuery) (string, error)

func (f downloadFunc) Execute(ctx context.Context, query usecases.DownloadDocumentQuery) (string, error) {
	return f(ctx, query)
}

func (m *mockDocuments) download(_ context.Context, query usecases.DownloadDocumentQuery) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.downloaded = append(m.downloaded, query)
	return "https://cdn.example.com/documents/plan.pdf", nil
}

func newTestHandler(images *mockImages, docs *mockDocuments) *Handler {
	return NewHandler(
		addImageFunc(images.Add),
		removeImageFunc(images.Remove),
		listImagesFunc(images.List),
		addDocumentFunc(docs.add),
		removeDocumentFunc(docs.remove),
		listDocumentsFunc(func(context.Context, usecases.ListDocumentsQuery) ([]dto.DocumentDTO, error) {
			return []dto.DocumentDTO{{ID: 2}}, nil
		}),
		downloadFunc(docs.download),
		testutil.NewMockLogger(),
	)
}

func TestHandler_AddImage(t *testing.T) {
	tests := []struct {
		name     string
		kind     lvo.Kind
		id       string
		body     any
		err      error
		wantCode int
		wantRef  lifecycle.EntityRef
	}{
		{name: "exhibition", kind: lvo.KindExhibition, id: "4", body: ImageRequest{Ref: "gallery/a.png"}, wantCode: http.StatusCreated, wantRef: lifecycle.ExhibitionRef(4)},
		{name: "company gallery", kind: lvo.KindCompany, id: "6", body: ImageRequest{Ref: "gallery/b.png", Description: "Stand"}, wantCode: http.StatusCreated, wantRef: lifecycle.CompanyRef(6)},
		{name: "missing ref", kind: lvo.KindCompany, id: "6", body: ImageRequest{}, wantCode: http.StatusBadRequest},
		{name: "negative sort order", kind: lvo.KindCompany, id: "6", body: ImageRequest{Ref: "gallery/b.png", SortOrder: -1}, wantCode: http.StatusBadRequest},
		{name: "bad id", kind: lvo.KindExhibition, id: "x", body: ImageRequest{Ref: "gallery/a.png"}, wantCode: http.StatusBadRequest},
		{name: "not the owner", kind: lvo.KindExhibition, id: "4", body: ImageRequest{Ref: "gallery/a.png"}, err: errors.NewForbiddenError("only the owner"), wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			images := &mockImages{err: tt.err}
			h := newTestHandler(images, &mockDocuments{})
			c, w := testutil.NewTestContext(http.MethodPost, "/listing/"+tt.id+"/images", tt.body)
			testutil.SetURLParam(c, "id", tt.id)
			testutil.SetAuthContext(c, testutil.Organizer(3))

			h.AddImage(tt.kind)(c)

			require.Equal(t, tt.wantCode, w.Code, w.Body.String())
			if tt.wantCode == http.StatusCreated {
				require.Len(t, images.added, 1)
				assert.Equal(t, tt.wantRef, images.added[0].Listing)
				assert.Equal(t, uint(3), images.added[0].Actor.UserID)
			}
		})
	}
}

func TestHandler_RemoveImage(t *testing.T) {
	images := &mockImages{}
	h := newTestHandler(images, &mockDocuments{})
	c, w := testutil.NewTestContext(http.MethodDelete, "/companies/6/gallery/9", nil)
	testutil.SetURLParam(c, "id", "6")
	testutil.SetURLParam(c, "imageId", "9")
	testutil.SetAuthContext(c, testutil.Admin(1))

	h.RemoveImage(lvo.KindCompany)(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.Len(t, images.removed, 1)
	assert.Equal(t, lifecycle.CompanyRef(6), images.removed[0].Listing)
	assert.Equal(t, uint(9), images.removed[0].ImageID)
}

func TestHandler_ListImages_Anonymous(t *testing.T) {
	images := &mockImages{}
	h := newTestHandler(images, &mockDocuments{})
	c, w := testutil.NewTestContext(http.MethodGet, "/exhibitions/4/images", nil)
	testutil.SetURLParam(c, "id", "4")

	h.ListImages(lvo.KindExhibition)(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, images.listed, 1)
	assert.Zero(t, images.listed[0].Viewer.UserID)
}

func TestHandler_Documents(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		docs := &mockDocuments{}
		h := newTestHandler(&mockImages{}, docs)
		c, w := testutil.NewTestContext(http.MethodPost, "/exhibitions/4/documents", DocumentRequest{
			Title: "Floor plan", Ref: "documents/plan.pdf", FileSize: 1024,
		})
		testutil.SetURLParam(c, "id", "4")
		testutil.SetAuthContext(c, testutil.Organizer(3))

		h.AddDocument(c)

		require.Equal(t, http.StatusCreated, w.Code)
		require.Len(t, docs.added, 1)
		assert.Equal(t, uint(4), docs.added[0].ExhibitionID)
		assert.Equal(t, int64(1024), docs.added[0].FileSize)
	})

	t.Run("add without title", func(t *testing.T) {
		docs := &mockDocuments{}
		h := newTestHandler(&mockImages{}, docs)
		c, w := testutil.NewTestContext(http.MethodPost, "/exhibitions/4/documents", DocumentRequest{Ref: "documents/plan.pdf"})
		testutil.SetURLParam(c, "id", "4")

		h.AddDocument(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, docs.added)
	})

	t.Run("remove", func(t *testing.T) {
		docs := &mockDocuments{}
		h := newTestHandler(&mockImages{}, docs)
		c, w := testutil.NewTestContext(http.MethodDelete, "/exhibitions/4/documents/2", nil)
		testutil.SetURLParam(c, "id", "4")
		testutil.SetURLParam(c, "documentId", "2")
		testutil.SetAuthContext(c, testutil.Organizer(3))

		h.RemoveDocument(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
		require.Len(t, docs.removed, 1)
		assert.Equal(t, uint(2), docs.removed[0].DocumentID)
	})

	t.Run("download redirects", func(t *testing.T) {
		docs := &mockDocuments{}
		h := newTestHandler(&mockImages{}, docs)
		c, w := testutil.NewTestContext(http.MethodGet, "/exhibitions/4/documents/2/download", nil)
		testutil.SetURLParam(c, "id", "4")
		testutil.SetURLParam(c, "documentId", "2")

		h.DownloadDocument(c)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://cdn.example.com/documents/plan.pdf", w.Header().Get("Location"))
		require.Len(t, docs.downloaded, 1)
	})

	t.Run("download of hidden exhibition", func(t *testing.T) {
		docs := &mockDocuments{err: errors.NewNotFoundError("exhibition not found")}
		h := newTestHandler(&mockImages{}, docs)
		c, w := testutil.NewTestContext(http.MethodGet, "/exhibitions/4/documents/2/download", nil)
		testutil.SetURLParam(c, "id", "4")
		testutil.SetURLParam(c, "documentId", "2")

		h.DownloadDocument(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
