package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expohub/expohub/internal/domain/lifecycle"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	"github.com/expohub/expohub/internal/domain/media"
	"github.com/expohub/expohub/internal/domain/user"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

var (
	owner     = user.Principal{UserID: ownerID, Role: user.RoleOrganizer}
	stranger  = user.Principal{UserID: 4, Role: user.RoleOrganizer}
	moderator = user.Principal{UserID: 5, Role: user.RoleAdmin}
	visitor   = user.Principal{UserID: 6, Role: user.RoleVisitor}
)

func TestAddImageUseCase(t *testing.T) {
	tests := []struct {
		name      string
		listing   lifecycle.EntityRef
		actor     user.Principal
		status    lvo.Status
		ref       string
		desc      string
		preload   int
		wantError apperrors.ErrorType
	}{
		{name: "exhibition image", listing: lifecycle.ExhibitionRef(1), actor: owner, ref: "gallery/2026/03/a.png"},
		{name: "company gallery with description", listing: lifecycle.CompanyRef(1), actor: owner, ref: "gallery/2026/03/b.png", desc: "Stand"},
		{name: "not the owner", listing: lifecycle.ExhibitionRef(1), actor: stranger, ref: "gallery/a.png", wantError: apperrors.ErrorTypeForbidden},
		{name: "moderator cannot add", listing: lifecycle.ExhibitionRef(1), actor: moderator, ref: "gallery/a.png", wantError: apperrors.ErrorTypeForbidden},
		{name: "missing listing", listing: lifecycle.CompanyRef(2), actor: owner, ref: "gallery/a.png", wantError: apperrors.ErrorTypeNotFound},
		{name: "cancelled exhibition", listing: lifecycle.ExhibitionRef(1), actor: owner, status: lvo.StatusCancelled, ref: "gallery/a.png", wantError: apperrors.ErrorTypeConflict},
		{name: "logo folder ref", listing: lifecycle.ExhibitionRef(1), actor: owner, ref: "logos/a.png", wantError: apperrors.ErrorTypeValidation},
		{name: "traversal ref", listing: lifecycle.ExhibitionRef(1), actor: owner, ref: "gallery/../logos/a.png", wantError: apperrors.ErrorTypeValidation},
		{name: "limit reached", listing: lifecycle.CompanyRef(1), actor: owner, ref: "gallery/a.png", preload: media.MaxImagesPerListing, wantError: apperrors.ErrorTypeConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := tt.status
			if status == "" {
				status = lvo.StatusDraft
			}
			images := newMockImageRepository()
			for i := 0; i < tt.preload; i++ {
				img, err := media.NewImage(tt.listing, fmt.Sprintf("gallery/%d.png", i), "", "", 0, testNow)
				require.NoError(t, err)
				require.NoError(t, images.Create(context.Background(), img))
			}
			uc := NewAddImageUseCase(listingTargets(t, status, lvo.StatusDraft), images, prefixResolver{}, logger.NewNopLogger())

			out, err := uc.Execute(context.Background(), AddImageCommand{
				Listing: tt.listing, Actor: tt.actor, Ref: tt.ref, Description: tt.desc,
			})

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantError, errorType(err), "unexpected error: %v", err)
				assert.Len(t, images.images, tt.preload)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "https://cdn.example.com/"+tt.ref, out.URL)
			assert.Equal(t, tt.desc, out.Description)
			assert.Len(t, images.images, 1)
		})
	}
}

func TestRemoveImageUseCase(t *testing.T) {
	tests := []struct {
		name        string
		actor       user.Principal
		listing     lifecycle.EntityRef
		storageErr  error
		wantError   apperrors.ErrorType
		wantDeleted bool
	}{
		{name: "owner", actor: owner, listing: lifecycle.CompanyRef(1), wantDeleted: true},
		{name: "moderator", actor: moderator, listing: lifecycle.CompanyRef(1), wantDeleted: true},
		{name: "storage failure still removes row", actor: owner, listing: lifecycle.CompanyRef(1), storageErr: errStorageDown, wantDeleted: true},
		{name: "stranger", actor: stranger, listing: lifecycle.CompanyRef(1), wantError: apperrors.ErrorTypeForbidden},
		{name: "image of another listing", actor: owner, listing: lifecycle.ExhibitionRef(1), wantError: apperrors.ErrorTypeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			images := newMockImageRepository()
			img, err := media.NewImage(lifecycle.CompanyRef(1), "gallery/a.png", "", "", 0, testNow)
			require.NoError(t, err)
			require.NoError(t, images.Create(context.Background(), img))
			objects := &mockObjects{err: tt.storageErr}
			uc := NewRemoveImageUseCase(listingTargets(t, lvo.StatusPublished, lvo.StatusSuspended), images, objects, logger.NewNopLogger())

			err = uc.Execute(context.Background(), RemoveImageCommand{Listing: tt.listing, ImageID: img.ID(), Actor: tt.actor})

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantError, errorType(err), "unexpected error: %v", err)
				assert.Len(t, images.images, 1)
				assert.Empty(t, objects.deleted)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, images.images)
			assert.Equal(t, []string{"gallery/a.png"}, objects.deleted)
		})
	}
}

func TestListImagesUseCase_Visibility(t *testing.T) {
	tests := []struct {
		name      string
		status    lvo.Status
		viewer    user.Principal
		wantError apperrors.ErrorType
	}{
		{name: "public company", status: lvo.StatusActive, viewer: user.Principal{}},
		{name: "draft for owner", status: lvo.StatusDraft, viewer: owner},
		{name: "draft for moderator", status: lvo.StatusDraft, viewer: moderator},
		{name: "draft hidden from visitor", status: lvo.StatusDraft, viewer: visitor, wantError: apperrors.ErrorTypeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			images := newMockImageRepository()
			for i, order := range []int{2, 0, 1} {
				img, err := media.NewImage(lifecycle.CompanyRef(1), fmt.Sprintf("gallery/%d.png", i), "", "", order, testNow)
				require.NoError(t, err)
				require.NoError(t, images.Create(context.Background(), img))
			}
			uc := NewListImagesUseCase(listingTargets(t, lvo.StatusDraft, tt.status), images, nil)

			out, err := uc.Execute(context.Background(), ListImagesQuery{Listing: lifecycle.CompanyRef(1), Viewer: tt.viewer})

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantError, errorType(err))
				return
			}
			require.NoError(t, err)
			require.Len(t, out, 3)
			assert.Equal(t, []string{"gallery/1.png", "gallery/2.png", "gallery/0.png"}, []string{out[0].URL, out[1].URL, out[2].URL})
		})
	}
}

func TestAddDocumentUseCase(t *testing.T) {
	tests := []struct {
		name      string
		actor     user.Principal
		title     string
		ref       string
		preload   int
		wantError apperrors.ErrorType
	}{
		{name: "owner adds", actor: owner, title: "Floor plan", ref: "documents/2026/03/plan.pdf"},
		{name: "blank title", actor: owner, title: " ", ref: "documents/plan.pdf", wantError: apperrors.ErrorTypeValidation},
		{name: "image folder ref", actor: owner, title: "Plan", ref: "gallery/plan.pdf", wantError: apperrors.ErrorTypeValidation},
		{name: "stranger", actor: stranger, title: "Plan", ref: "documents/plan.pdf", wantError: apperrors.ErrorTypeForbidden},
		{name: "limit reached", actor: owner, title: "Plan", ref: "documents/plan.pdf", preload: media.MaxDocumentsPerExhibition, wantError: apperrors.ErrorTypeConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			documents := newMockDocumentRepository()
			for i := 0; i < tt.preload; i++ {
				doc, err := media.NewDocument(1, "Doc", fmt.Sprintf("documents/%d.pdf", i), 10, testNow)
				require.NoError(t, err)
				require.NoError(t, documents.Create(context.Background(), doc))
			}
			uc := NewAddDocumentUseCase(listingTargets(t, lvo.StatusPublished, lvo.StatusDraft), documents, nil, logger.NewNopLogger())

			out, err := uc.Execute(context.Background(), AddDocumentCommand{
				ExhibitionID: 1, Actor: tt.actor, Title: tt.title, Ref: tt.ref, FileSize: 2048,
			})

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantError, errorType(err), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ref, out.URL)
			assert.Equal(t, int64(2048), out.FileSize)
		})
	}
}

func TestRemoveDocumentUseCase(t *testing.T) {
	documents := newMockDocumentRepository()
	doc, err := media.NewDocument(1, "Plan", "documents/plan.pdf", 10, testNow)
	require.NoError(t, err)
	require.NoError(t, documents.Create(context.Background(), doc))
	objects := &mockObjects{}
	uc := NewRemoveDocumentUseCase(listingTargets(t, lvo.StatusPublished, lvo.StatusDraft), documents, objects, logger.NewNopLogger())

	err = uc.Execute(context.Background(), RemoveDocumentCommand{ExhibitionID: 1, DocumentID: doc.ID(), Actor: visitor})
	assert.True(t, apperrors.IsForbiddenError(err))

	require.NoError(t, uc.Execute(context.Background(), RemoveDocumentCommand{ExhibitionID: 1, DocumentID: doc.ID(), Actor: moderator}))
	assert.Empty(t, documents.documents)
	assert.Equal(t, []string{"documents/plan.pdf"}, objects.deleted)

	err = uc.Execute(context.Background(), RemoveDocumentCommand{ExhibitionID: 1, DocumentID: doc.ID(), Actor: owner})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestDownloadDocumentUseCase(t *testing.T) {
	tests := []struct {
		name          string
		status        lvo.Status
		viewer        user.Principal
		documentID    uint
		incrementErr  error
		wantError     apperrors.ErrorType
		wantDownloads int
	}{
		{name: "published", status: lvo.StatusPublished, viewer: visitor, documentID: 1, wantDownloads: 1},
		{name: "counter failure still serves", status: lvo.StatusPublished, viewer: visitor, documentID: 1, incrementErr: errStorageDown},
		{name: "draft hidden", status: lvo.StatusDraft, viewer: visitor, documentID: 1, wantError: apperrors.ErrorTypeNotFound},
		{name: "unknown document", status: lvo.StatusPublished, viewer: visitor, documentID: 7, wantError: apperrors.ErrorTypeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			documents := newMockDocumentRepository()
			documents.incrementErr = tt.incrementErr
			doc, err := media.NewDocument(1, "Plan", "documents/plan.pdf", 10, testNow)
			require.NoError(t, err)
			require.NoError(t, documents.Create(context.Background(), doc))
			uc := NewDownloadDocumentUseCase(listingTargets(t, tt.status, lvo.StatusDraft), documents, prefixResolver{}, logger.NewNopLogger())

			url, err := uc.Execute(context.Background(), DownloadDocumentQuery{ExhibitionID: 1, DocumentID: tt.documentID, Viewer: tt.viewer})

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantError, errorType(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "https://cdn.example.com/documents/plan.pdf", url)
			assert.Equal(t, tt.wantDownloads, documents.downloads[doc.ID()])
		})
	}
}
