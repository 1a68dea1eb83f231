package favorite

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expohub/expohub/internal/application/favorite/usecases"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	"github.com/expohub/expohub/internal/interfaces/http/handlers/testutil"
	"github.com/expohub/expohub/internal/shared/errors"
)

type mockToggleUC struct {
	added, removed []lifecycle.EntityRef
	err            error
}

func (m *mockToggleUC) Add(_ context.Context, cmd usecases.FavoriteCommand) (*usecases.FavoriteResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.added = append(m.added, cmd.Target)
	return &usecases.FavoriteResult{Target: cmd.Target.String(), IsFavorite: true, Favorites: 1}, nil
}

func (m *mockToggleUC) Remove(_ context.Context, cmd usecases.FavoriteCommand) (*usecases.FavoriteResult, error) {
	m.removed = append(m.removed, cmd.Target)
	return &usecases.FavoriteResult{Target: cmd.Target.String(), IsFavorite: false}, nil
}

type mockListUC struct {
	got usecases.ListFavoritesQuery
	err error
}

func (m *mockListUC) Execute(_ context.Context, query usecases.ListFavoritesQuery) ([]usecases.FavoriteItem, error) {
	m.got = query
	if m.err != nil {
		return nil, m.err
	}
	return []usecases.FavoriteItem{{EntityType: "company", EntityID: 4}}, nil
}

func TestHandler_Add(t *testing.T) {
	toggle := &mockToggleUC{}
	h := NewHandler(toggle, &mockListUC{}, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodPost, "/targets/exhibition/8/favorite", nil)
	testutil.SetURLParam(c, "kind", "exhibition")
	testutil.SetURLParam(c, "id", "8")
	testutil.SetAuthContext(c, testutil.Visitor(2))

	h.Add(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, toggle.added, 1)
	assert.Equal(t, lifecycle.ExhibitionRef(8), toggle.added[0])
	assert.Contains(t, w.Body.String(), `"is_favorite":true`)
}

func TestHandler_Add_HiddenTarget(t *testing.T) {
	toggle := &mockToggleUC{err: errors.NewNotFoundError("exhibition not found")}
	h := NewHandler(toggle, &mockListUC{}, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodPost, "/targets/exhibition/8/favorite", nil)
	testutil.SetURLParam(c, "kind", "exhibition")
	testutil.SetURLParam(c, "id", "8")

	h.Add(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Remove(t *testing.T) {
	toggle := &mockToggleUC{}
	h := NewHandler(toggle, &mockListUC{}, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodDelete, "/targets/company/4/favorite", nil)
	testutil.SetURLParam(c, "kind", "company")
	testutil.SetURLParam(c, "id", "4")

	h.Remove(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []lifecycle.EntityRef{lifecycle.CompanyRef(4)}, toggle.removed)
}

func TestHandler_UnknownKind(t *testing.T) {
	toggle := &mockToggleUC{}
	h := NewHandler(toggle, &mockListUC{}, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodPost, "/targets/product/4/favorite", nil)
	testutil.SetURLParam(c, "kind", "product")
	testutil.SetURLParam(c, "id", "4")

	h.Add(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, toggle.added)
}

func TestHandler_List(t *testing.T) {
	list := &mockListUC{}
	h := NewHandler(&mockToggleUC{}, list, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodGet, "/favorites", nil)
	testutil.SetQueryParams(c, map[string]string{"kind": "company"})
	testutil.SetAuthContext(c, testutil.Visitor(2))

	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "company", list.got.Kind)
	assert.Equal(t, uint(2), list.got.Actor.UserID)
	assert.Contains(t, w.Body.String(), `"entity_id":4`)
}
