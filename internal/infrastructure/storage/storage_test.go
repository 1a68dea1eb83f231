package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expohub/expohub/internal/shared/config"
	"github.com/expohub/expohub/internal/shared/logger"
)

func TestNewRef(t *testing.T) {
	ref := NewRef("logos", time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), ".png")

	assert.True(t, strings.HasPrefix(ref, "logos/2024/05/"))
	assert.True(t, strings.HasSuffix(ref, ".png"))
	assert.NotEqual(t, ref, NewRef("logos", time.Now(), ".png"))
}

func TestCleanRef(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"logos/a.png", "logos/a.png", false},
		{"/logos//a.png", "logos/a.png", false},
		{"logos\\a.png", "logos/a.png", false},
		{"../etc/passwd", "", true},
		{"logos/../../x", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := cleanRef(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidRef, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestExtensionFor(t *testing.T) {
	ext, ok := ExtensionFor("image/PNG")
	assert.True(t, ok)
	assert.Equal(t, ".png", ext)

	_, ok = ExtensionFor("application/x-msdownload")
	assert.False(t, ok)
}

func TestDocumentExtensionFor(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
		ok          bool
	}{
		{"application/pdf", ".pdf", true},
		{"Application/PDF", ".pdf", true},
		{"text/plain; charset=utf-8", ".txt", true},
		{"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", ".xlsx", true},
		{"image/png", "", false},
		{"application/x-msdownload", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			ext, ok := DocumentExtensionFor(tt.contentType)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, ext)
		})
	}
}

func TestLocalStorage_PutURLDelete(t *testing.T) {
	root := t.TempDir()
	s, err := NewLocalStorage(root, "https://cdn.example/media/")
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "logos/2024/05/a.png", strings.NewReader("png-bytes"), 9, "image/png"))

	data, err := os.ReadFile(filepath.Join(root, "logos", "2024", "05", "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
	assert.Equal(t, "https://cdn.example/media/logos/2024/05/a.png", s.URL("logos/2024/05/a.png"))
	assert.Equal(t, "https://other.example/x.png", s.URL("https://other.example/x.png"))
	assert.Equal(t, "", s.URL(""))

	require.NoError(t, s.Delete(ctx, "logos/2024/05/a.png"))
	require.NoError(t, s.Delete(ctx, "logos/2024/05/a.png"), "deleting twice is fine")
	_, err = os.Stat(filepath.Join(root, "logos", "2024", "05", "a.png"))
	assert.True(t, os.IsNotExist(err))

	assert.ErrorIs(t, s.Put(ctx, "../escape.png", strings.NewReader("x"), 1, "image/png"), ErrInvalidRef)
}

func TestS3Storage_PutAndURL(t *testing.T) {
	var (
		mu     sync.Mutex
		method string
		path   string
		body   string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		mu.Lock()
		method, path, body = r.Method, r.URL.Path, string(data)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s, err := NewS3Storage(context.Background(), config.StorageConfig{
		Bucket:    "assets",
		Region:    "us-east-1",
		Endpoint:  srv.URL,
		AccessKey: "key",
		SecretKey: "secret",
	})
	require.NoError(t, err)

	require.NoError(t, s.Put(context.Background(), "banners/b.jpg", strings.NewReader("jpeg"), 4, "image/jpeg"))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/assets/banners/b.jpg", path)
	assert.Contains(t, body, "jpeg")
	assert.Equal(t, srv.URL+"/assets/banners/b.jpg", s.URL("banners/b.jpg"))
}

func TestS3Storage_DefaultPublicURL(t *testing.T) {
	s, err := NewS3Storage(context.Background(), config.StorageConfig{
		Bucket: "assets", Region: "eu-central-1", AccessKey: "k", SecretKey: "s",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://assets.s3.eu-central-1.amazonaws.com/logos/a.png", s.URL("logos/a.png"))
}

func TestNew_UnknownBackend(t *testing.T) {
	_, err := New(context.Background(), config.StorageConfig{Backend: "ftp"}, logger.NewNopLogger())

	assert.Error(t, err)
}
