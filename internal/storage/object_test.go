package storage

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadReturnsPublicURL(t *testing.T) {
	var gotPath, gotAuth, gotContentType string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret-key", "item-images")

	url, err := c.Upload([]byte("fake-png-bytes"), "image/png", FolderFound)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(gotPath, "/storage/v1/object/item-images/found/"))
	assert.True(t, strings.HasSuffix(gotPath, ".png"))
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, "image/png", gotContentType)
	assert.Equal(t, []byte("fake-png-bytes"), gotBody)

	assert.Equal(t, srv.URL+"/storage/v1/object/public/item-images"+strings.TrimPrefix(gotPath, "/storage/v1/object/item-images"), url)
}

func TestUploadNamesAreRandomized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key", "item-images")

	first, err := c.Upload([]byte("a"), "image/jpeg", FolderLost)
	require.NoError(t, err)
	second, err := c.Upload([]byte("a"), "image/jpeg", FolderLost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasSuffix(first, ".jpg"))
}

func TestUploadServerErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key", "item-images")

	_, err := c.Upload([]byte("a"), "image/png", FolderFound)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestDeleteParsesIssuedURL(t *testing.T) {
	var deletedPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deletedPath = r.URL.Path
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key", "item-images")

	url, err := c.Upload([]byte("a"), "image/webp", FolderLost)
	require.NoError(t, err)

	require.NoError(t, c.Delete(url))
	assert.True(t, strings.HasPrefix(deletedPath, "/storage/v1/object/item-images/lost/"))
	assert.True(t, strings.HasSuffix(deletedPath, ".webp"))
}

func TestDeleteRejectsForeignURLs(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key", "item-images")

	for _, bad := range []string{
		"https://elsewhere.example.com/image.png",
		srv.URL + "/storage/v1/object/public/other-bucket/lost/a.png",
		srv.URL + "/storage/v1/object/public/item-images/noslash.png",
		"::not a url::",
	} {
		err := c.Delete(bad)
		assert.ErrorIs(t, err, ErrUnrecognizedURL, "url %q", bad)
	}
	assert.Zero(t, calls, "unrecognized URLs must not reach the network")
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".jpg", extensionFor("image/jpeg"))
	assert.Equal(t, ".jpg", extensionFor("IMAGE/JPG"))
	assert.Equal(t, ".png", extensionFor("image/png"))
	assert.Equal(t, ".gif", extensionFor("image/gif"))
	assert.Equal(t, ".webp", extensionFor("image/webp"))
	assert.Equal(t, ".bin", extensionFor("application/octet-stream"))
	assert.Equal(t, ".bin", extensionFor(""))
}
