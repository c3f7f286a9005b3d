package storage_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleansweep-backend/internal/storage"
)

func newTestStorage(t *testing.T) (*storage.LocalStorageService, string) {
	t.Helper()
	dir := t.TempDir()
	svc, err := storage.NewLocalStorageService("http://localhost:8080", dir)
	require.NoError(t, err)
	return svc, dir
}

func TestLocalStorage_SaveAndRead(t *testing.T) {
	svc, _ := newTestStorage(t)
	ctx := context.Background()

	err := svc.SaveFile("7/1_pic.jpg", strings.NewReader("jpegdata"))
	require.NoError(t, err)

	rc, err := svc.ReadFile("7/1_pic.jpg")
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "jpegdata", string(data))

	exists, size, err := svc.FileExists(ctx, "7/1_pic.jpg")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, int64(len("jpegdata")), size)
}

func TestLocalStorage_GetDownloadURL(t *testing.T) {
	svc, _ := newTestStorage(t)

	url, err := svc.GetDownloadURL(context.Background(), "7/1 pic.jpg")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/v1/photos/download?key=7%2F1+pic.jpg", url)
}

func TestLocalStorage_DeleteFile(t *testing.T) {
	svc, _ := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, svc.SaveFile("7/1_pic.jpg", strings.NewReader("x")))
	require.NoError(t, svc.DeleteFile(ctx, "7/1_pic.jpg"))

	exists, _, err := svc.FileExists(ctx, "7/1_pic.jpg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorage_ListKeysOlderThan(t *testing.T) {
	svc, dir := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, svc.SaveFile("7/old.jpg", strings.NewReader("a")))
	require.NoError(t, svc.SaveFile("8/new.jpg", strings.NewReader("b")))

	// Age one file artificially.
	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "photos", "7", "old.jpg"), old, old))

	keys, err := svc.ListKeysOlderThan(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []string{"7/old.jpg"}, keys)
}
