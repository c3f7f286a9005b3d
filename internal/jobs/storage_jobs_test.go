package jobs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleansweep-backend/internal/config"
	"cleansweep-backend/internal/jobs"
	"cleansweep-backend/internal/repository/postgres"
	"cleansweep-backend/internal/storage"
)

func TestSweepOrphanedPhotos(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	dir := t.TempDir()
	photoStore, err := storage.NewLocalStorageService("http://localhost:8080", dir)
	require.NoError(t, err)

	// Three stored photos: one referenced, one orphaned, one too recent.
	require.NoError(t, photoStore.SaveFile("1/referenced.jpg", strings.NewReader("a")))
	require.NoError(t, photoStore.SaveFile("2/orphaned.jpg", strings.NewReader("b")))
	require.NoError(t, photoStore.SaveFile("3/recent.jpg", strings.NewReader("c")))

	old := time.Now().Add(-48 * time.Hour)
	for _, name := range []string{"1/referenced.jpg", "2/orphaned.jpg"} {
		path := filepath.Join(dir, "photos", filepath.FromSlash(name))
		require.NoError(t, os.Chtimes(path, old, old))
	}

	mock.ExpectQuery("SELECT photo_key FROM cleanups").
		WillReturnRows(sqlmock.NewRows([]string{"photo_key"}).AddRow("1/referenced.jpg"))

	runner := jobs.NewJobRunner(db, postgres.NewStore(db), &jobs.Services{}, photoStore, &config.Config{})
	runner.SweepOrphanedPhotos()

	ctx := context.Background()
	exists, _, err := photoStore.FileExists(ctx, "1/referenced.jpg")
	require.NoError(t, err)
	assert.True(t, exists, "referenced photo must survive the sweep")

	exists, _, err = photoStore.FileExists(ctx, "2/orphaned.jpg")
	require.NoError(t, err)
	assert.False(t, exists, "orphaned photo must be deleted")

	exists, _, err = photoStore.FileExists(ctx, "3/recent.jpg")
	require.NoError(t, err)
	assert.True(t, exists, "recent photo must survive the sweep")

	assert.NoError(t, mock.ExpectationsWereMet())
}
