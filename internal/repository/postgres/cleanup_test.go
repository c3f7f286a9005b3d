package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleansweep-backend/internal/domain"
	"cleansweep-backend/internal/repository/postgres"
)

func TestCleanupRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewCleanupRepository(db)
	ctx := context.Background()

	orgID := "org_3"
	c := &domain.Cleanup{
		UserID:         7,
		OrganizationID: &orgID,
		Description:    "beach cleanup",
		Location:       "north shore",
		PhotoKey:       "7/123_pic.jpg",
		PhotoURL:       "http://localhost/api/v1/photos/download?key=7%2F123_pic.jpg",
		PointsEarned:   10,
	}

	rows := sqlmock.NewRows([]string{"id"}).AddRow(55)
	mock.ExpectQuery("INSERT INTO cleanups").
		WithArgs(c.UserID, c.OrganizationID, c.Description, c.Location, c.PhotoKey, c.PhotoURL, c.PointsEarned, sqlmock.AnyArg()).
		WillReturnRows(rows)

	err = repo.Create(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, int32(55), c.ID)
	assert.False(t, c.CreatedOn.IsZero())
}

func TestCleanupRepository_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewCleanupRepository(db)
	ctx := context.Background()

	t.Run("SecondPage", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT").
			WithArgs(int32(7)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(45))

		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "user_id", "organization_id", "description", "location", "photo_key", "photo_url", "points_earned", "created_on"}).
			AddRow(30, 7, nil, "trail", "ridge", "", "", 5, now).
			AddRow(29, 7, nil, "creek", "downtown", "", "", 3, now.Add(-time.Hour))
		mock.ExpectQuery("FROM cleanups WHERE user_id").
			WithArgs(int32(7), int32(20), int32(20)).
			WillReturnRows(rows)

		list, total, err := repo.ListByUser(ctx, 7, 2, 20)
		require.NoError(t, err)
		assert.Equal(t, int32(45), total)
		require.Len(t, list, 2)
		assert.True(t, list[0].CreatedOn.After(list[1].CreatedOn))
	})

	t.Run("PageDefaults", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT").
			WithArgs(int32(7)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery("FROM cleanups WHERE user_id").
			WithArgs(int32(7), int32(20), int32(0)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "organization_id", "description", "location", "photo_key", "photo_url", "points_earned", "created_on"}))

		list, total, err := repo.ListByUser(ctx, 7, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, int32(0), total)
		assert.Empty(t, list)
	})
}

func TestCleanupRepository_ListReferencedPhotoKeys(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewCleanupRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"photo_key"}).
		AddRow("7/1_a.jpg").
		AddRow("8/2_b.png")
	mock.ExpectQuery("SELECT photo_key FROM cleanups").
		WillReturnRows(rows)

	keys, err := repo.ListReferencedPhotoKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"7/1_a.jpg", "8/2_b.png"}, keys)
}
