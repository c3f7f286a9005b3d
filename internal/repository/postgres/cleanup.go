package postgres

import (
	"context"
	"database/sql"
	"time"

	"cleansweep-backend/internal/domain"
	"cleansweep-backend/internal/repository"
)

type cleanupRepository struct {
	db *sql.DB
}

func NewCleanupRepository(db *sql.DB) repository.CleanupRepository {
	return &cleanupRepository{db: db}
}

func (r *cleanupRepository) Create(ctx context.Context, c *domain.Cleanup) error {
	query := `INSERT INTO cleanups (user_id, organization_id, description, location, photo_key, photo_url, points_earned, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	// Server-assigned timestamp; rows are never updated afterwards.
	c.CreatedOn = time.Now()
	return r.db.QueryRowContext(ctx, query,
		c.UserID, c.OrganizationID, c.Description, c.Location, c.PhotoKey, c.PhotoURL, c.PointsEarned, c.CreatedOn,
	).Scan(&c.ID)
}

func (r *cleanupRepository) GetByID(ctx context.Context, id int32) (*domain.Cleanup, error) {
	c := &domain.Cleanup{}
	query := `SELECT id, user_id, organization_id, description, location, COALESCE(photo_key, ''), COALESCE(photo_url, ''), points_earned, created_on
	          FROM cleanups WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.UserID, &c.OrganizationID, &c.Description, &c.Location, &c.PhotoKey, &c.PhotoURL, &c.PointsEarned, &c.CreatedOn,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *cleanupRepository) ListByUser(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Cleanup, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	var total int32
	countQuery := `SELECT COUNT(*) FROM cleanups WHERE user_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, user_id, organization_id, description, location, COALESCE(photo_key, ''), COALESCE(photo_url, ''), points_earned, created_on
	          FROM cleanups WHERE user_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var cleanups []domain.Cleanup
	for rows.Next() {
		var c domain.Cleanup
		if err := rows.Scan(&c.ID, &c.UserID, &c.OrganizationID, &c.Description, &c.Location, &c.PhotoKey, &c.PhotoURL, &c.PointsEarned, &c.CreatedOn); err != nil {
			return nil, 0, err
		}
		cleanups = append(cleanups, c)
	}
	return cleanups, total, rows.Err()
}

func (r *cleanupRepository) ListReferencedPhotoKeys(ctx context.Context) ([]string, error) {
	query := `SELECT photo_key FROM cleanups WHERE photo_key IS NOT NULL AND photo_key != ''`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
