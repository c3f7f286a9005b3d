package postgres

import (
	"context"
	"database/sql"
	"time"

	"cleansweep-backend/internal/domain"
	"cleansweep-backend/internal/repository"
)

type identityRepository struct {
	db *sql.DB
}

func NewIdentityRepository(db *sql.DB) repository.IdentityRepository {
	return &identityRepository{db: db}
}

func (r *identityRepository) Create(ctx context.Context, i *domain.Identity) error {
	query := `INSERT INTO identities (email, password_hash, created_on)
	          VALUES ($1, $2, $3) RETURNING id`
	now := time.Now()
	i.CreatedOn = now.Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, i.Email, i.PasswordHash, now).Scan(&i.ID)
}

func (r *identityRepository) GetByID(ctx context.Context, id int32) (*domain.Identity, error) {
	i := &domain.Identity{}
	query := `SELECT id, email, password_hash, created_on FROM identities WHERE id = $1`
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(&i.ID, &i.Email, &i.PasswordHash, &createdOn)
	if err != nil {
		return nil, err
	}
	i.CreatedOn = createdOn.Format("2006-01-02")
	return i, nil
}

func (r *identityRepository) GetByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	i := &domain.Identity{}
	query := `SELECT id, email, password_hash, created_on FROM identities WHERE LOWER(email) = LOWER($1)`
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, email).Scan(&i.ID, &i.Email, &i.PasswordHash, &createdOn)
	if err != nil {
		return nil, err
	}
	i.CreatedOn = createdOn.Format("2006-01-02")
	return i, nil
}
