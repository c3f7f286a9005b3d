package postgres

import (
	"context"
	"database/sql"
	"time"

	"cleansweep-backend/internal/domain"
	"cleansweep-backend/internal/logger"
	"cleansweep-backend/internal/repository"
)

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (id, name, email, points, role, organization_id, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`
	now := time.Now()
	p.CreatedOn = now.Format("2006-01-02")
	p.UpdatedOn = p.CreatedOn
	_, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.Email, p.Points, p.Role, p.OrganizationID, now)
	return err
}

func (r *profileRepository) GetByID(ctx context.Context, id int32) (*domain.Profile, error) {
	p := &domain.Profile{}
	query := `SELECT id, name, email, points, role, organization_id, created_on, updated_on FROM profiles WHERE id = $1`
	var createdOn, updatedOn time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Email, &p.Points, &p.Role, &p.OrganizationID, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	p.CreatedOn = createdOn.Format("2006-01-02")
	p.UpdatedOn = updatedOn.Format("2006-01-02")
	return p, nil
}

func (r *profileRepository) Update(ctx context.Context, p *domain.Profile) error {
	query := `UPDATE profiles SET name=$1, email=$2, points=$3, organization_id=$4, updated_on=$5 WHERE id=$6`
	now := time.Now()
	p.UpdatedOn = now.Format("2006-01-02")
	_, err := r.db.ExecContext(ctx, query, p.Name, p.Email, p.Points, p.OrganizationID, now, p.ID)
	return err
}

func (r *profileRepository) ListTopByPoints(ctx context.Context, limit int32) ([]domain.Profile, error) {
	query := `SELECT id, name, email, points, role, organization_id, created_on, updated_on
	          FROM profiles ORDER BY points DESC LIMIT $1`
	logger.DatabaseCall("SELECT", "profiles ORDER BY points", "limit", limit)

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err, "limit", limit)
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		var createdOn, updatedOn time.Time
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Points, &p.Role, &p.OrganizationID, &createdOn, &updatedOn); err != nil {
			return nil, err
		}
		p.CreatedOn = createdOn.Format("2006-01-02")
		p.UpdatedOn = updatedOn.Format("2006-01-02")
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.DatabaseResult("SELECT", int64(len(profiles)), nil, "limit", limit)
	return profiles, nil
}
