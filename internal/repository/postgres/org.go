package postgres

import (
	"context"
	"database/sql"
	"time"

	"cleansweep-backend/internal/domain"
	"cleansweep-backend/internal/repository"
)

type organizationRepository struct {
	db *sql.DB
}

func NewOrganizationRepository(db *sql.DB) repository.OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) Create(ctx context.Context, o *domain.Organization) error {
	query := `INSERT INTO organizations (id, name, contact_email, total_points, created_on)
	          VALUES ($1, $2, $3, $4, $5)`
	now := time.Now()
	o.CreatedOn = now.Format("2006-01-02")
	_, err := r.db.ExecContext(ctx, query, o.ID, o.Name, o.ContactEmail, o.TotalPoints, now)
	return err
}

func (r *organizationRepository) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	o := &domain.Organization{}
	query := `SELECT id, name, COALESCE(contact_email, ''), total_points, created_on FROM organizations WHERE id = $1`
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.Name, &o.ContactEmail, &o.TotalPoints, &createdOn)
	if err != nil {
		return nil, err
	}
	o.CreatedOn = createdOn.Format("2006-01-02")
	return o, nil
}

func (r *organizationRepository) Update(ctx context.Context, o *domain.Organization) error {
	query := `UPDATE organizations SET name=$1, contact_email=$2, total_points=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, o.Name, o.ContactEmail, o.TotalPoints, o.ID)
	return err
}

func (r *organizationRepository) List(ctx context.Context) ([]domain.Organization, error) {
	query := `SELECT id, name, COALESCE(contact_email, ''), total_points, created_on FROM organizations`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrganizations(rows)
}

func (r *organizationRepository) ListTopByTotalPoints(ctx context.Context, limit int32) ([]domain.Organization, error) {
	query := `SELECT id, name, COALESCE(contact_email, ''), total_points, created_on
	          FROM organizations ORDER BY total_points DESC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrganizations(rows)
}

func (r *organizationRepository) AddMember(ctx context.Context, orgID string, userID int32) error {
	query := `INSERT INTO org_members (org_id, user_id, joined_on) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, orgID, userID, time.Now())
	return err
}

func (r *organizationRepository) ListMemberIDs(ctx context.Context, orgID string) ([]int32, error) {
	query := `SELECT user_id FROM org_members WHERE org_id = $1`
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanOrganizations(rows *sql.Rows) ([]domain.Organization, error) {
	var orgs []domain.Organization
	for rows.Next() {
		var o domain.Organization
		var createdOn time.Time
		if err := rows.Scan(&o.ID, &o.Name, &o.ContactEmail, &o.TotalPoints, &createdOn); err != nil {
			return nil, err
		}
		o.CreatedOn = createdOn.Format("2006-01-02")
		orgs = append(orgs, o)
	}
	return orgs, rows.Err()
}
