package postgres

import (
	"context"
	"database/sql"
	"time"

	"cleansweep-backend/internal/domain"
	"cleansweep-backend/internal/repository"

	"github.com/lib/pq"
)

type challengeRepository struct {
	db *sql.DB
}

func NewChallengeRepository(db *sql.DB) repository.ChallengeRepository {
	return &challengeRepository{db: db}
}

func (r *challengeRepository) Create(ctx context.Context, c *domain.Challenge) error {
	query := `INSERT INTO challenges (organization_id, title, description, reward, start_date, end_date, participants, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	c.CreatedOn = now.Format("2006-01-02")
	if c.Participants == nil {
		c.Participants = []int32{}
	}
	return r.db.QueryRowContext(ctx, query,
		c.OrganizationID, c.Title, c.Description, c.Reward, c.StartDate, c.EndDate, pq.Array(c.Participants), now,
	).Scan(&c.ID)
}

func (r *challengeRepository) GetByID(ctx context.Context, id int32) (*domain.Challenge, error) {
	c := &domain.Challenge{}
	query := `SELECT id, organization_id, title, description, reward, start_date, end_date, participants, created_on
	          FROM challenges WHERE id = $1`
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.OrganizationID, &c.Title, &c.Description, &c.Reward, &c.StartDate, &c.EndDate, pq.Array(&c.Participants), &createdOn,
	)
	if err != nil {
		return nil, err
	}
	c.CreatedOn = createdOn.Format("2006-01-02")
	return c, nil
}

func (r *challengeRepository) List(ctx context.Context, organizationID string) ([]domain.Challenge, error) {
	query := `SELECT id, organization_id, title, description, reward, start_date, end_date, participants, created_on
	          FROM challenges`
	args := []interface{}{}
	if organizationID != "" {
		query += ` WHERE organization_id = $1`
		args = append(args, organizationID)
	}
	query += ` ORDER BY created_on DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var challenges []domain.Challenge
	for rows.Next() {
		var c domain.Challenge
		var createdOn time.Time
		if err := rows.Scan(&c.ID, &c.OrganizationID, &c.Title, &c.Description, &c.Reward, &c.StartDate, &c.EndDate, pq.Array(&c.Participants), &createdOn); err != nil {
			return nil, err
		}
		c.CreatedOn = createdOn.Format("2006-01-02")
		challenges = append(challenges, c)
	}
	return challenges, rows.Err()
}
