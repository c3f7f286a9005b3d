package postgres

import (
	"database/sql"

	"cleansweep-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.IdentityRepository
	repository.ProfileRepository
	repository.OrganizationRepository
	repository.CleanupRepository
	repository.ChallengeRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		IdentityRepository:     NewIdentityRepository(db),
		ProfileRepository:      NewProfileRepository(db),
		OrganizationRepository: NewOrganizationRepository(db),
		CleanupRepository:      NewCleanupRepository(db),
		ChallengeRepository:    NewChallengeRepository(db),
	}
}
