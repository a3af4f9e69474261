package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rakshithv/placemate/internal/app/repositories"
)

// NewStore assembles every postgres-backed repository on one pool.
func NewStore(db *pgxpool.Pool) *repositories.Store {
	return &repositories.Store{
		Students:     NewStudentRepository(db),
		Officers:     NewOfficerRepository(db),
		Companies:    NewCompanyRepository(db),
		Drives:       NewDriveRepository(db),
		Documents:    NewDocumentRepository(db),
		Interviews:   NewInterviewRepository(db),
		Applications: NewApplicationRepository(db),
		Analytics:    NewAnalyticsRepository(db),
	}
}
