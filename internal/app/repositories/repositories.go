// Package repositories defines the storage interfaces consumed by the
// service layer. Two implementations exist: postgres (persistent) and
// memory (volatile, used for offline mode and tests). The implementation
// is chosen once at startup from configuration.
package repositories

import (
	"context"

	"github.com/rakshithv/placemate/internal/app/models"
)

// StudentRepository persists student academic profiles keyed by USN.
type StudentRepository interface {
	GetByUSN(ctx context.Context, usn string) (*models.Student, error)
	ExistsByUSN(ctx context.Context, usn string) (bool, error)
	Create(ctx context.Context, student *models.Student) error
	UpdateProfile(ctx context.Context, student *models.Student) error
	UpdateResumeFile(ctx context.Context, usn string, filename *string) error
	UpdateVideoResumeFile(ctx context.Context, usn string, filename *string) error
	ListAll(ctx context.Context) ([]*models.Student, error)
	ListByBranch(ctx context.Context, branch string) ([]*models.Student, error)
}

// OfficerRepository persists placement office accounts.
type OfficerRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.PlacementOfficer, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, officer *models.PlacementOfficer) error
}

// CompanyRepository persists recruiting companies.
type CompanyRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Company, error)
	GetByName(ctx context.Context, name string) (*models.Company, error)
	List(ctx context.Context) ([]*models.Company, error)
	Create(ctx context.Context, company *models.Company) error
	Update(ctx context.Context, company *models.Company) error
	Delete(ctx context.Context, id int64) error
}

// DriveRepository persists placement drives. RegisterStudent records an
// application and increments the drive's registration counter atomically.
type DriveRepository interface {
	GetByID(ctx context.Context, id int64) (*models.PlacementDrive, error)
	List(ctx context.Context) ([]*models.PlacementDrive, error)
	Create(ctx context.Context, drive *models.PlacementDrive) error
	Update(ctx context.Context, drive *models.PlacementDrive) error
	Delete(ctx context.Context, id int64) error
	RegisterStudent(ctx context.Context, driveID int64, usn string) error
}

// DocumentRepository persists student document metadata. File contents live
// in file storage; rows reference the stored filename.
type DocumentRepository interface {
	GetByID(ctx context.Context, id int64) (*models.StudentDocument, error)
	ListByStudent(ctx context.Context, usn string) ([]*models.StudentDocument, error)
	Create(ctx context.Context, doc *models.StudentDocument) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

// InterviewRepository persists interview schedules.
type InterviewRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Interview, error)
	ListByStudent(ctx context.Context, usn string) ([]*models.Interview, error)
	Create(ctx context.Context, interview *models.Interview) error
	Update(ctx context.Context, interview *models.Interview) error
}

// ApplicationRepository reads a student's drive registrations.
type ApplicationRepository interface {
	ListByStudent(ctx context.Context, usn string) ([]*models.Application, error)
	ExistsForDrive(ctx context.Context, driveID int64, usn string) (bool, error)
}

// DepartmentStat is one aggregated row of placement counts per branch.
// Branches with no students are unrepresentable: aggregation only emits
// groups that exist.
type DepartmentStat struct {
	Branch string
	Total  int
	Placed int
}

// AnalyticsRepository computes placement aggregates inside the store, so
// the stored rows stay the single source of truth for every chart.
type AnalyticsRepository interface {
	DepartmentStats(ctx context.Context) ([]DepartmentStat, error)
	PackagesOfPlaced(ctx context.Context) ([]float64, error)
}

// Store bundles every repository behind a single injection point.
type Store struct {
	Students     StudentRepository
	Officers     OfficerRepository
	Companies    CompanyRepository
	Drives       DriveRepository
	Documents    DocumentRepository
	Interviews   InterviewRepository
	Applications ApplicationRepository
	Analytics    AnalyticsRepository
}
