// Package memory implements the repository interfaces with in-process maps.
// It backs offline mode and the service tests. All repositories share one
// lock; values are copied on the way in and out so callers never alias
// stored structs.
package memory

import (
	"sync"

	"github.com/rakshithv/placemate/internal/app/models"
	"github.com/rakshithv/placemate/internal/app/repositories"
)

type data struct {
	mu sync.RWMutex

	students     map[string]*models.Student
	officers     map[string]*models.PlacementOfficer
	companies    map[int64]*models.Company
	drives       map[int64]*models.PlacementDrive
	documents    map[int64]*models.StudentDocument
	interviews   map[int64]*models.Interview
	applications map[int64]*models.Application

	nextStudentID     int64
	nextCompanyID     int64
	nextDriveID       int64
	nextDocumentID    int64
	nextInterviewID   int64
	nextApplicationID int64
	nextOfficerID     int64
}

// NewStore assembles every map-backed repository on one shared dataset.
func NewStore() *repositories.Store {
	d := &data{
		students:     make(map[string]*models.Student),
		officers:     make(map[string]*models.PlacementOfficer),
		companies:    make(map[int64]*models.Company),
		drives:       make(map[int64]*models.PlacementDrive),
		documents:    make(map[int64]*models.StudentDocument),
		interviews:   make(map[int64]*models.Interview),
		applications: make(map[int64]*models.Application),
	}
	return &repositories.Store{
		Students:     &StudentRepository{d: d},
		Officers:     &OfficerRepository{d: d},
		Companies:    &CompanyRepository{d: d},
		Drives:       &DriveRepository{d: d},
		Documents:    &DocumentRepository{d: d},
		Interviews:   &InterviewRepository{d: d},
		Applications: &ApplicationRepository{d: d},
		Analytics:    &AnalyticsRepository{d: d},
	}
}
