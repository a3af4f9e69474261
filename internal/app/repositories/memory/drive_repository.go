package memory

import (
	"context"
	"sort"
	"time"

	"github.com/rakshithv/placemate/internal/app/models"
	"github.com/rakshithv/placemate/internal/pkg/apperrors"
)

// DriveRepository is the map-backed drive store.
type DriveRepository struct {
	d *data
}

func cloneDrive(d *models.PlacementDrive) *models.PlacementDrive {
	c := *d
	return &c
}

// GetByID retrieves a drive by ID.
func (r *DriveRepository) GetByID(ctx context.Context, id int64) (*models.PlacementDrive, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()

	d, ok := r.d.drives[id]
	if !ok {
		return nil, apperrors.ErrDriveNotFound
	}
	return cloneDrive(d), nil
}

// List returns all drives, newest drive date first.
func (r *DriveRepository) List(ctx context.Context) ([]*models.PlacementDrive, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()

	drives := make([]*models.PlacementDrive, 0, len(r.d.drives))
	for _, d := range r.d.drives {
		drives = append(drives, cloneDrive(d))
	}
	sort.Slice(drives, func(i, j int) bool {
		di, dj := drives[i].DriveDate, drives[j].DriveDate
		switch {
		case di == nil && dj == nil:
			return drives[i].ID > drives[j].ID
		case di == nil:
			return false
		case dj == nil:
			return true
		case !di.Equal(*dj):
			return di.After(*dj)
		default:
			return drives[i].ID > drives[j].ID
		}
	})
	return drives, nil
}

// Create stores a new drive.
func (r *DriveRepository) Create(ctx context.Context, drive *models.PlacementDrive) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()

	r.d.nextDriveID++
	drive.ID = r.d.nextDriveID
	drive.StudentsRegistered = 0
	drive.StudentsSelected = 0
	drive.CreatedAt = time.Now()

	r.d.drives[drive.ID] = cloneDrive(drive)
	return nil
}

// Update replaces the mutable fields of a stored drive.
func (r *DriveRepository) Update(ctx context.Context, drive *models.PlacementDrive) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()

	existing, ok := r.d.drives[drive.ID]
	if !ok {
		return apperrors.ErrDriveNotFound
	}

	updated := cloneDrive(drive)
	updated.StudentsRegistered = existing.StudentsRegistered
	updated.CreatedAt = existing.CreatedAt
	r.d.drives[drive.ID] = updated
	return nil
}

// Delete removes a drive and its applications.
func (r *DriveRepository) Delete(ctx context.Context, id int64) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()

	if _, ok := r.d.drives[id]; !ok {
		return apperrors.ErrDriveNotFound
	}
	delete(r.d.drives, id)
	for appID, a := range r.d.applications {
		if a.DriveID == id {
			delete(r.d.applications, appID)
		}
	}
	return nil
}

// RegisterStudent records an application and bumps the registration counter.
func (r *DriveRepository) RegisterStudent(ctx context.Context, driveID int64, usn string) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()

	drive, ok := r.d.drives[driveID]
	if !ok {
		return apperrors.ErrDriveNotFound
	}
	for _, a := range r.d.applications {
		if a.DriveID == driveID && a.StudentUSN == usn {
			return apperrors.ErrAlreadyRegistered
		}
	}

	r.d.nextApplicationID++
	r.d.applications[r.d.nextApplicationID] = &models.Application{
		ID:          r.d.nextApplicationID,
		StudentUSN:  usn,
		DriveID:     driveID,
		Status:      "Applied",
		AppliedDate: time.Now(),
	}
	drive.StudentsRegistered++
	return nil
}
