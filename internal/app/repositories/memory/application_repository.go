package memory

import (
	"context"
	"sort"

	"github.com/rakshithv/placemate/internal/app/models"
)

// ApplicationRepository is the map-backed application store.
type ApplicationRepository struct {
	d *data
}

// ListByStudent returns a student's applications with their drives attached,
// newest application first.
func (r *ApplicationRepository) ListByStudent(ctx context.Context, usn string) ([]*models.Application, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()

	applications := []*models.Application{}
	for _, a := range r.d.applications {
		if a.StudentUSN != usn {
			continue
		}
		c := *a
		if drive, ok := r.d.drives[a.DriveID]; ok {
			dc := *drive
			c.Drive = &dc
		}
		applications = append(applications, &c)
	}
	sort.Slice(applications, func(i, j int) bool {
		if !applications[i].AppliedDate.Equal(applications[j].AppliedDate) {
			return applications[i].AppliedDate.After(applications[j].AppliedDate)
		}
		return applications[i].ID > applications[j].ID
	})
	return applications, nil
}

// ExistsForDrive checks whether the student already registered for the drive.
func (r *ApplicationRepository) ExistsForDrive(ctx context.Context, driveID int64, usn string) (bool, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()

	for _, a := range r.d.applications {
		if a.DriveID == driveID && a.StudentUSN == usn {
			return true, nil
		}
	}
	return false, nil
}
