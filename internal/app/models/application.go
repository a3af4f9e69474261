package models

import "time"

// Application links a student to a placement drive they registered for.
type Application struct {
	ID         int64  `json:"id" db:"id" example:"1"`
	StudentUSN string `json:"studentUsn" db:"student_usn" example:"4SF22CS001"`
	DriveID    int64  `json:"driveId" db:"drive_id" example:"3"`
	Status     string `json:"status" db:"status" example:"Applied"`

	AppliedDate time.Time `json:"appliedDate" db:"applied_date"`

	// Populated on list queries for the student dashboard.
	Drive *PlacementDrive `json:"drive,omitempty"`
}
