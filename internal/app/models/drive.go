package models

import "time"

// PlacementDrive defines a campus recruitment drive.
type PlacementDrive struct {
	ID       int64  `json:"id" db:"id" example:"1"`
	Company  string `json:"company" db:"company" example:"Acme"`
	Title    string `json:"title" db:"title" example:"Software Engineer Recruitment 2026"`
	Position string `json:"position" db:"position" example:"Software Engineer"`

	DriveDate            *time.Time `json:"driveDate,omitempty" db:"drive_date"`
	RegistrationDeadline *time.Time `json:"registrationDeadline,omitempty" db:"registration_deadline"`

	Location    string `json:"location" db:"location" example:"Campus"`
	Eligibility string `json:"eligibility" db:"eligibility" example:"CGPA >= 8.0, no backlogs"`
	Roles       string `json:"roles" db:"roles"`
	Package     string `json:"package" db:"package" example:"18-24 LPA"`
	Status      string `json:"status" db:"status" example:"Upcoming"`

	StudentsRegistered int `json:"studentsRegistered" db:"students_registered"`
	StudentsSelected   int `json:"studentsSelected" db:"students_selected"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
