package models

import "time"

// Company defines a recruiting company tracked by the placement office.
type Company struct {
	ID       int64  `json:"id" db:"id" example:"1"`
	Name     string `json:"name" db:"name" example:"Acme"`
	Industry string `json:"industry" db:"industry" example:"Technology"`
	Location string `json:"location" db:"location" example:"Bangalore"`
	Contact  string `json:"contact" db:"contact" example:"John Doe"`
	Email    string `json:"email" db:"email" example:"recruiting@acme.com"`
	Status   string `json:"status" db:"status" example:"Active"`

	// Cumulative counters maintained across drives.
	Offers int `json:"offers" db:"offers"`
	Visits int `json:"visits" db:"visits"`

	LastVisit *time.Time `json:"lastVisit,omitempty" db:"last_visit"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
