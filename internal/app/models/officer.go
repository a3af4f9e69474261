package models

import "time"

// PlacementOfficer defines the placement office staff model.
type PlacementOfficer struct {
	ID          int64  `json:"id" db:"id" example:"1"`
	Username    string `json:"username" db:"username" example:"FA001"` // format FA<nnn>
	Name        string `json:"name" db:"name" example:"Priya Shenoy"`
	Designation string `json:"designation" db:"designation" example:"Placement Officer"`

	PasswordHash string `json:"-" db:"password_hash"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
