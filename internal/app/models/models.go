package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent   RoleType = "student"
	RolePlacement RoleType = "placement"
	RoleEmployer  RoleType = "employer"
)

// Company status values
const (
	CompanyStatusActive   = "Active"
	CompanyStatusInactive = "Inactive"
)

// Placement drive status values
const (
	DriveStatusUpcoming  = "Upcoming"
	DriveStatusOngoing   = "Ongoing"
	DriveStatusCompleted = "Completed"
)

// Document verification status values. StatusDeleting marks the first phase
// of a two-phase delete: the row is kept until the backing file is gone.
const (
	DocumentStatusPending  = "pending"
	DocumentStatusVerified = "verified"
	DocumentStatusRejected = "rejected"
	DocumentStatusDeleting = "deleting"
)

// Document type values
const (
	DocumentTypeResume      = "resume"
	DocumentTypeMarksheet   = "marksheet"
	DocumentTypeCertificate = "certificate"
	DocumentTypeOther       = "other"
)
