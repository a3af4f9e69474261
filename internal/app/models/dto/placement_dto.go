package dto

// CompanyRequest is the create/update payload for companies.
// Updates apply only these fields; counters are never written from requests
// except through this explicit allow-list.
type CompanyRequest struct {
	Name     string `json:"name" binding:"required" example:"Acme"`
	Industry string `json:"industry" example:"Technology"`
	Location string `json:"location" example:"Bangalore"`
	Contact  string `json:"contact" example:"John Doe"`
	Email    string `json:"email" example:"recruiting@acme.com"`
	Status   string `json:"status" example:"Active" enums:"Active,Inactive"`

	Offers    *int    `json:"offers,omitempty"`
	Visits    *int    `json:"visits,omitempty"`
	LastVisit *string `json:"lastVisit,omitempty" example:"2026-02-10"` // YYYY-MM-DD
}

// DriveRequest is the create/update payload for placement drives.
type DriveRequest struct {
	Company  string `json:"company" binding:"required" example:"Acme"`
	Title    string `json:"title" binding:"required" example:"Software Engineer Recruitment 2026"`
	Position string `json:"position" example:"Software Engineer"`

	DriveDate            *string `json:"driveDate,omitempty" example:"2026-05-15"`            // YYYY-MM-DD
	RegistrationDeadline *string `json:"registrationDeadline,omitempty" example:"2026-05-01"` // YYYY-MM-DD

	Location    string `json:"location" example:"Campus"`
	Eligibility string `json:"eligibility" example:"CGPA >= 8.0, no backlogs"`
	Roles       string `json:"roles"`
	Package     string `json:"package" example:"18-24 LPA"`
	Status      string `json:"status" example:"Upcoming" enums:"Upcoming,Ongoing,Completed"`
}

// DepartmentChartRow is one bar of the department placement-rate chart.
// Groups with zero students never appear.
type DepartmentChartRow struct {
	Name          string  `json:"name" example:"CSE"`
	Total         int     `json:"total" example:"120"`
	Placed        int     `json:"placed" example:"96"`
	PlacementRate float64 `json:"placementRate" example:"80.0"` // percent, one decimal
}

// SalaryBucketRow is one slice of the salary-distribution chart.
type SalaryBucketRow struct {
	Name  string `json:"name" example:"5-10 LPA"`
	Value int    `json:"value" example:"65"`
}

// JobPosting is the employer-facing projection of an open drive.
type JobPosting struct {
	ID       int64  `json:"id" example:"3"`
	Company  string `json:"company" example:"Acme"`
	Title    string `json:"title" example:"Software Engineer Recruitment 2026"`
	Position string `json:"position" example:"Software Engineer"`
	Package  string `json:"package" example:"18-24 LPA"`
	Location string `json:"location" example:"Campus"`
	Status   string `json:"status" example:"Upcoming"`
}
