package dto

// Report types accepted by POST /placements/reports/download.
const (
	ReportTypeAnnual     = "annual"
	ReportTypeDepartment = "department"
	ReportTypeDetailed   = "detailed"
	ReportTypeAnalytics  = "analytics"
)

// Chart types accepted by GET /placements/charts/download/:chartType.
const (
	ChartTypeDepartmentRate     = "department-placement-rate"
	ChartTypeSalaryDistribution = "salary-distribution"
)

// ReportFilters narrows the rows included in a generated report.
type ReportFilters struct {
	Department string `json:"department" example:"CSE"`   // "all" or a branch name
	CGPARange  string `json:"cgpaRange" example:"8-9"`    // "all", "9-10", "8-9", "7-8", "6-7", "5-6", "below-5"
	Year       string `json:"year" example:"2026"`        // year of passing, "" for all
}

// ReportRequest is the payload for report generation.
type ReportRequest struct {
	ReportType string        `json:"reportType" binding:"required" example:"annual" enums:"annual,department,detailed,analytics"`
	Filters    ReportFilters `json:"filters"`
}

// InterviewRequest is the payload used by the placement office to schedule
// or update an interview.
type InterviewRequest struct {
	StudentUSN    string `json:"studentUsn" binding:"required" example:"4SF22CS001"`
	Company       string `json:"company" binding:"required" example:"Acme"`
	Position      string `json:"position" example:"Software Engineer"`
	InterviewDate string `json:"interviewDate" binding:"required" example:"2026-05-20T10:00:00Z"` // RFC 3339
	Type          string `json:"type" example:"Technical"`
	Status        string `json:"status" example:"Scheduled"`
	Result        string `json:"result" example:"Pending"`
	Feedback      string `json:"feedback"`
}
