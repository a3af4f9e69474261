package models

import "time"

// Interview defines a scheduled or past interview for one student.
type Interview struct {
	ID         int64  `json:"id" db:"id" example:"1"`
	StudentUSN string `json:"studentUsn" db:"student_usn" example:"4SF22CS001"`
	Company    string `json:"company" db:"company" example:"Acme"`
	Position   string `json:"position" db:"position" example:"Software Engineer"`

	InterviewDate time.Time `json:"interviewDate" db:"interview_date"`

	Type     string `json:"type" db:"type" example:"Technical"`
	Status   string `json:"status" db:"status" example:"Scheduled"`
	Result   string `json:"result" db:"result" example:"Pending"`
	Feedback string `json:"feedback" db:"feedback"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
