package models

import "time"

// Student defines the student model based on the 'students' table.
// The USN (University Seat Number) is the business key; derived fields
// (branch, year_of_admission) must stay consistent with it.
type Student struct {
	ID           int64  `json:"id" db:"id" example:"1"`
	USN          string `json:"usn" db:"usn" example:"4SF22CS001"` // Unique, format 4SF<yy><branch><nnn>
	Name         string `json:"name" db:"name" example:"Rakshith V"`
	Branch       string `json:"branch" db:"branch" example:"CSE"`
	Email        string `json:"email" db:"email" example:"rakshith.cs22@sahyadri.edu.in"`
	ContactNumber string `json:"contactNumber" db:"contact_number" example:"9876543210"`
	PermanentAddress string `json:"permanentAddress" db:"permanent_address"`

	YearOfPassing   int `json:"yearOfPassing" db:"year_of_passing" example:"2026"`
	YearOfAdmission int `json:"yearOfAdmission" db:"year_of_admission" example:"2022"` // year_of_passing - 4

	BeCGPA            float64 `json:"beCgpa" db:"be_cgpa" example:"8.7"`
	TenthPercentage   float64 `json:"tenthPercentage" db:"tenth_percentage" example:"92.4"`
	TwelfthPercentage float64 `json:"twelfthPercentage" db:"twelfth_percentage" example:"88.1"`

	Sem1Marks float64 `json:"sem1" db:"sem1_marks"`
	Sem2Marks float64 `json:"sem2" db:"sem2_marks"`
	Sem3Marks float64 `json:"sem3" db:"sem3_marks"`
	Sem4Marks float64 `json:"sem4" db:"sem4_marks"`
	Sem5Marks float64 `json:"sem5" db:"sem5_marks"`
	Sem6Marks float64 `json:"sem6" db:"sem6_marks"`
	Sem7Marks float64 `json:"sem7" db:"sem7_marks"`
	Sem8Marks float64 `json:"sem8" db:"sem8_marks"`

	// Diploma marks only exist for lateral-entry students.
	DiplomaSem1 *float64 `json:"diplomaSem1,omitempty" db:"diploma_sem1"`
	DiplomaSem2 *float64 `json:"diplomaSem2,omitempty" db:"diploma_sem2"`
	DiplomaSem3 *float64 `json:"diplomaSem3,omitempty" db:"diploma_sem3"`
	DiplomaSem4 *float64 `json:"diplomaSem4,omitempty" db:"diploma_sem4"`
	DiplomaSem5 *float64 `json:"diplomaSem5,omitempty" db:"diploma_sem5"`
	DiplomaSem6 *float64 `json:"diplomaSem6,omitempty" db:"diploma_sem6"`

	HasInternship        bool `json:"hasInternship" db:"has_internship"`
	InternshipCount      int  `json:"internshipCount" db:"internship_count"`
	HasProjects          bool `json:"hasProjects" db:"has_projects"`
	ProjectCount         int  `json:"projectCount" db:"project_count"`
	HasWorkExperience    bool `json:"hasWorkExperience" db:"has_work_experience"`
	WorkExperienceMonths int  `json:"workExperienceMonths" db:"work_experience_months"`

	// Placement outcome
	Placed         bool     `json:"placed" db:"placed"`
	PackageOffered *float64 `json:"packageOffered,omitempty" db:"package_offered"` // LPA
	CompanyPlaced  *string  `json:"companyPlaced,omitempty" db:"company_placed"`
	CompanyNames   *string  `json:"companyNames,omitempty" db:"company_names"` // comma-separated, kept from legacy schema
	NumberOfOffers int      `json:"numberOfOffers" db:"number_of_offers"`

	ResumeFile      *string `json:"resumeFile,omitempty" db:"resume_file"`
	VideoResumeFile *string `json:"videoResumeFile,omitempty" db:"video_resume_file"`

	PasswordHash string `json:"-" db:"password_hash"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
