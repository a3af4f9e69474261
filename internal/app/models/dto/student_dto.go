package dto

import "github.com/rakshithv/placemate/internal/app/models"

// StudentProfileRequest is the upsert payload for POST /students/profile.
// It binds from either JSON or multipart form fields; the optional
// resumeFile/videoResumeFile parts are read from the multipart form directly.
type StudentProfileRequest struct {
	USN              string `json:"usn" form:"usn" binding:"required" example:"4SF22CS001"`
	Name             string `json:"name" form:"name" binding:"required" example:"Rakshith V"`
	Email            string `json:"email" form:"email" example:"rakshith.cs22@sahyadri.edu.in"`
	ContactNumber    string `json:"contactNumber" form:"contactNumber"`
	PermanentAddress string `json:"permanentAddress" form:"permanentAddress"`

	YearOfPassing int `json:"yearOfPassing" form:"yearOfPassing" binding:"required" example:"2026"`

	BeCGPA            float64 `json:"beCgpa" form:"beCgpa"`
	TenthPercentage   float64 `json:"tenthPercentage" form:"tenthPercentage"`
	TwelfthPercentage float64 `json:"twelfthPercentage" form:"twelfthPercentage"`

	Sem1 float64 `json:"sem1" form:"sem1"`
	Sem2 float64 `json:"sem2" form:"sem2"`
	Sem3 float64 `json:"sem3" form:"sem3"`
	Sem4 float64 `json:"sem4" form:"sem4"`
	Sem5 float64 `json:"sem5" form:"sem5"`
	Sem6 float64 `json:"sem6" form:"sem6"`
	Sem7 float64 `json:"sem7" form:"sem7"`
	Sem8 float64 `json:"sem8" form:"sem8"`

	DiplomaSem1 *float64 `json:"diplomaSem1,omitempty" form:"diplomaSem1"`
	DiplomaSem2 *float64 `json:"diplomaSem2,omitempty" form:"diplomaSem2"`
	DiplomaSem3 *float64 `json:"diplomaSem3,omitempty" form:"diplomaSem3"`
	DiplomaSem4 *float64 `json:"diplomaSem4,omitempty" form:"diplomaSem4"`
	DiplomaSem5 *float64 `json:"diplomaSem5,omitempty" form:"diplomaSem5"`
	DiplomaSem6 *float64 `json:"diplomaSem6,omitempty" form:"diplomaSem6"`

	HasInternship        bool `json:"hasInternship" form:"hasInternship"`
	InternshipCount      int  `json:"internshipCount" form:"internshipCount"`
	HasProjects          bool `json:"hasProjects" form:"hasProjects"`
	ProjectCount         int  `json:"projectCount" form:"projectCount"`
	HasWorkExperience    bool `json:"hasWorkExperience" form:"hasWorkExperience"`
	WorkExperienceMonths int  `json:"workExperienceMonths" form:"workExperienceMonths"`

	Placed         bool     `json:"placed" form:"placed"`
	PackageOffered *float64 `json:"packageOffered,omitempty" form:"packageOffered"`
	CompanyPlaced  *string  `json:"companyPlaced,omitempty" form:"companyPlaced"`
	CompanyNames   *string  `json:"companyNames,omitempty" form:"companyNames"`
	NumberOfOffers int      `json:"numberOfOffers" form:"numberOfOffers"`
}

// InterviewsResponse splits a student's interviews around the current time.
type InterviewsResponse struct {
	Upcoming []*models.Interview `json:"upcoming"`
	Past     []*models.Interview `json:"past"`
}
