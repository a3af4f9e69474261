package services

import (
	"context"
	"mime/multipart"
	"sort"
	"time"

	"github.com/rakshithv/placemate/internal/app/models"
	"github.com/rakshithv/placemate/internal/app/models/dto"
	"github.com/rakshithv/placemate/internal/app/repositories"
	"github.com/rakshithv/placemate/internal/pkg/apperrors"
	"github.com/rakshithv/placemate/internal/pkg/filestorage"
	"github.com/rakshithv/placemate/internal/pkg/logger"
	"github.com/rakshithv/placemate/internal/pkg/validation"
)

// StudentService handles student profiles, interview listings and drive
// applications.
type StudentService struct {
	students     repositories.StudentRepository
	interviews   repositories.InterviewRepository
	applications repositories.ApplicationRepository
	storage      filestorage.Storage
}

// NewStudentService creates a new student service instance.
func NewStudentService(
	students repositories.StudentRepository,
	interviews repositories.InterviewRepository,
	applications repositories.ApplicationRepository,
	storage filestorage.Storage,
) *StudentService {
	return &StudentService{
		students:     students,
		interviews:   interviews,
		applications: applications,
		storage:      storage,
	}
}

// GetProfile retrieves one student by USN.
func (s *StudentService) GetProfile(ctx context.Context, usn string) (*models.Student, error) {
	return s.students.GetByUSN(ctx, usn)
}

// UpsertProfile creates or updates a student keyed by USN. Branch and
// admission year are always derived, never trusted from the payload.
// Optional resume uploads replace the previous files.
func (s *StudentService) UpsertProfile(ctx context.Context, req *dto.StudentProfileRequest, resume, videoResume *multipart.FileHeader) (*models.Student, error) {
	if !validation.CompiledPatterns.USN.MatchString(req.USN) {
		return nil, apperrors.ErrInvalidUSN
	}

	student := profileToModel(req)

	exists, err := s.students.ExistsByUSN(ctx, req.USN)
	if err != nil {
		return nil, err
	}
	if exists {
		if err := s.students.UpdateProfile(ctx, student); err != nil {
			return nil, err
		}
	} else {
		if err := s.students.Create(ctx, student); err != nil {
			return nil, err
		}
	}

	if resume != nil {
		if err := s.replaceFile(ctx, req.USN, resume, s.students.UpdateResumeFile); err != nil {
			return nil, err
		}
	}
	if videoResume != nil {
		if err := s.replaceFile(ctx, req.USN, videoResume, s.students.UpdateVideoResumeFile); err != nil {
			return nil, err
		}
	}

	return s.students.GetByUSN(ctx, req.USN)
}

func (s *StudentService) replaceFile(ctx context.Context, usn string, fh *multipart.FileHeader, update func(context.Context, string, *string) error) error {
	filename, err := s.storage.SaveFile(fh)
	if err != nil {
		return err
	}
	if err := update(ctx, usn, &filename); err != nil {
		// keep the store consistent when the row update fails
		if delErr := s.storage.DeleteFile(filename); delErr != nil {
			logger.Error().Err(delErr).Str("filename", filename).Msg("Failed to clean up orphaned upload")
		}
		return err
	}
	return nil
}

// ListForAnalytics returns every student ordered by CGPA descending, the
// order the placement dashboard renders.
func (s *StudentService) ListForAnalytics(ctx context.Context) ([]*models.Student, error) {
	students, err := s.students.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(students, func(i, j int) bool {
		return students[i].BeCGPA > students[j].BeCGPA
	})
	return students, nil
}

// Interviews returns a student's interviews split around the current time.
func (s *StudentService) Interviews(ctx context.Context, usn string) (*dto.InterviewsResponse, error) {
	interviews, err := s.interviews.ListByStudent(ctx, usn)
	if err != nil {
		return nil, err
	}

	resp := &dto.InterviewsResponse{
		Upcoming: []*models.Interview{},
		Past:     []*models.Interview{},
	}
	now := time.Now()
	for _, iv := range interviews {
		if iv.InterviewDate.After(now) {
			resp.Upcoming = append(resp.Upcoming, iv)
		} else {
			resp.Past = append(resp.Past, iv)
		}
	}
	return resp, nil
}

// Applications returns a student's drive registrations with drive details.
func (s *StudentService) Applications(ctx context.Context, usn string) ([]*models.Application, error) {
	return s.applications.ListByStudent(ctx, usn)
}

func profileToModel(req *dto.StudentProfileRequest) *models.Student {
	return &models.Student{
		USN:              req.USN,
		Name:             req.Name,
		Branch:           validation.BranchFromUSN(req.USN),
		Email:            req.Email,
		ContactNumber:    req.ContactNumber,
		PermanentAddress: req.PermanentAddress,

		YearOfPassing:   req.YearOfPassing,
		YearOfAdmission: validation.AdmissionYearFromPassing(req.YearOfPassing),

		BeCGPA:            req.BeCGPA,
		TenthPercentage:   req.TenthPercentage,
		TwelfthPercentage: req.TwelfthPercentage,

		Sem1Marks: req.Sem1,
		Sem2Marks: req.Sem2,
		Sem3Marks: req.Sem3,
		Sem4Marks: req.Sem4,
		Sem5Marks: req.Sem5,
		Sem6Marks: req.Sem6,
		Sem7Marks: req.Sem7,
		Sem8Marks: req.Sem8,

		DiplomaSem1: req.DiplomaSem1,
		DiplomaSem2: req.DiplomaSem2,
		DiplomaSem3: req.DiplomaSem3,
		DiplomaSem4: req.DiplomaSem4,
		DiplomaSem5: req.DiplomaSem5,
		DiplomaSem6: req.DiplomaSem6,

		HasInternship:        req.HasInternship,
		InternshipCount:      req.InternshipCount,
		HasProjects:          req.HasProjects,
		ProjectCount:         req.ProjectCount,
		HasWorkExperience:    req.HasWorkExperience,
		WorkExperienceMonths: req.WorkExperienceMonths,

		Placed:         req.Placed,
		PackageOffered: req.PackageOffered,
		CompanyPlaced:  req.CompanyPlaced,
		CompanyNames:   req.CompanyNames,
		NumberOfOffers: req.NumberOfOffers,
	}
}
