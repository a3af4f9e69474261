// Package postgres implements the repository interfaces on top of a
// pgx connection pool.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rakshithv/placemate/internal/app/models"
	"github.com/rakshithv/placemate/internal/pkg/apperrors"
	"github.com/rakshithv/placemate/internal/pkg/dberrors"
)

const studentColumns = `
	id, usn, name, branch, email, contact_number, permanent_address,
	year_of_passing, year_of_admission,
	be_cgpa, tenth_percentage, twelfth_percentage,
	sem1_marks, sem2_marks, sem3_marks, sem4_marks,
	sem5_marks, sem6_marks, sem7_marks, sem8_marks,
	diploma_sem1, diploma_sem2, diploma_sem3,
	diploma_sem4, diploma_sem5, diploma_sem6,
	has_internship, internship_count, has_projects, project_count,
	has_work_experience, work_experience_months,
	placed, package_offered, company_placed, company_names, number_of_offers,
	resume_file, video_resume_file, password_hash,
	created_at, updated_at`

// StudentRepository handles database operations for students.
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository.
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID, &s.USN, &s.Name, &s.Branch, &s.Email, &s.ContactNumber, &s.PermanentAddress,
		&s.YearOfPassing, &s.YearOfAdmission,
		&s.BeCGPA, &s.TenthPercentage, &s.TwelfthPercentage,
		&s.Sem1Marks, &s.Sem2Marks, &s.Sem3Marks, &s.Sem4Marks,
		&s.Sem5Marks, &s.Sem6Marks, &s.Sem7Marks, &s.Sem8Marks,
		&s.DiplomaSem1, &s.DiplomaSem2, &s.DiplomaSem3,
		&s.DiplomaSem4, &s.DiplomaSem5, &s.DiplomaSem6,
		&s.HasInternship, &s.InternshipCount, &s.HasProjects, &s.ProjectCount,
		&s.HasWorkExperience, &s.WorkExperienceMonths,
		&s.Placed, &s.PackageOffered, &s.CompanyPlaced, &s.CompanyNames, &s.NumberOfOffers,
		&s.ResumeFile, &s.VideoResumeFile, &s.PasswordHash,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetByUSN retrieves a student by USN.
func (r *StudentRepository) GetByUSN(ctx context.Context, usn string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE usn = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, usn))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// ExistsByUSN checks whether a student row exists for the USN.
func (r *StudentRepository) ExistsByUSN(ctx context.Context, usn string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM students WHERE usn = $1)`, usn).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}

// Create inserts a new student row.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (
			usn, name, branch, email, contact_number, permanent_address,
			year_of_passing, year_of_admission,
			be_cgpa, tenth_percentage, twelfth_percentage,
			sem1_marks, sem2_marks, sem3_marks, sem4_marks,
			sem5_marks, sem6_marks, sem7_marks, sem8_marks,
			diploma_sem1, diploma_sem2, diploma_sem3,
			diploma_sem4, diploma_sem5, diploma_sem6,
			has_internship, internship_count, has_projects, project_count,
			has_work_experience, work_experience_months,
			placed, package_offered, company_placed, company_names, number_of_offers,
			password_hash
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
			$31, $32, $33, $34, $35, $36, $37)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.USN, student.Name, student.Branch, student.Email,
		student.ContactNumber, student.PermanentAddress,
		student.YearOfPassing, student.YearOfAdmission,
		student.BeCGPA, student.TenthPercentage, student.TwelfthPercentage,
		student.Sem1Marks, student.Sem2Marks, student.Sem3Marks, student.Sem4Marks,
		student.Sem5Marks, student.Sem6Marks, student.Sem7Marks, student.Sem8Marks,
		student.DiplomaSem1, student.DiplomaSem2, student.DiplomaSem3,
		student.DiplomaSem4, student.DiplomaSem5, student.DiplomaSem6,
		student.HasInternship, student.InternshipCount, student.HasProjects, student.ProjectCount,
		student.HasWorkExperience, student.WorkExperienceMonths,
		student.Placed, student.PackageOffered, student.CompanyPlaced, student.CompanyNames,
		student.NumberOfOffers, student.PasswordHash,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrUSNAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// UpdateProfile replaces the mutable profile columns of a student row.
// The column list is fixed; identity and file columns are never touched here.
func (r *StudentRepository) UpdateProfile(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students SET
			name = $2, branch = $3, email = $4, contact_number = $5, permanent_address = $6,
			year_of_passing = $7, year_of_admission = $8,
			be_cgpa = $9, tenth_percentage = $10, twelfth_percentage = $11,
			sem1_marks = $12, sem2_marks = $13, sem3_marks = $14, sem4_marks = $15,
			sem5_marks = $16, sem6_marks = $17, sem7_marks = $18, sem8_marks = $19,
			diploma_sem1 = $20, diploma_sem2 = $21, diploma_sem3 = $22,
			diploma_sem4 = $23, diploma_sem5 = $24, diploma_sem6 = $25,
			has_internship = $26, internship_count = $27, has_projects = $28, project_count = $29,
			has_work_experience = $30, work_experience_months = $31,
			placed = $32, package_offered = $33, company_placed = $34, company_names = $35,
			number_of_offers = $36,
			updated_at = NOW()
		WHERE usn = $1
	`

	tag, err := r.db.Exec(ctx, query,
		student.USN, student.Name, student.Branch, student.Email,
		student.ContactNumber, student.PermanentAddress,
		student.YearOfPassing, student.YearOfAdmission,
		student.BeCGPA, student.TenthPercentage, student.TwelfthPercentage,
		student.Sem1Marks, student.Sem2Marks, student.Sem3Marks, student.Sem4Marks,
		student.Sem5Marks, student.Sem6Marks, student.Sem7Marks, student.Sem8Marks,
		student.DiplomaSem1, student.DiplomaSem2, student.DiplomaSem3,
		student.DiplomaSem4, student.DiplomaSem5, student.DiplomaSem6,
		student.HasInternship, student.InternshipCount, student.HasProjects, student.ProjectCount,
		student.HasWorkExperience, student.WorkExperienceMonths,
		student.Placed, student.PackageOffered, student.CompanyPlaced, student.CompanyNames,
		student.NumberOfOffers,
	)
	if err != nil {
		return fmt.Errorf("error updating student profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// UpdateResumeFile stores or clears the resume filename.
func (r *StudentRepository) UpdateResumeFile(ctx context.Context, usn string, filename *string) error {
	return r.updateFileColumn(ctx, usn, "resume_file", filename)
}

// UpdateVideoResumeFile stores or clears the video resume filename.
func (r *StudentRepository) UpdateVideoResumeFile(ctx context.Context, usn string, filename *string) error {
	return r.updateFileColumn(ctx, usn, "video_resume_file", filename)
}

func (r *StudentRepository) updateFileColumn(ctx context.Context, usn, column string, filename *string) error {
	// column comes from the two callers above, never from input
	query := fmt.Sprintf(`UPDATE students SET %s = $2, updated_at = NOW() WHERE usn = $1`, column)

	tag, err := r.db.Exec(ctx, query, usn, filename)
	if err != nil {
		return fmt.Errorf("error updating student file: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// ListAll retrieves every student ordered by USN.
func (r *StudentRepository) ListAll(ctx context.Context) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY usn`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	return collectStudents(rows)
}

// ListByBranch retrieves students of one branch ordered by USN.
func (r *StudentRepository) ListByBranch(ctx context.Context, branch string) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE branch = $1 ORDER BY usn`

	rows, err := r.db.Query(ctx, query, branch)
	if err != nil {
		return nil, fmt.Errorf("error listing students by branch: %w", err)
	}
	defer rows.Close()

	return collectStudents(rows)
}

func collectStudents(rows pgx.Rows) ([]*models.Student, error) {
	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return students, nil
}
