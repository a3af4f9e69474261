package memory

import (
	"context"
	"sort"
	"time"

	"github.com/rakshithv/placemate/internal/app/models"
	"github.com/rakshithv/placemate/internal/pkg/apperrors"
)

// StudentRepository is the map-backed student store.
type StudentRepository struct {
	d *data
}

func cloneStudent(s *models.Student) *models.Student {
	c := *s
	return &c
}

// GetByUSN retrieves a student by USN.
func (r *StudentRepository) GetByUSN(ctx context.Context, usn string) (*models.Student, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()

	s, ok := r.d.students[usn]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return cloneStudent(s), nil
}

// ExistsByUSN checks whether a student exists for the USN.
func (r *StudentRepository) ExistsByUSN(ctx context.Context, usn string) (bool, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()

	_, ok := r.d.students[usn]
	return ok, nil
}

// Create stores a new student.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()

	if _, ok := r.d.students[student.USN]; ok {
		return apperrors.ErrUSNAlreadyExists
	}

	r.d.nextStudentID++
	student.ID = r.d.nextStudentID
	now := time.Now()
	student.CreatedAt = now
	student.UpdatedAt = now

	r.d.students[student.USN] = cloneStudent(student)
	return nil
}

// UpdateProfile replaces the mutable profile fields of a stored student.
func (r *StudentRepository) UpdateProfile(ctx context.Context, student *models.Student) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()

	existing, ok := r.d.students[student.USN]
	if !ok {
		return apperrors.ErrStudentNotFound
	}

	updated := cloneStudent(student)
	updated.ID = existing.ID
	updated.PasswordHash = existing.PasswordHash
	updated.ResumeFile = existing.ResumeFile
	updated.VideoResumeFile = existing.VideoResumeFile
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()

	r.d.students[student.USN] = updated
	return nil
}

// UpdateResumeFile stores or clears the resume filename.
func (r *StudentRepository) UpdateResumeFile(ctx context.Context, usn string, filename *string) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()

	s, ok := r.d.students[usn]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	s.ResumeFile = filename
	s.UpdatedAt = time.Now()
	return nil
}

// UpdateVideoResumeFile stores or clears the video resume filename.
func (r *StudentRepository) UpdateVideoResumeFile(ctx context.Context, usn string, filename *string) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()

	s, ok := r.d.students[usn]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	s.VideoResumeFile = filename
	s.UpdatedAt = time.Now()
	return nil
}

// ListAll returns every student ordered by USN.
func (r *StudentRepository) ListAll(ctx context.Context) ([]*models.Student, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()

	students := make([]*models.Student, 0, len(r.d.students))
	for _, s := range r.d.students {
		students = append(students, cloneStudent(s))
	}
	sort.Slice(students, func(i, j int) bool { return students[i].USN < students[j].USN })
	return students, nil
}

// ListByBranch returns students of one branch ordered by USN.
func (r *StudentRepository) ListByBranch(ctx context.Context, branch string) ([]*models.Student, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()

	students := []*models.Student{}
	for _, s := range r.d.students {
		if s.Branch == branch {
			students = append(students, cloneStudent(s))
		}
	}
	sort.Slice(students, func(i, j int) bool { return students[i].USN < students[j].USN })
	return students, nil
}
