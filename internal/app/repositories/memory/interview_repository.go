package memory

import (
	"context"
	"sort"
	"time"

	"github.com/rakshithv/placemate/internal/app/models"
	"github.com/rakshithv/placemate/internal/pkg/apperrors"
)

// InterviewRepository is the map-backed interview store.
type InterviewRepository struct {
	d *data
}

func cloneInterview(iv *models.Interview) *models.Interview {
	c := *iv
	return &c
}

// GetByID retrieves an interview by ID.
func (r *InterviewRepository) GetByID(ctx context.Context, id int64) (*models.Interview, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()

	iv, ok := r.d.interviews[id]
	if !ok {
		return nil, apperrors.ErrInterviewNotFound
	}
	return cloneInterview(iv), nil
}

// ListByStudent returns a student's interviews ordered by date ascending.
func (r *InterviewRepository) ListByStudent(ctx context.Context, usn string) ([]*models.Interview, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()

	interviews := []*models.Interview{}
	for _, iv := range r.d.interviews {
		if iv.StudentUSN == usn {
			interviews = append(interviews, cloneInterview(iv))
		}
	}
	sort.Slice(interviews, func(i, j int) bool {
		return interviews[i].InterviewDate.Before(interviews[j].InterviewDate)
	})
	return interviews, nil
}

// Create stores a new interview.
func (r *InterviewRepository) Create(ctx context.Context, interview *models.Interview) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()

	r.d.nextInterviewID++
	interview.ID = r.d.nextInterviewID
	interview.CreatedAt = time.Now()

	r.d.interviews[interview.ID] = cloneInterview(interview)
	return nil
}

// Update replaces the mutable fields of a stored interview.
func (r *InterviewRepository) Update(ctx context.Context, interview *models.Interview) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()

	existing, ok := r.d.interviews[interview.ID]
	if !ok {
		return apperrors.ErrInterviewNotFound
	}

	updated := cloneInterview(interview)
	updated.StudentUSN = existing.StudentUSN
	updated.CreatedAt = existing.CreatedAt
	r.d.interviews[interview.ID] = updated
	return nil
}
