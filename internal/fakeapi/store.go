package fakeapi

import (
	"errors"
	"sort"
	"sync"

	"github.com/dmitrijs2005/jobboard/internal/client/models"
	"github.com/google/uuid"
)

var ErrJobNotFound = errors.New("job not found")

// JobStore is an in-memory job table. List order is by title, then id.
type JobStore struct {
	mu   sync.RWMutex
	jobs map[string]models.JobPosting
}

func NewJobStore(seed ...models.JobPosting) *JobStore {
	s := &JobStore{jobs: make(map[string]models.JobPosting, len(seed))}
	for _, j := range seed {
		if j.ID == "" {
			j.ID = uuid.NewString()
		}
		s.jobs[j.ID] = j
	}
	return s
}

func (s *JobStore) List() []models.JobPosting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.JobPosting, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, j)
	}
	sort.Slice(out, func(i, k int) bool {
		if out[i].Title != out[k].Title {
			return out[i].Title < out[k].Title
		}
		return out[i].ID < out[k].ID
	})
	return out
}

func (s *JobStore) Get(id string) (models.JobPosting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jobs[id]
	if !ok {
		return models.JobPosting{}, ErrJobNotFound
	}
	return j, nil
}

// Create stores u under a fresh uuid.
func (s *JobStore) Create(u models.JobUpdate) models.JobPosting {
	j := fromUpdate(uuid.NewString(), u)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[j.ID] = j
	return j
}

func (s *JobStore) Update(id string, u models.JobUpdate) (models.JobPosting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[id]; !ok {
		return models.JobPosting{}, ErrJobNotFound
	}
	j := fromUpdate(id, u)
	s.jobs[id] = j
	return j, nil
}

func (s *JobStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[id]; !ok {
		return ErrJobNotFound
	}
	delete(s.jobs, id)
	return nil
}

func fromUpdate(id string, u models.JobUpdate) models.JobPosting {
	return models.JobPosting{
		ID:                  id,
		Title:               u.Title,
		Type:                u.Type,
		Description:         u.Description,
		Location:            u.Location,
		Salary:              u.Salary,
		ExperienceLevel:     u.ExperienceLevel,
		Status:              u.Status,
		ApplicationDeadline: u.ApplicationDeadline,
		Company:             u.Company,
	}
}
