package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resume-api/internal/domain"

	"github.com/google/uuid"
)

// ResumeStore is the persistence seam for the single active resume. Load
// returns domain.ErrNoActiveResume when the store is empty; Save rewrites
// the whole document.
type ResumeStore interface {
	Load(ctx context.Context) (*domain.Resume, error)
	Save(ctx context.Context, r *domain.Resume) error
}

// ResumeService applies partial updates to the resume document. The store
// holds one opaque JSON document, so every operation is read-whole,
// transform in memory, write-whole. A failed transform never reaches Save,
// so callers observe either the full change or no change at all.
type ResumeService struct {
	store ResumeStore
	now   func() time.Time
	newID func() string
}

func NewResumeService(store ResumeStore) *ResumeService {
	return &ResumeService{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Get returns the active resume. When the store is empty it seeds the
// built-in default dataset and persists it before returning.
func (s *ResumeService) Get(ctx context.Context) (*domain.Resume, error) {
	r, err := s.store.Load(ctx)
	if errors.Is(err, domain.ErrNoActiveResume) {
		r = s.defaultResume()
		if err := s.store.Save(ctx, r); err != nil {
			return nil, fmt.Errorf("seed default resume: %w", err)
		}
		return r, nil
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// update runs one read-modify-write cycle. The record's updated_at is
// bumped on every successful transform.
func (s *ResumeService) update(ctx context.Context, apply func(r *domain.Resume) error) error {
	r, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if err := apply(r); err != nil {
		return err
	}
	r.UpdatedAt = s.now().UTC()
	return s.store.Save(ctx, r)
}

// MergePersonalInfo overwrites only the fields present in the patch.
// Absent fields keep their stored values.
func (s *ResumeService) MergePersonalInfo(ctx context.Context, patch domain.PersonalInfoPatch) error {
	return s.update(ctx, func(r *domain.Resume) error {
		if patch.Name != nil {
			r.PersonalInfo.Name = *patch.Name
		}
		if patch.Email != nil {
			r.PersonalInfo.Email = *patch.Email
		}
		if patch.Phone != nil {
			r.PersonalInfo.Phone = *patch.Phone
		}
		if patch.LinkedInURL != nil {
			r.PersonalInfo.LinkedInURL = *patch.LinkedInURL
		}
		if patch.Title != nil {
			r.PersonalInfo.Title = *patch.Title
		}
		if patch.Location != nil {
			r.PersonalInfo.Location = *patch.Location
		}
		return nil
	})
}

// ReplaceHighlights swaps the whole highlights list. Emptiness checks live
// at the HTTP layer.
func (s *ResumeService) ReplaceHighlights(ctx context.Context, highlights []string) error {
	return s.update(ctx, func(r *domain.Resume) error {
		r.Highlights = highlights
		return nil
	})
}

// ReplaceSkills swaps the whole skills list.
func (s *ResumeService) ReplaceSkills(ctx context.Context, skills []string) error {
	return s.update(ctx, func(r *domain.Resume) error {
		r.Skills = skills
		return nil
	})
}

// AddExperience appends a new entry and returns its assigned id. Entries
// are append-only; sort_order never affects storage position.
func (s *ResumeService) AddExperience(ctx context.Context, in domain.ExperienceInput) (string, error) {
	now := s.now().UTC()
	entry := domain.Experience{
		ID:           s.newID(),
		Position:     in.Position,
		Company:      in.Company,
		Location:     in.Location,
		Duration:     in.Duration,
		Description:  in.Description,
		Current:      in.Current,
		Achievements: in.Achievements,
		SortOrder:    in.SortOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err := s.update(ctx, func(r *domain.Resume) error {
		r.Experience = append(r.Experience, entry)
		return nil
	})
	if err != nil {
		return "", err
	}
	return entry.ID, nil
}

// UpdateExperience merges the patch into the entry with the given id.
func (s *ResumeService) UpdateExperience(ctx context.Context, id string, patch domain.ExperiencePatch) error {
	return s.update(ctx, func(r *domain.Resume) error {
		for i := range r.Experience {
			if r.Experience[i].ID != id {
				continue
			}
			e := &r.Experience[i]
			if patch.Position != nil {
				e.Position = *patch.Position
			}
			if patch.Company != nil {
				e.Company = *patch.Company
			}
			if patch.Location != nil {
				e.Location = *patch.Location
			}
			if patch.Duration != nil {
				e.Duration = *patch.Duration
			}
			if patch.Description != nil {
				e.Description = *patch.Description
			}
			if patch.Current != nil {
				e.Current = *patch.Current
			}
			if patch.Achievements != nil {
				e.Achievements = *patch.Achievements
			}
			if patch.SortOrder != nil {
				e.SortOrder = *patch.SortOrder
			}
			e.UpdatedAt = s.now().UTC()
			return nil
		}
		return fmt.Errorf("experience %s: %w", id, domain.ErrNotFound)
	})
}

// DeleteExperience removes the entry with the given id.
func (s *ResumeService) DeleteExperience(ctx context.Context, id string) error {
	return s.update(ctx, func(r *domain.Resume) error {
		for i := range r.Experience {
			if r.Experience[i].ID == id {
				r.Experience = append(r.Experience[:i], r.Experience[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("experience %s: %w", id, domain.ErrNotFound)
	})
}

// AddEducation appends a new entry and returns its assigned id.
func (s *ResumeService) AddEducation(ctx context.Context, in domain.EducationInput) (string, error) {
	now := s.now().UTC()
	entry := domain.Education{
		ID:          s.newID(),
		Degree:      in.Degree,
		Institution: in.Institution,
		Location:    in.Location,
		Duration:    in.Duration,
		SortOrder:   in.SortOrder,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := s.update(ctx, func(r *domain.Resume) error {
		r.Education = append(r.Education, entry)
		return nil
	})
	if err != nil {
		return "", err
	}
	return entry.ID, nil
}

// UpdateEducation merges the patch into the entry with the given id.
func (s *ResumeService) UpdateEducation(ctx context.Context, id string, patch domain.EducationPatch) error {
	return s.update(ctx, func(r *domain.Resume) error {
		for i := range r.Education {
			if r.Education[i].ID != id {
				continue
			}
			e := &r.Education[i]
			if patch.Degree != nil {
				e.Degree = *patch.Degree
			}
			if patch.Institution != nil {
				e.Institution = *patch.Institution
			}
			if patch.Location != nil {
				e.Location = *patch.Location
			}
			if patch.Duration != nil {
				e.Duration = *patch.Duration
			}
			if patch.SortOrder != nil {
				e.SortOrder = *patch.SortOrder
			}
			e.UpdatedAt = s.now().UTC()
			return nil
		}
		return fmt.Errorf("education %s: %w", id, domain.ErrNotFound)
	})
}

// DeleteEducation removes the entry with the given id.
func (s *ResumeService) DeleteEducation(ctx context.Context, id string) error {
	return s.update(ctx, func(r *domain.Resume) error {
		for i := range r.Education {
			if r.Education[i].ID == id {
				r.Education = append(r.Education[:i], r.Education[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("education %s: %w", id, domain.ErrNotFound)
	})
}
