package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"resume-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory ResumeStore that round-trips through JSON the
// way the real JSONB-backed repo does.
type memStore struct {
	r       *domain.Resume
	saveErr error
	saves   int
}

func (m *memStore) Load(ctx context.Context) (*domain.Resume, error) {
	if m.r == nil {
		return nil, domain.ErrNoActiveResume
	}
	return cloneResume(m.r), nil
}

func (m *memStore) Save(ctx context.Context, r *domain.Resume) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.r = cloneResume(r)
	return nil
}

func cloneResume(r *domain.Resume) *domain.Resume {
	data, err := json.Marshal(r)
	if err != nil {
		panic(err)
	}
	var out domain.Resume
	if err := json.Unmarshal(data, &out); err != nil {
		panic(err)
	}
	return &out
}

func strptr(s string) *string { return &s }

func newTestService(store *memStore) *ResumeService {
	s := NewResumeService(store)
	s.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func seedResume(store *memStore) *domain.Resume {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	r := &domain.Resume{
		ID: "resume-1",
		PersonalInfo: domain.PersonalInfo{
			Name:     "Ada Lovelace",
			Email:    "ada@example.com",
			Phone:    "555.123.4567",
			Title:    "Analyst",
			Location: "London",
		},
		Highlights: []string{"first highlight"},
		Experience: []domain.Experience{
			{ID: "exp-1", Position: "Engineer", Company: "Acme", Location: "Austin, TX", Duration: "1/20 - 1/22", Description: "Built things.", SortOrder: 0, CreatedAt: base, UpdatedAt: base},
			{ID: "exp-2", Position: "Manager", Company: "Globex", Location: "Houston, TX", Duration: "1/22 - present", Description: "Managed things.", Current: true, SortOrder: 1, CreatedAt: base, UpdatedAt: base},
		},
		Education: []domain.Education{
			{ID: "edu-1", Degree: "Mathematics", Institution: "Cambridge", Location: "Cambridge, UK", Duration: "1835 - 1839", SortOrder: 0, CreatedAt: base, UpdatedAt: base},
		},
		Skills:    []string{"analysis"},
		CreatedAt: base,
		UpdatedAt: base,
	}
	store.r = cloneResume(r)
	return r
}

func TestMergePersonalInfo_PartialPatchPreservesOtherFields(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store)
	before := seedResume(store)

	err := svc.MergePersonalInfo(context.Background(), domain.PersonalInfoPatch{
		Location: strptr("Paris"),
	})
	require.NoError(t, err)

	got := store.r
	assert.Equal(t, "Paris", got.PersonalInfo.Location)
	assert.Equal(t, before.PersonalInfo.Name, got.PersonalInfo.Name)
	assert.Equal(t, before.PersonalInfo.Email, got.PersonalInfo.Email)
	assert.Equal(t, before.PersonalInfo.Phone, got.PersonalInfo.Phone)
	assert.True(t, got.UpdatedAt.After(before.UpdatedAt), "record updated_at must be bumped")
}

func TestMergePersonalInfo_NoActiveResume(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store)

	err := svc.MergePersonalInfo(context.Background(), domain.PersonalInfoPatch{Name: strptr("x")})
	require.ErrorIs(t, err, domain.ErrNoActiveResume)
	assert.Zero(t, store.saves)
}

func TestReplaceHighlights(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store)
	seedResume(store)

	require.NoError(t, svc.ReplaceHighlights(context.Background(), []string{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, store.r.Highlights)
}

func TestReplaceSkills(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store)
	seedResume(store)

	require.NoError(t, svc.ReplaceSkills(context.Background(), []string{"Go", "SQL"}))
	assert.Equal(t, []string{"Go", "SQL"}, store.r.Skills)
}

func TestAddExperience_AssignsFreshIDAndAppends(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store)
	before := seedResume(store)

	id, err := svc.AddExperience(context.Background(), domain.ExperienceInput{
		Position:    "Director",
		Company:     "Initech",
		Location:    "Dallas, TX",
		Duration:    "2/23 - present",
		Description: "Directed things.",
		Current:     true,
		SortOrder:   5,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got := store.r.Experience
	require.Len(t, got, len(before.Experience)+1)
	for _, e := range before.Experience {
		assert.NotEqual(t, e.ID, id, "new id must not collide with existing ids")
	}
	last := got[len(got)-1]
	assert.Equal(t, id, last.ID)
	assert.Equal(t, "Director", last.Position)
	assert.False(t, last.CreatedAt.IsZero())
}

func TestUpdateExperience_MergesOnlyPatchedFields(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store)
	before := seedResume(store)

	err := svc.UpdateExperience(context.Background(), "exp-1", domain.ExperiencePatch{
		Position: strptr("Principal Engineer"),
	})
	require.NoError(t, err)

	got := store.r.Experience[0]
	assert.Equal(t, "Principal Engineer", got.Position)
	assert.Equal(t, before.Experience[0].Company, got.Company)
	assert.Equal(t, before.Experience[0].Description, got.Description)
	assert.True(t, got.UpdatedAt.After(before.Experience[0].UpdatedAt))
}

func TestUpdateExperience_UnknownIDIsNoOp(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store)
	before := seedResume(store)
	savesBefore := store.saves

	err := svc.UpdateExperience(context.Background(), "missing", domain.ExperiencePatch{
		Position: strptr("x"),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, savesBefore, store.saves, "nothing must be written")
	assert.Equal(t, before.Experience, store.r.Experience)
}

func TestDeleteExperience(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store)
	before := seedResume(store)

	require.NoError(t, svc.DeleteExperience(context.Background(), "exp-1"))

	got := store.r.Experience
	require.Len(t, got, len(before.Experience)-1)
	assert.Equal(t, "exp-2", got[0].ID)
}

func TestDeleteExperience_UnknownIDIsNoOp(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store)
	before := seedResume(store)

	err := svc.DeleteExperience(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, before.Experience, store.r.Experience)
}

func TestExperienceRoundTrip(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store)
	before := seedResume(store)
	ctx := context.Background()

	id, err := svc.AddExperience(ctx, domain.ExperienceInput{
		Position: "Temp", Company: "Tmp Inc.", Location: "Nowhere", Duration: "1/25", Description: "temp",
	})
	require.NoError(t, err)
	require.NoError(t, svc.UpdateExperience(ctx, id, domain.ExperiencePatch{Position: strptr("Temp 2")}))
	require.NoError(t, svc.DeleteExperience(ctx, id))

	assert.Equal(t, before.Experience, store.r.Experience)
}

func TestEducationLifecycle(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store)
	seedResume(store)
	ctx := context.Background()

	id, err := svc.AddEducation(ctx, domain.EducationInput{
		Degree: "Physics", Institution: "MIT", Duration: "2001 - 2005", SortOrder: 9,
	})
	require.NoError(t, err)
	require.Len(t, store.r.Education, 2)

	require.NoError(t, svc.UpdateEducation(ctx, id, domain.EducationPatch{Institution: strptr("Caltech")}))
	assert.Equal(t, "Caltech", store.r.Education[1].Institution)
	assert.Equal(t, "Physics", store.r.Education[1].Degree)

	require.ErrorIs(t, svc.UpdateEducation(ctx, "missing", domain.EducationPatch{Degree: strptr("x")}), domain.ErrNotFound)

	require.NoError(t, svc.DeleteEducation(ctx, id))
	require.Len(t, store.r.Education, 1)
	require.ErrorIs(t, svc.DeleteEducation(ctx, id), domain.ErrNotFound)
}

func TestGet_SeedsDefaultWhenEmpty(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store)

	r, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, r)

	assert.Equal(t, "Kyle J. Lynch", r.PersonalInfo.Name)
	assert.NotEmpty(t, r.Highlights)
	assert.NotEmpty(t, r.Experience)
	assert.NotEmpty(t, r.Education)
	assert.NotEmpty(t, r.Skills)
	assert.Equal(t, 1, store.saves, "default must be persisted")

	// entry ids must be unique within their lists
	seen := map[string]bool{}
	for _, e := range r.Experience {
		require.False(t, seen[e.ID], "duplicate experience id %s", e.ID)
		seen[e.ID] = true
	}

	again, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, r.ID, again.ID)
	assert.Equal(t, 1, store.saves, "seeding must happen once")
}

func TestUpdate_SaveFailurePropagates(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store)
	seedResume(store)
	store.saveErr = errors.New("connection reset")

	err := svc.ReplaceSkills(context.Background(), []string{"Go"})
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrNotFound)
}
