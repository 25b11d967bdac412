package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tutorhub/tutorhub-api/internal/models"
	appErrors "github.com/tutorhub/tutorhub-api/pkg/errors"
)

type fakeTutorRepo struct {
	tutors    map[string]*models.Tutor
	lastPatch models.TutorPatch
	deleted   []string
}

func newFakeTutorRepo() *fakeTutorRepo {
	return &fakeTutorRepo{tutors: map[string]*models.Tutor{}}
}

func (f *fakeTutorRepo) List(ctx context.Context) ([]models.Tutor, error) {
	var out []models.Tutor
	for _, t := range f.tutors {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTutorRepo) FindByID(ctx context.Context, id string) (*models.Tutor, error) {
	t, ok := f.tutors[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	dup := *t
	return &dup, nil
}

func (f *fakeTutorRepo) Create(ctx context.Context, tutor *models.Tutor) error {
	if tutor.ID == "" {
		tutor.ID = "t-new"
	}
	f.tutors[tutor.ID] = tutor
	return nil
}

func (f *fakeTutorRepo) Update(ctx context.Context, id string, patch models.TutorPatch) error {
	f.lastPatch = patch
	t := f.tutors[id]
	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.Specialty != nil {
		t.Specialty = *patch.Specialty
	}
	return nil
}

func (f *fakeTutorRepo) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	delete(f.tutors, id)
	return nil
}

// memoryCacheRepo backs CacheService in tests with a plain map.
type memoryCacheRepo struct {
	entries map[string][]byte
	sets    int
	deletes []string
}

func newMemoryCacheRepo() *memoryCacheRepo {
	return &memoryCacheRepo{entries: map[string][]byte{}}
}

func (m *memoryCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	m.sets++
	return nil
}

func (m *memoryCacheRepo) Delete(ctx context.Context, key string) error {
	m.deletes = append(m.deletes, key)
	delete(m.entries, key)
	return nil
}

func newTestTutorService(repo *fakeTutorRepo, cacheRepo *memoryCacheRepo) *TutorService {
	var cacheSvc *CacheService
	if cacheRepo != nil {
		cacheSvc = NewCacheService(cacheRepo, nil, time.Minute, zap.NewNop(), true)
	}
	return NewTutorService(repo, cacheSvc, validator.New(), zap.NewNop())
}

func TestTutorServiceGetNotFound(t *testing.T) {
	svc := newTestTutorService(newFakeTutorRepo(), nil)

	_, err := svc.Get(context.Background(), "ghost")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Tutor not found", appErr.Message)
}

func TestTutorServiceCreateValidation(t *testing.T) {
	svc := newTestTutorService(newFakeTutorRepo(), nil)

	_, err := svc.Create(context.Background(), CreateTutorRequest{Name: "No Email"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
}

func TestTutorServiceCreateAndGet(t *testing.T) {
	repo := newFakeTutorRepo()
	svc := newTestTutorService(repo, nil)

	tutor, err := svc.Create(context.Background(), CreateTutorRequest{
		Name:         "Jane Tutor",
		Email:        "jane@example.com",
		Specialty:    "Algebra",
		Availability: "weekdays",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tutor.ID)

	got, err := svc.Get(context.Background(), tutor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Tutor", got.Name)
}

func TestTutorServiceUpdateNotFound(t *testing.T) {
	svc := newTestTutorService(newFakeTutorRepo(), nil)

	name := "New Name"
	_, err := svc.Update(context.Background(), "ghost", UpdateTutorRequest{Name: &name})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Tutor not found", appErr.Message)
}

func TestTutorServiceUpdatePartialPatch(t *testing.T) {
	repo := newFakeTutorRepo()
	repo.tutors["t1"] = &models.Tutor{ID: "t1", Name: "Old", Email: "t@example.com", Specialty: "Math", Availability: "weekends"}
	svc := newTestTutorService(repo, nil)

	name := "New"
	updated, err := svc.Update(context.Background(), "t1", UpdateTutorRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, "Math", updated.Specialty)
	assert.Nil(t, repo.lastPatch.Specialty)
}

func TestTutorServiceListUsesCache(t *testing.T) {
	repo := newFakeTutorRepo()
	repo.tutors["t1"] = &models.Tutor{ID: "t1", Name: "Cached", Email: "t@example.com", Specialty: "Math", Availability: "weekends"}
	cacheRepo := newMemoryCacheRepo()
	svc := newTestTutorService(repo, cacheRepo)

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, cacheRepo.sets)

	delete(repo.tutors, "t1")

	second, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, second, 1)
}

func TestTutorServiceMutationsInvalidateCache(t *testing.T) {
	repo := newFakeTutorRepo()
	cacheRepo := newMemoryCacheRepo()
	svc := newTestTutorService(repo, cacheRepo)

	_, err := svc.Create(context.Background(), CreateTutorRequest{
		Name:         "Jane Tutor",
		Email:        "jane@example.com",
		Specialty:    "Algebra",
		Availability: "weekdays",
	})
	require.NoError(t, err)
	assert.Contains(t, cacheRepo.deletes, "tutors:list")

	require.NoError(t, svc.Delete(context.Background(), "t-new"))
	assert.Len(t, cacheRepo.deletes, 2)
}
