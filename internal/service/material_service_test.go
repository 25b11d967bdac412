package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tutorhub/tutorhub-api/internal/models"
	appErrors "github.com/tutorhub/tutorhub-api/pkg/errors"
)

type fakeMaterialRepo struct {
	materials map[string]*models.LearningMaterial
}

func newFakeMaterialRepo() *fakeMaterialRepo {
	return &fakeMaterialRepo{materials: map[string]*models.LearningMaterial{}}
}

func (f *fakeMaterialRepo) List(ctx context.Context) ([]models.LearningMaterial, error) {
	var out []models.LearningMaterial
	for _, m := range f.materials {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMaterialRepo) FindByID(ctx context.Context, id string) (*models.LearningMaterial, error) {
	m, ok := f.materials[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	dup := *m
	return &dup, nil
}

func (f *fakeMaterialRepo) Create(ctx context.Context, material *models.LearningMaterial) error {
	if material.ID == "" {
		material.ID = "m-new"
	}
	f.materials[material.ID] = material
	return nil
}

func (f *fakeMaterialRepo) Delete(ctx context.Context, id string) error {
	delete(f.materials, id)
	return nil
}

func TestMaterialServiceCreateForcesUploader(t *testing.T) {
	repo := newFakeMaterialRepo()
	svc := NewMaterialService(repo, newFakeUserRepo(), nil, validator.New(), zap.NewNop())

	material, err := svc.Create(context.Background(), Actor{UserID: "adm-1", Role: models.RoleAdmin}, CreateMaterialRequest{
		Title:   "Limits Worksheet",
		Subject: "Calculus",
		FileURL: "https://files.example.com/limits.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, "adm-1", material.UploadedByID)
}

func TestMaterialServiceCreateValidation(t *testing.T) {
	svc := NewMaterialService(newFakeMaterialRepo(), newFakeUserRepo(), nil, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), Actor{UserID: "adm-1", Role: models.RoleAdmin}, CreateMaterialRequest{Title: "No URL"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
}

func TestMaterialServiceGetNotFound(t *testing.T) {
	svc := NewMaterialService(newFakeMaterialRepo(), newFakeUserRepo(), nil, validator.New(), zap.NewNop())

	_, err := svc.Get(context.Background(), "ghost")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Material not found", appErr.Message)
}

func TestMaterialServiceListAttachesUploader(t *testing.T) {
	repo := newFakeMaterialRepo()
	repo.materials["m1"] = &models.LearningMaterial{ID: "m1", Title: "Notes", Subject: "Math", FileURL: "u", UploadedByID: "adm-1"}
	users := newFakeUserRepo()
	users.add(&models.User{ID: "adm-1", Role: models.RoleAdmin})
	svc := NewMaterialService(repo, users, nil, validator.New(), zap.NewNop())

	details, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, details, 1)
	require.NotNil(t, details[0].UploadedBy)
	assert.Equal(t, "adm-1", details[0].UploadedBy.ID)
}

func TestMaterialServiceMutationsInvalidateCache(t *testing.T) {
	repo := newFakeMaterialRepo()
	cacheRepo := newMemoryCacheRepo()
	cacheSvc := NewCacheService(cacheRepo, nil, 0, zap.NewNop(), true)
	svc := NewMaterialService(repo, newFakeUserRepo(), cacheSvc, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), Actor{UserID: "adm-1", Role: models.RoleAdmin}, CreateMaterialRequest{
		Title:   "Limits Worksheet",
		Subject: "Calculus",
		FileURL: "https://files.example.com/limits.pdf",
	})
	require.NoError(t, err)
	assert.Contains(t, cacheRepo.deletes, "materials:list")
}
