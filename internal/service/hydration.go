package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tutorhub/tutorhub-api/internal/models"
)

// Relation lookups are best-effort by contract: a deleted counterpart
// yields a nil relation, never an error. Only infrastructure failures
// propagate.

type userFinder interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

type tutorFinder interface {
	FindByID(ctx context.Context, id string) (*models.Tutor, error)
}

func lookupUser(ctx context.Context, users userFinder, id string) (*models.User, error) {
	user, err := users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func lookupTutor(ctx context.Context, tutors tutorFinder, id string) (*models.Tutor, error) {
	tutor, err := tutors.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return tutor, nil
}
