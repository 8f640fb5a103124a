// Package store defines the persistence contract for user documents.
//
// A User owns its Details, Colleges and each College's Questions. Every
// operation is scoped by the owning user's id so one user can never read or
// change another user's data. Mutations of the college and question lists
// return the affected sub-list so handlers can respond without a refetch.
//
// Two implementations exist: sqlstore (gorm over PostgreSQL or SQLite) and
// mongostore (one MongoDB document per user).
package store

import (
	"context"
	"errors"

	"github.com/andrewpaige1/essaydraft-api/models"
)

var (
	// ErrNotFound is returned when the user, college or question is absent.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a user with the same email already exists.
	ErrConflict = errors.New("already exists")
)

type Store interface {
	// CreateUser inserts u. A duplicate email yields ErrConflict.
	CreateUser(ctx context.Context, u *models.User) error
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	// UserByID loads the user without colleges.
	UserByID(ctx context.Context, userID string) (*models.User, error)

	UpdateDetail(ctx context.Context, userID string, field models.DetailField, value string) error
	ReplaceDetails(ctx context.Context, userID string, details models.Details) error

	Colleges(ctx context.Context, userID string) ([]models.College, error)
	College(ctx context.Context, userID, collegeID string) (*models.College, error)
	AddCollege(ctx context.Context, userID string, c models.College) ([]models.College, error)
	DeleteCollege(ctx context.Context, userID, collegeID string) ([]models.College, error)

	AddQuestion(ctx context.Context, userID, collegeID string, q models.Question) ([]models.Question, error)
	UpdateAnswer(ctx context.Context, userID, collegeID, questionID, answer string) ([]models.Question, error)

	Close(ctx context.Context) error
}
