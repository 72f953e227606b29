package storage

import (
	"context"
	"errors"

	"github.com/federacion/fixture-scheduler/internal/core/models"
)

// ErrNotFound is returned when a lookup by id finds nothing.
var ErrNotFound = errors.New("not found")

// ErrConflict names a write that would violate a uniqueness constraint
// (duplicate club name, duplicate tournament id). The SQLite
// repositories do not return it; they report such failures as wrapped
// driver errors.
var ErrConflict = errors.New("conflict")

// ClubRepository persists Club records.
type ClubRepository interface {
	Create(ctx context.Context, club *models.Club) error
	Get(ctx context.Context, id int) (*models.Club, error)
	GetByName(ctx context.Context, name string) (*models.Club, error)
	List(ctx context.Context) ([]models.Club, error)
	Update(ctx context.Context, club *models.Club) error
	Delete(ctx context.Context, id int) error
}

// TournamentRepository persists Tournament records.
type TournamentRepository interface {
	Create(ctx context.Context, t *models.Tournament) error
	Get(ctx context.Context, id string) (*models.Tournament, error)
	List(ctx context.Context) ([]models.Tournament, error)
	Update(ctx context.Context, t *models.Tournament) error
	Delete(ctx context.Context, id string) error
}

// RuleRepository persists Rule records.
type RuleRepository interface {
	Create(ctx context.Context, r *models.Rule) error
	Get(ctx context.Context, id int) (*models.Rule, error)
	List(ctx context.Context) ([]models.Rule, error)
	Delete(ctx context.Context, id int) error
}

// Repositories aggregates every repository the service layer needs plus
// transaction control.
type Repositories interface {
	Clubs() ClubRepository
	Tournaments() TournamentRepository
	Rules() RuleRepository

	BeginTx(ctx context.Context) (Repositories, error)
	Commit() error
	Rollback() error
}
