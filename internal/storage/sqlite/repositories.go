package sqlite

import (
	"context"
	"database/sql"

	"github.com/federacion/fixture-scheduler/internal/storage"
)

// Repositories implements storage.Repositories using SQLite.
type Repositories struct {
	db          *sql.DB
	tx          *sql.Tx
	clubs       *ClubRepository
	tournaments *TournamentRepository
	rules       *RuleRepository
}

// NewRepositories wires every repository against db.
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		db:          db,
		clubs:       NewClubRepository(db),
		tournaments: NewTournamentRepository(db),
		rules:       NewRuleRepository(db),
	}
}

func (r *Repositories) Clubs() storage.ClubRepository             { return r.clubs }
func (r *Repositories) Tournaments() storage.TournamentRepository { return r.tournaments }
func (r *Repositories) Rules() storage.RuleRepository             { return r.rules }

// BeginTx starts a transaction and returns a Repositories bound to it.
func (r *Repositories) BeginTx(ctx context.Context) (storage.Repositories, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &Repositories{
		db:          r.db,
		tx:          tx,
		clubs:       NewClubRepository(tx),
		tournaments: NewTournamentRepository(tx),
		rules:       NewRuleRepository(tx),
	}, nil
}

// Commit commits the bound transaction, if any.
func (r *Repositories) Commit() error {
	if r.tx == nil {
		return nil
	}
	return r.tx.Commit()
}

// Rollback rolls back the bound transaction, if any.
func (r *Repositories) Rollback() error {
	if r.tx == nil {
		return nil
	}
	return r.tx.Rollback()
}
