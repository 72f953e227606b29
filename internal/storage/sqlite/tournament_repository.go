package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/federacion/fixture-scheduler/internal/core/models"
	"github.com/federacion/fixture-scheduler/internal/storage"
)

// TournamentRepository implements storage.TournamentRepository using
// SQLite, storing Participants as a JSON array column.
type TournamentRepository struct {
	db DBExecutor
}

// NewTournamentRepository creates a tournament repository over db.
func NewTournamentRepository(db DBExecutor) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) Create(ctx context.Context, t *models.Tournament) error {
	participantsJSON, err := json.Marshal(t.Participants)
	if err != nil {
		return fmt.Errorf("encoding participants: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO tournaments (id, name, kind, fixed_date_count, participants) VALUES (?, ?, ?, ?, ?)`,
		t.ID, t.Name, string(t.Kind), t.FixedDateCount, string(participantsJSON))
	if err != nil {
		return fmt.Errorf("creating tournament: %w", err)
	}
	return nil
}

func (r *TournamentRepository) scanRow(row *sql.Row) (*models.Tournament, error) {
	var t models.Tournament
	var kind string
	var participantsJSON string
	err := row.Scan(&t.ID, &t.Name, &kind, &t.FixedDateCount, &participantsJSON)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning tournament: %w", err)
	}
	t.Kind = models.TournamentKind(kind)
	if err := json.Unmarshal([]byte(participantsJSON), &t.Participants); err != nil {
		return nil, fmt.Errorf("decoding participants: %w", err)
	}
	return &t, nil
}

func (r *TournamentRepository) Get(ctx context.Context, id string) (*models.Tournament, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, kind, fixed_date_count, participants FROM tournaments WHERE id = ?`, id)
	return r.scanRow(row)
}

func (r *TournamentRepository) List(ctx context.Context) ([]models.Tournament, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, kind, fixed_date_count, participants FROM tournaments ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing tournaments: %w", err)
	}
	defer rows.Close()

	var out []models.Tournament
	for rows.Next() {
		var t models.Tournament
		var kind string
		var participantsJSON string
		if err := rows.Scan(&t.ID, &t.Name, &kind, &t.FixedDateCount, &participantsJSON); err != nil {
			return nil, fmt.Errorf("scanning tournament: %w", err)
		}
		t.Kind = models.TournamentKind(kind)
		if err := json.Unmarshal([]byte(participantsJSON), &t.Participants); err != nil {
			return nil, fmt.Errorf("decoding participants: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tournaments: %w", err)
	}
	return out, nil
}

func (r *TournamentRepository) Update(ctx context.Context, t *models.Tournament) error {
	participantsJSON, err := json.Marshal(t.Participants)
	if err != nil {
		return fmt.Errorf("encoding participants: %w", err)
	}
	result, err := r.db.ExecContext(ctx,
		`UPDATE tournaments SET name = ?, kind = ?, fixed_date_count = ?, participants = ? WHERE id = ?`,
		t.Name, string(t.Kind), t.FixedDateCount, string(participantsJSON), t.ID)
	if err != nil {
		return fmt.Errorf("updating tournament: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *TournamentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tournaments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting tournament: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrNotFound
	}
	return nil
}
