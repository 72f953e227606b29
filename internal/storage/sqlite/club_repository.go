package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/federacion/fixture-scheduler/internal/core/models"
	"github.com/federacion/fixture-scheduler/internal/storage"
)

// ClubRepository implements storage.ClubRepository using SQLite, storing
// the club's VenueDescriptor as a JSON column.
type ClubRepository struct {
	db DBExecutor
}

// NewClubRepository creates a club repository over db.
func NewClubRepository(db DBExecutor) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) Create(ctx context.Context, club *models.Club) error {
	venueJSON, err := json.Marshal(club.Venue)
	if err != nil {
		return fmt.Errorf("encoding venue: %w", err)
	}
	now := time.Now()
	club.CreatedAt, club.UpdatedAt = now, now

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO clubs (name, locality, venue, owns_venue, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		club.Name, club.Locality, string(venueJSON), club.OwnsVenue, club.CreatedAt, club.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating club: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	club.ID = int(id)
	return nil
}

func (r *ClubRepository) scan(row *sql.Row) (*models.Club, error) {
	var club models.Club
	var venueJSON string
	err := row.Scan(&club.ID, &club.Name, &club.Locality, &venueJSON, &club.OwnsVenue, &club.CreatedAt, &club.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning club: %w", err)
	}
	if err := json.Unmarshal([]byte(venueJSON), &club.Venue); err != nil {
		return nil, fmt.Errorf("decoding venue: %w", err)
	}
	return &club, nil
}

func (r *ClubRepository) Get(ctx context.Context, id int) (*models.Club, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, locality, venue, owns_venue, created_at, updated_at FROM clubs WHERE id = ?`, id)
	return r.scan(row)
}

func (r *ClubRepository) GetByName(ctx context.Context, name string) (*models.Club, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, locality, venue, owns_venue, created_at, updated_at FROM clubs WHERE name = ?`, name)
	return r.scan(row)
}

func (r *ClubRepository) List(ctx context.Context) ([]models.Club, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, locality, venue, owns_venue, created_at, updated_at FROM clubs ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing clubs: %w", err)
	}
	defer rows.Close()

	var clubs []models.Club
	for rows.Next() {
		var club models.Club
		var venueJSON string
		if err := rows.Scan(&club.ID, &club.Name, &club.Locality, &venueJSON, &club.OwnsVenue, &club.CreatedAt, &club.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning club: %w", err)
		}
		if err := json.Unmarshal([]byte(venueJSON), &club.Venue); err != nil {
			return nil, fmt.Errorf("decoding venue: %w", err)
		}
		clubs = append(clubs, club)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating clubs: %w", err)
	}
	return clubs, nil
}

func (r *ClubRepository) Update(ctx context.Context, club *models.Club) error {
	venueJSON, err := json.Marshal(club.Venue)
	if err != nil {
		return fmt.Errorf("encoding venue: %w", err)
	}
	club.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx,
		`UPDATE clubs SET name = ?, locality = ?, venue = ?, owns_venue = ?, updated_at = ? WHERE id = ?`,
		club.Name, club.Locality, string(venueJSON), club.OwnsVenue, club.UpdatedAt, club.ID)
	if err != nil {
		return fmt.Errorf("updating club: %w", err)
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

func (r *ClubRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM clubs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting club: %w", err)
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
