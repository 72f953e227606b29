package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/federacion/fixture-scheduler/internal/core/models"
	"github.com/federacion/fixture-scheduler/internal/storage"
)

// RuleRepository implements storage.RuleRepository using SQLite.
type RuleRepository struct {
	db DBExecutor
}

// NewRuleRepository creates a rule repository over db.
func NewRuleRepository(db DBExecutor) *RuleRepository {
	return &RuleRepository{db: db}
}

func (r *RuleRepository) Create(ctx context.Context, rule *models.Rule) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO rules (source_club, source_tournament, target_club, target_tournament, kind, hard, weight)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rule.SourceClub, rule.SourceTournament, rule.TargetClub, rule.TargetTournament,
		string(rule.Kind), rule.Hard, rule.Weight)
	if err != nil {
		return fmt.Errorf("creating rule: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	rule.ID = int(id)
	return nil
}

func (r *RuleRepository) Get(ctx context.Context, id int) (*models.Rule, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, source_club, source_tournament, target_club, target_tournament, kind, hard, weight
		 FROM rules WHERE id = ?`, id)
	return scanRule(row)
}

func scanRule(row *sql.Row) (*models.Rule, error) {
	var rule models.Rule
	var kind string
	err := row.Scan(&rule.ID, &rule.SourceClub, &rule.SourceTournament, &rule.TargetClub,
		&rule.TargetTournament, &kind, &rule.Hard, &rule.Weight)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning rule: %w", err)
	}
	rule.Kind = models.RuleKind(kind)
	return &rule, nil
}

func (r *RuleRepository) List(ctx context.Context) ([]models.Rule, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, source_club, source_tournament, target_club, target_tournament, kind, hard, weight
		 FROM rules ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing rules: %w", err)
	}
	defer rows.Close()

	var out []models.Rule
	for rows.Next() {
		var rule models.Rule
		var kind string
		if err := rows.Scan(&rule.ID, &rule.SourceClub, &rule.SourceTournament, &rule.TargetClub,
			&rule.TargetTournament, &kind, &rule.Hard, &rule.Weight); err != nil {
			return nil, fmt.Errorf("scanning rule: %w", err)
		}
		rule.Kind = models.RuleKind(kind)
		out = append(out, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rules: %w", err)
	}
	return out, nil
}

func (r *RuleRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM rules WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting rule: %w", err)
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
