package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/passforge/passforge-go/internal/model"
)

var (
	ErrPresetNotFound  = errors.New("preset not found")
	ErrDuplicatePreset = errors.New("preset name already exists")
)

// PresetRepository handles generation preset persistence operations.
type PresetRepository struct {
	db *sql.DB
}

// NewPresetRepository creates a new PresetRepository.
func NewPresetRepository(db *sql.DB) *PresetRepository {
	return &PresetRepository{db: db}
}

const presetColumns = "id, user_id, name, length, numbers, symbols, lowercase, uppercase, allow_ambiguous, created_at, updated_at"

// Create inserts a new preset and sets the generated ID on the preset struct.
// Preset names are unique per user.
func (r *PresetRepository) Create(ctx context.Context, p *model.Preset) error {
	query := `INSERT INTO presets (user_id, name, length, numbers, symbols, lowercase, uppercase, allow_ambiguous)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		p.UserID, p.Name, p.Length, p.Numbers, p.Symbols, p.Lowercase, p.Uppercase, p.AllowAmbiguous,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicatePreset
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	p.ID = id
	return nil
}

// GetByName retrieves a preset by user ID and preset name.
func (r *PresetRepository) GetByName(ctx context.Context, userID int64, name string) (*model.Preset, error) {
	query := `SELECT ` + presetColumns + ` FROM presets WHERE user_id = ? AND name = ?`

	p := &model.Preset{}
	err := r.db.QueryRowContext(ctx, query, userID, name).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Length,
		&p.Numbers, &p.Symbols, &p.Lowercase, &p.Uppercase, &p.AllowAmbiguous,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPresetNotFound
		}
		return nil, err
	}

	return p, nil
}

// ListByUser retrieves all presets for a user, ordered by name.
func (r *PresetRepository) ListByUser(ctx context.Context, userID int64) ([]model.Preset, error) {
	query := `SELECT ` + presetColumns + ` FROM presets WHERE user_id = ? ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var presets []model.Preset
	for rows.Next() {
		var p model.Preset
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Name, &p.Length,
			&p.Numbers, &p.Symbols, &p.Lowercase, &p.Uppercase, &p.AllowAmbiguous,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}

	return presets, rows.Err()
}

// Update replaces the stored option flags of an existing preset.
func (r *PresetRepository) Update(ctx context.Context, p *model.Preset) error {
	query := `UPDATE presets
		SET length = ?, numbers = ?, symbols = ?, lowercase = ?, uppercase = ?, allow_ambiguous = ?
		WHERE user_id = ? AND name = ?`

	result, err := r.db.ExecContext(ctx, query,
		p.Length, p.Numbers, p.Symbols, p.Lowercase, p.Uppercase, p.AllowAmbiguous,
		p.UserID, p.Name,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		// An update writing back identical flags also affects zero rows on
		// MySQL, so confirm the preset really is missing.
		if _, err := r.GetByName(ctx, p.UserID, p.Name); err != nil {
			return err
		}
	}

	return nil
}

// Delete removes a preset.
func (r *PresetRepository) Delete(ctx context.Context, userID int64, name string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM presets WHERE user_id = ? AND name = ?`, userID, name)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrPresetNotFound
	}

	return nil
}
