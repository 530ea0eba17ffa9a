package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mselnes/forma/internal/db"
	"github.com/mselnes/forma/internal/domain"
)

// SQLiteSharedStyleRepo implements SharedStyleRepo using a SQLite database.
type SQLiteSharedStyleRepo struct {
	db db.DBTX
}

// NewSQLiteSharedStyleRepo creates a new SQLiteSharedStyleRepo.
func NewSQLiteSharedStyleRepo(dbtx db.DBTX) *SQLiteSharedStyleRepo {
	return &SQLiteSharedStyleRepo{db: dbtx}
}

func (r *SQLiteSharedStyleRepo) Create(ctx context.Context, s *domain.SharedStyle) error {
	settingsJSON, err := marshalJSON(s.Settings, "{}")
	if err != nil {
		return err
	}
	stylesJSON, err := marshalJSON(s.Styles, "{}")
	if err != nil {
		return err
	}

	query := `INSERT INTO shared_styles (id, name, block_type, settings_json, styles_json, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		string(s.BlockType),
		settingsJSON,
		stylesJSON,
		s.CreatedAt.UTC().Format(time.RFC3339),
		s.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting shared style: %w", err)
	}
	return nil
}

func (r *SQLiteSharedStyleRepo) GetByID(ctx context.Context, id string) (*domain.SharedStyle, error) {
	query := `SELECT id, name, block_type, settings_json, styles_json, created_at, updated_at
		FROM shared_styles WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanSharedStyle(row.Scan)
}

func (r *SQLiteSharedStyleRepo) ListByBlockType(ctx context.Context, t domain.BlockType) ([]*domain.SharedStyle, error) {
	query := `SELECT id, name, block_type, settings_json, styles_json, created_at, updated_at
		FROM shared_styles WHERE block_type = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, string(t))
	if err != nil {
		return nil, fmt.Errorf("listing shared styles: %w", err)
	}
	defer rows.Close()

	var styles []*domain.SharedStyle
	for rows.Next() {
		s, err := scanSharedStyle(rows.Scan)
		if err != nil {
			return nil, err
		}
		styles = append(styles, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shared styles: %w", err)
	}
	return styles, nil
}

func (r *SQLiteSharedStyleRepo) Update(ctx context.Context, s *domain.SharedStyle) error {
	settingsJSON, err := marshalJSON(s.Settings, "{}")
	if err != nil {
		return err
	}
	stylesJSON, err := marshalJSON(s.Styles, "{}")
	if err != nil {
		return err
	}

	query := `UPDATE shared_styles SET name = ?, settings_json = ?, styles_json = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, s.Name, settingsJSON, stylesJSON, nowUTC(), s.ID)
	if err != nil {
		return fmt.Errorf("updating shared style: %w", err)
	}
	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("shared style %s: %w", s.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSharedStyleRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM shared_styles WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting shared style: %w", err)
	}
	return nil
}

func scanSharedStyle(scan func(dest ...any) error) (*domain.SharedStyle, error) {
	var s domain.SharedStyle
	var blockTypeStr, settingsJSON, stylesJSON, createdAtStr, updatedAtStr string

	err := scan(&s.ID, &s.Name, &blockTypeStr, &settingsJSON, &stylesJSON, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("shared style: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning shared style: %w", err)
	}

	s.BlockType = domain.BlockType(blockTypeStr)
	if err := json.Unmarshal([]byte(settingsJSON), &s.Settings); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	if err := json.Unmarshal([]byte(stylesJSON), &s.Styles); err != nil {
		return nil, fmt.Errorf("decoding styles: %w", err)
	}
	if s.CreatedAt, err = parseTime(createdAtStr, "created_at"); err != nil {
		return nil, err
	}
	if s.UpdatedAt, err = parseTime(updatedAtStr, "updated_at"); err != nil {
		return nil, err
	}
	return &s, nil
}
