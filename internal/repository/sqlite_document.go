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

// SQLiteDocumentRepo implements DocumentRepo using a SQLite database. The
// block tree and page settings are stored as JSON columns; the children
// invariant is re-established on load via domain.Normalize.
type SQLiteDocumentRepo struct {
	db db.DBTX
}

// NewSQLiteDocumentRepo creates a new SQLiteDocumentRepo.
func NewSQLiteDocumentRepo(dbtx db.DBTX) *SQLiteDocumentRepo {
	return &SQLiteDocumentRepo{db: dbtx}
}

func (r *SQLiteDocumentRepo) Create(ctx context.Context, d *domain.Document) error {
	blocksJSON, err := marshalJSON(d.Blocks, "[]")
	if err != nil {
		return err
	}
	settingsJSON, err := marshalJSON(d.PageSettings, "{}")
	if err != nil {
		return err
	}

	now := nowUTC()
	if d.CreatedAt.IsZero() {
		d.CreatedAt, _ = time.Parse(time.RFC3339, now)
	}
	d.UpdatedAt = d.CreatedAt

	query := `INSERT INTO documents (id, name, blocks_json, page_settings_json, language, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		d.ID,
		d.Name,
		blocksJSON,
		settingsJSON,
		d.Language,
		d.CreatedAt.UTC().Format(time.RFC3339),
		d.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting document: %w", err)
	}
	return nil
}

func (r *SQLiteDocumentRepo) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	query := `SELECT id, name, blocks_json, page_settings_json, language, created_at, updated_at
		FROM documents WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanDocument(row.Scan)
}

func (r *SQLiteDocumentRepo) List(ctx context.Context) ([]*domain.Document, error) {
	query := `SELECT id, name, blocks_json, page_settings_json, language, created_at, updated_at
		FROM documents ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []*domain.Document
	for rows.Next() {
		d, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}
	return docs, nil
}

func (r *SQLiteDocumentRepo) Update(ctx context.Context, d *domain.Document) error {
	blocksJSON, err := marshalJSON(d.Blocks, "[]")
	if err != nil {
		return err
	}
	settingsJSON, err := marshalJSON(d.PageSettings, "{}")
	if err != nil {
		return err
	}

	query := `UPDATE documents SET name = ?, blocks_json = ?, page_settings_json = ?, language = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		d.Name,
		blocksJSON,
		settingsJSON,
		d.Language,
		nowUTC(),
		d.ID,
	)
	if err != nil {
		return fmt.Errorf("updating document: %w", err)
	}
	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("document %s: %w", d.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteDocumentRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM documents WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	return nil
}

func scanDocument(scan func(dest ...any) error) (*domain.Document, error) {
	var d domain.Document
	var blocksJSON, settingsJSON, createdAtStr, updatedAtStr string

	err := scan(&d.ID, &d.Name, &blocksJSON, &settingsJSON, &d.Language, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("document: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning document: %w", err)
	}

	if err := json.Unmarshal([]byte(blocksJSON), &d.Blocks); err != nil {
		return nil, fmt.Errorf("decoding blocks: %w", err)
	}
	if err := json.Unmarshal([]byte(settingsJSON), &d.PageSettings); err != nil {
		return nil, fmt.Errorf("decoding page settings: %w", err)
	}
	for _, b := range d.Blocks {
		domain.Normalize(b)
	}

	if d.CreatedAt, err = parseTime(createdAtStr, "created_at"); err != nil {
		return nil, err
	}
	if d.UpdatedAt, err = parseTime(updatedAtStr, "updated_at"); err != nil {
		return nil, err
	}
	return &d, nil
}
