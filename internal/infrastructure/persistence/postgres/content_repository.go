package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/yuzvak/nhh-storefront/internal/infrastructure/monitoring"
)

const contentTable = "content_entries"

// ContentRepository is a key-value table holding equipment spec overrides
// and download lists as JSON documents.
type ContentRepository struct {
	db *sql.DB
}

func NewContentRepository(conn *Connection) *ContentRepository {
	return &ContentRepository{db: conn.GetDB()}
}

func (r *ContentRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query := `SELECT value FROM content_entries WHERE key = $1`

	var value string
	row := monitoring.InstrumentQueryRow(ctx, r.db, "SELECT", contentTable, query, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load %s: %w", key, err)
	}

	return []byte(value), true, nil
}

func (r *ContentRepository) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO content_entries (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	if _, err := monitoring.InstrumentExec(ctx, r.db, "UPSERT", contentTable, query, key, string(value)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (r *ContentRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM content_entries WHERE key = $1`

	if _, err := monitoring.InstrumentExec(ctx, r.db, "DELETE", contentTable, query, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
