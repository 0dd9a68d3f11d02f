package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
)

// SQLiteConfigRepo implements ConfigRepo against the system_config and
// data_version tables.
type SQLiteConfigRepo struct {
	db *sql.DB
}

// NewSQLiteConfigRepo creates a new SQLiteConfigRepo.
func NewSQLiteConfigRepo(db *sql.DB) *SQLiteConfigRepo {
	return &SQLiteConfigRepo{db: db}
}

func (r *SQLiteConfigRepo) GetString(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM system_config WHERE key = ?`, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading config %q: %w", key, err)
	}
	return value, true, nil
}

func (r *SQLiteConfigRepo) GetFloat(ctx context.Context, key string) (float64, bool, error) {
	raw, ok, err := r.GetString(ctx, key)
	if err != nil || !ok {
		return 0, false, err
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("config %q is not a number: %w", key, err)
	}
	return f, true, nil
}

func (r *SQLiteConfigRepo) GetFloatMap(ctx context.Context, key string) (map[string]float64, bool, error) {
	raw, ok, err := r.GetString(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}
	var m map[string]float64
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, false, fmt.Errorf("config %q is not a JSON number map: %w", key, err)
	}
	return m, true, nil
}

func (r *SQLiteConfigRepo) Set(ctx context.Context, key, value, valueType, updatedBy string) error {
	if valueType == "" {
		valueType = "string"
	}
	if updatedBy == "" {
		updatedBy = "system"
	}
	query := `INSERT INTO system_config (key, value, value_type, updated_at, updated_by)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			value_type = excluded.value_type,
			updated_at = excluded.updated_at,
			updated_by = excluded.updated_by`
	if _, err := r.db.ExecContext(ctx, query, key, value, valueType, nowUTC(), updatedBy); err != nil {
		return fmt.Errorf("setting config %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteConfigRepo) DataVersion(ctx context.Context) (int, error) {
	var version int
	err := r.db.QueryRowContext(ctx,
		`SELECT version FROM data_version WHERE key = 'scoreboard'`,
	).Scan(&version)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading data version: %w", err)
	}
	return version, nil
}

func (r *SQLiteConfigRepo) BumpDataVersion(ctx context.Context) error {
	query := `INSERT INTO data_version (key, version, updated_at)
		VALUES ('scoreboard', 1, ?)
		ON CONFLICT(key) DO UPDATE SET
			version = version + 1,
			updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, nowUTC()); err != nil {
		return fmt.Errorf("bumping data version: %w", err)
	}
	return nil
}
