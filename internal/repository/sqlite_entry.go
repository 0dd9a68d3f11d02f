package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/RogueFF/shiftboard/internal/domain"
)

// SQLiteEntryRepo implements EntryRepo using a SQLite database.
type SQLiteEntryRepo struct {
	db *sql.DB
}

// NewSQLiteEntryRepo creates a new SQLiteEntryRepo.
func NewSQLiteEntryRepo(db *sql.DB) *SQLiteEntryRepo {
	return &SQLiteEntryRepo{db: db}
}

const entryColumns = `id, production_date, time_slot, cultivar, tops_lbs, smalls_lbs,
	trimmers, effective_trimmers, buckers, notes, created_at, updated_at`

func (r *SQLiteEntryRepo) Upsert(ctx context.Context, e *domain.ProductionEntry) error {
	query := `INSERT INTO production_entries (` + entryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(production_date, time_slot) DO UPDATE SET
			cultivar = excluded.cultivar,
			tops_lbs = excluded.tops_lbs,
			smalls_lbs = excluded.smalls_lbs,
			trimmers = excluded.trimmers,
			effective_trimmers = excluded.effective_trimmers,
			buckers = excluded.buckers,
			notes = excluded.notes,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Date,
		e.TimeSlot,
		e.Cultivar,
		e.TopsLbs,
		e.SmallsLbs,
		e.Trimmers,
		nullableFloatToValue(e.EffectiveTrimmers),
		e.Buckers,
		e.Notes,
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting production entry: %w", err)
	}
	return nil
}

func (r *SQLiteEntryRepo) GetByDateSlot(ctx context.Context, date, slot string) (*domain.ProductionEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM production_entries
		WHERE production_date = ? AND time_slot = ?`
	row := r.db.QueryRowContext(ctx, query, date, slot)
	return r.scanEntry(row)
}

func (r *SQLiteEntryRepo) ListByDate(ctx context.Context, date string) ([]*domain.ProductionEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM production_entries
		WHERE production_date = ?`
	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("listing entries by date: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteEntryRepo) RateSamples(ctx context.Context, cutoff, cultivar string) ([]RateSample, error) {
	query := `SELECT production_date, time_slot, tops_lbs, trimmers
		FROM production_entries
		WHERE production_date >= ? AND tops_lbs > 0 AND trimmers > 0`
	args := []interface{}{cutoff}
	if cultivar != "" {
		query += ` AND cultivar = ?`
		args = append(args, cultivar)
	}
	query += ` ORDER BY production_date`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing rate samples: %w", err)
	}
	defer rows.Close()

	var samples []RateSample
	for rows.Next() {
		var s RateSample
		if err := rows.Scan(&s.Date, &s.TimeSlot, &s.Tops, &s.Trimmers); err != nil {
			return nil, fmt.Errorf("scanning rate sample: %w", err)
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rate samples: %w", err)
	}
	return samples, nil
}

func (r *SQLiteEntryRepo) DailyTotals(ctx context.Context, cutoff string) ([]DayTotals, error) {
	query := `SELECT production_date,
			SUM(tops_lbs),
			SUM(smalls_lbs),
			SUM(trimmers),
			SUM(buckers),
			COUNT(CASE WHEN trimmers > 0 AND tops_lbs > 0 THEN 1 END)
		FROM production_entries
		WHERE production_date >= ?
		GROUP BY production_date
		ORDER BY production_date`
	rows, err := r.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("listing daily totals: %w", err)
	}
	defer rows.Close()

	var totals []DayTotals
	for rows.Next() {
		var d DayTotals
		if err := rows.Scan(&d.Date, &d.Tops, &d.Smalls, &d.TrimmerHours, &d.BuckerHours, &d.HoursLogged); err != nil {
			return nil, fmt.Errorf("scanning daily totals: %w", err)
		}
		totals = append(totals, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating daily totals: %w", err)
	}
	return totals, nil
}

func (r *SQLiteEntryRepo) Delete(ctx context.Context, date, slot string) error {
	query := `DELETE FROM production_entries WHERE production_date = ? AND time_slot = ?`
	_, err := r.db.ExecContext(ctx, query, date, slot)
	if err != nil {
		return fmt.Errorf("deleting production entry: %w", err)
	}
	return nil
}

// scanEntry scans a single entry from a *sql.Row.
func (r *SQLiteEntryRepo) scanEntry(row *sql.Row) (*domain.ProductionEntry, error) {
	var e domain.ProductionEntry
	var effective sql.NullFloat64
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&e.ID, &e.Date, &e.TimeSlot, &e.Cultivar, &e.TopsLbs, &e.SmallsLbs,
		&e.Trimmers, &effective, &e.Buckers, &e.Notes, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("production entry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning production entry: %w", err)
	}

	return r.populateEntry(&e, effective, createdAtStr, updatedAtStr)
}

// scanEntries scans multiple entries from *sql.Rows.
func (r *SQLiteEntryRepo) scanEntries(rows *sql.Rows) ([]*domain.ProductionEntry, error) {
	var entries []*domain.ProductionEntry
	for rows.Next() {
		var e domain.ProductionEntry
		var effective sql.NullFloat64
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&e.ID, &e.Date, &e.TimeSlot, &e.Cultivar, &e.TopsLbs, &e.SmallsLbs,
			&e.Trimmers, &effective, &e.Buckers, &e.Notes, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning entry row: %w", err)
		}

		entry, parseErr := r.populateEntry(&e, effective, createdAtStr, updatedAtStr)
		if parseErr != nil {
			return nil, parseErr
		}

		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}
	return entries, nil
}

// populateEntry fills in parsed fields after scanning raw values.
func (r *SQLiteEntryRepo) populateEntry(e *domain.ProductionEntry, effective sql.NullFloat64, createdAtStr, updatedAtStr string) (*domain.ProductionEntry, error) {
	if effective.Valid {
		v := effective.Float64
		e.EffectiveTrimmers = &v
	}

	var parseErr error
	e.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	e.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return e, nil
}
