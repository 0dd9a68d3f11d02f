package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"production_entries", "system_config", "data_version"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}

func TestMigrate_SeedsScoreboardVersion(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	var version int
	err = database.QueryRow(`SELECT version FROM data_version WHERE key = 'scoreboard'`).Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, 0, version)
}

func TestMigrate_UniqueDateSlot(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	insert := `INSERT INTO production_entries
		(id, production_date, time_slot, created_at, updated_at)
		VALUES (?, ?, ?, '2026-08-28T07:00:00Z', '2026-08-28T07:00:00Z')`

	_, err = database.Exec(insert, "a", "2026-08-28", "7:00 AM – 8:00 AM")
	require.NoError(t, err)
	_, err = database.Exec(insert, "b", "2026-08-28", "7:00 AM – 8:00 AM")
	assert.Error(t, err, "duplicate (date, slot) must be rejected")
}
