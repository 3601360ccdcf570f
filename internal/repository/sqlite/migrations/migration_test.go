package migrations

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunMigrations(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, RunMigrations(db))

	// The time_entries table and its indexes should exist
	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'time_entries'",
	).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "time_entries", name)

	rows, err := db.Query(
		"SELECT name FROM sqlite_master WHERE type = 'index' AND tbl_name = 'time_entries'",
	)
	require.NoError(t, err)
	defer rows.Close()

	indexes := make(map[string]bool)
	for rows.Next() {
		require.NoError(t, rows.Scan(&name))
		indexes[name] = true
	}
	require.NoError(t, rows.Err())
	assert.True(t, indexes["idx_time_entries_user_date"])
	assert.True(t, indexes["idx_time_entries_project_status"])
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, RunMigrations(db))
	require.NoError(t, RunMigrations(db))

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLoadMigrations_Ordered(t *testing.T) {
	migrations, err := loadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	for i := 1; i < len(migrations); i++ {
		assert.Less(t, migrations[i-1].Version, migrations[i].Version)
	}
	assert.Equal(t, 1, migrations[0].Version)
	assert.NotEmpty(t, migrations[0].Up)
	assert.NotEmpty(t, migrations[0].Down)
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		filename string
		expected int
	}{
		{"000001_create_time_entries.up.sql", 1},
		{"000042_add_column.up.sql", 42},
		{"not_a_migration.sql", 0},
		{"nounderscores.sql", 0},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractVersion(tt.filename))
		})
	}
}
