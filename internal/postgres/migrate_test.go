package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/SergeyBogomolovv/restaurant-pos/internal/postgres"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestEmbeddedMigrations(t *testing.T) {
	migrations, err := postgres.EmbeddedMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 3)

	assert.Equal(t, "1.0.0", migrations[0].Version.String())
	assert.Equal(t, "catalog", migrations[0].Name)
	assert.Equal(t, "1.1.0", migrations[1].Version.String())
	assert.Contains(t, migrations[1].Up, "CREATE TABLE IF NOT EXISTS orders")
	assert.Equal(t, "catalog_notify", migrations[2].Name)
	assert.Contains(t, migrations[2].Up, "pg_notify('"+postgres.MenuItemsChannel+"'")
}

func TestLoadMigrations(t *testing.T) {
	testCases := []struct {
		name      string
		files     fstest.MapFS
		wantNames []string
		wantErr   bool
	}{
		{
			name: "ordered by semver not by name",
			files: fstest.MapFS{
				"v1.10.0_late.sql": {Data: []byte("SELECT 1;")},
				"v1.2.0_mid.sql":   {Data: []byte("SELECT 1;")},
				"v1.0.0_first.sql": {Data: []byte("SELECT 1;")},
				"README.md":        {Data: []byte("ignored")},
			},
			wantNames: []string{"first", "mid", "late"},
		},
		{
			name:    "missing name",
			files:   fstest.MapFS{"v1.0.0.sql": {Data: []byte("SELECT 1;")}},
			wantErr: true,
		},
		{
			name:    "invalid version",
			files:   fstest.MapFS{"latest_init.sql": {Data: []byte("SELECT 1;")}},
			wantErr: true,
		},
		{
			name: "duplicate version",
			files: fstest.MapFS{
				"v1.0.0_a.sql": {Data: []byte("SELECT 1;")},
				"v1.0_b.sql":   {Data: []byte("SELECT 1;")},
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			migrations, err := postgres.LoadMigrations(tc.files)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			names := make([]string, 0, len(migrations))
			for _, m := range migrations {
				names = append(names, m.Name)
			}
			assert.Equal(t, tc.wantNames, names)
		})
	}
}

func TestMigrate(t *testing.T) {
	ctx := context.Background()
	db := newDB(t)

	first, err := postgres.LoadMigrations(fstest.MapFS{
		"v1.0.0_kv.sql": {Data: []byte("CREATE TABLE kv (k TEXT PRIMARY KEY, v TEXT);")},
	})
	require.NoError(t, err)

	require.NoError(t, postgres.Migrate(ctx, logger, db, first))
	// already applied migrations are skipped
	require.NoError(t, postgres.Migrate(ctx, logger, db, first))

	v, err := postgres.CurrentVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", v.String())

	second, err := postgres.LoadMigrations(fstest.MapFS{
		"v1.0.0_kv.sql":   {Data: []byte("CREATE TABLE kv (k TEXT PRIMARY KEY, v TEXT);")},
		"v1.1.0_seed.sql": {Data: []byte("INSERT INTO kv (k, v) VALUES ('a', '1'); INSERT INTO kv (k, v) VALUES ('b', '2');")},
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(ctx, logger, db, second))

	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM kv`))
	assert.Equal(t, 2, n)

	v, err = postgres.CurrentVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, "1.1.0", v.String())
}

func TestMigrate_FailedMigrationIsNotRecorded(t *testing.T) {
	ctx := context.Background()
	db := newDB(t)

	migrations, err := postgres.LoadMigrations(fstest.MapFS{
		"v1.0.0_broken.sql": {Data: []byte("CREATE TABLE (;")},
	})
	require.NoError(t, err)

	assert.Error(t, postgres.Migrate(ctx, logger, db, migrations))

	v, err := postgres.CurrentVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0", v.String())
}
