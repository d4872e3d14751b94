package database

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMigrations_Embedded(t *testing.T) {
	all, err := GetMigrations()
	require.NoError(t, err)
	require.Len(t, all, 3)

	for i, m := range all {
		assert.Equal(t, i+1, m.Version)
		assert.NotEmpty(t, m.UpScript, m.String())
		assert.NotEmpty(t, m.DownScript, m.String())
	}
	assert.Equal(t, "000001_create_users", all[0].String())
}

func TestGetMigrationByVersion(t *testing.T) {
	m, err := GetMigrationByVersion(2)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "create_posts", m.Name)

	m, err = GetMigrationByVersion(99)
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestLoadMigrations(t *testing.T) {
	t.Run("sorts by version", func(t *testing.T) {
		fsys := fstest.MapFS{
			"m/000002_b.up.sql":   {Data: []byte("SELECT 2")},
			"m/000002_b.down.sql": {Data: []byte("SELECT -2")},
			"m/000001_a.up.sql":   {Data: []byte("SELECT 1")},
			"m/000001_a.down.sql": {Data: []byte("SELECT -1")},
			"m/README.md":         {Data: []byte("ignored")},
		}
		all, err := LoadMigrations(fsys, "m")
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "a", all[0].Name)
		assert.Equal(t, "SELECT -2", all[1].DownScript)
	})

	t.Run("missing down script", func(t *testing.T) {
		fsys := fstest.MapFS{"m/000001_a.up.sql": {Data: []byte("SELECT 1")}}
		_, err := LoadMigrations(fsys, "m")
		assert.Error(t, err)
	})

	t.Run("duplicate version", func(t *testing.T) {
		fsys := fstest.MapFS{
			"m/000001_a.up.sql":   {Data: []byte("SELECT 1")},
			"m/000001_a.down.sql": {Data: []byte("SELECT 1")},
			"m/1_b.up.sql":        {Data: []byte("SELECT 1")},
			"m/1_b.down.sql":      {Data: []byte("SELECT 1")},
		}
		_, err := LoadMigrations(fsys, "m")
		assert.ErrorContains(t, err, "migration version 1")
	})

	t.Run("bad version", func(t *testing.T) {
		fsys := fstest.MapFS{
			"m/abc_a.up.sql":   {Data: []byte("SELECT 1")},
			"m/abc_a.down.sql": {Data: []byte("SELECT 1")},
		}
		_, err := LoadMigrations(fsys, "m")
		assert.Error(t, err)
	})
}

func TestValidateAppliedVersions(t *testing.T) {
	registered := []Migration{{Version: 1}, {Version: 2}}
	assert.NoError(t, validateAppliedVersions([]int{1, 2}, registered))
	assert.ErrorContains(t, validateAppliedVersions([]int{1, 7}, registered), "000007")
}

func TestMigrationStore_SQLite(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, db.AutoMigrate(&MigrationLog{}))

	ctx := context.Background()
	store := NewMigrationStore(db)
	m := Migration{
		Version:    1,
		Name:       "widgets",
		UpScript:   "CREATE TABLE widgets (id INTEGER PRIMARY KEY)",
		DownScript: "DROP TABLE widgets",
	}

	require.NoError(t, store.ApplyMigration(ctx, m))
	applied, err := store.GetAppliedMigrations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, applied)
	assert.True(t, db.Migrator().HasTable("widgets"))

	require.NoError(t, store.RevertMigration(ctx, m))
	applied, err = store.GetAppliedMigrations(ctx)
	require.NoError(t, err)
	assert.Empty(t, applied)
	assert.False(t, db.Migrator().HasTable("widgets"))
}

func TestMigrationStore_MissingTable(t *testing.T) {
	db := openSQLite(t)
	applied, err := NewMigrationStore(db).GetAppliedMigrations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, applied)
}
