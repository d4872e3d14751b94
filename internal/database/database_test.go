package database

import (
	"context"
	"errors"
	"testing"

	"github.com/RefuJobs/RefuJobs-server/internal/config"
	"github.com/RefuJobs/RefuJobs-server/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestConfigurePool(t *testing.T) {
	db := openSQLite(t)

	cfg := &config.Config{
		DBMaxOpenConns:           10,
		DBMaxIdleConns:           5,
		DBConnMaxLifetimeMinutes: 15,
	}
	require.NoError(t, configurePool(db, cfg))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 10, sqlDB.Stats().MaxOpenConnections)
}

func TestDialector(t *testing.T) {
	d, err := Dialector(&config.Config{DBDriver: "sqlite", DBSQLitePath: ":memory:"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())

	d, err = Dialector(&config.Config{DBDriver: "postgres", DBHost: "localhost", DBPort: "5432"})
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	_, err = Dialector(&config.Config{DBDriver: "mysql"})
	assert.Error(t, err)
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, true},
		{"wrapped gorm duplicated key", errors.Join(errors.New("insert"), gorm.ErrDuplicatedKey), true},
		{"pg unique violation", &pgconn.PgError{Code: "23505"}, true},
		{"pg foreign key violation", &pgconn.PgError{Code: "23503"}, false},
		{"sqlite message", errors.New("UNIQUE constraint failed: users.email"), true},
		{"record not found", gorm.ErrRecordNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueViolation(tt.err))
		})
	}
}

func TestAutoMigrate_EnforcesUniqueEmail(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, AutoMigrate(db))

	require.NoError(t, db.Create(&models.User{Email: "a@x.io", Password: "h"}).Error)
	err := db.Create(&models.User{Email: "a@x.io", Password: "h"}).Error
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestAutoMigrate_CascadesAuthorDelete(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, AutoMigrate(db))

	user := &models.User{Email: "owner@x.io", Password: "h"}
	require.NoError(t, db.Create(user).Error)
	require.NoError(t, db.Create(&models.Post{Title: "Go dev", AuthorID: user.ID}).Error)
	require.NoError(t, db.Create(&models.Resume{Title: "CV", AuthorID: user.ID}).Error)

	require.NoError(t, db.Delete(&models.User{}, user.ID).Error)

	var posts, resumes int64
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)
	require.NoError(t, db.Model(&models.Resume{}).Count(&resumes).Error)
	assert.Zero(t, posts)
	assert.Zero(t, resumes)
}

func TestApplySchema_SQLiteUsesAutoMigrate(t *testing.T) {
	db := openSQLite(t)
	cfg := &config.Config{Env: "test", DBSchemaMode: SchemaModeSQL}

	require.NoError(t, ApplySchema(context.Background(), db, cfg))
	assert.True(t, db.Migrator().HasTable(&models.User{}))
	assert.True(t, db.Migrator().HasTable(&models.Post{}))
	assert.True(t, db.Migrator().HasTable(&models.Resume{}))
	assert.False(t, db.Migrator().HasTable(&MigrationLog{}))
}

func TestSchemaPolicy(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		mode     string
		dialect  string
		wantSQL  bool
		wantAuto bool
		wantErr  bool
	}{
		{"hybrid development", "development", SchemaModeHybrid, "postgres", true, true, false},
		{"hybrid production", "production", SchemaModeHybrid, "postgres", true, false, false},
		{"empty mode defaults to hybrid", "development", "", "postgres", true, true, false},
		{"sql only", "development", SchemaModeSQL, "postgres", true, false, false},
		{"auto development", "development", SchemaModeAuto, "postgres", false, true, false},
		{"auto production", "production", SchemaModeAuto, "postgres", false, false, true},
		{"sqlite ignores mode", "development", SchemaModeSQL, "sqlite", false, true, false},
		{"unknown mode", "development", "bogus", "postgres", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Env: tt.env, DBSchemaMode: tt.mode}
			runSQL, runAuto, err := schemaPolicy(cfg, tt.dialect)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, runSQL)
			assert.Equal(t, tt.wantAuto, runAuto)
		})
	}
}

func TestPersistentModels_ParentsFirst(t *testing.T) {
	list := PersistentModels()
	require.Len(t, list, 3)
	assert.IsType(t, &models.User{}, list[0])
}
