package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-tracker/internal/config"
	"github.com/yukikurage/project-tracker/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestConnect_UnsupportedDriver(t *testing.T) {
	_, err := Connect(&config.Config{Database: config.DBCfg{Driver: "oracle"}})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestDialectorFor(t *testing.T) {
	for _, tt := range []struct{ driver, name string }{
		{"", "sqlite"},
		{"SQLite", "sqlite"},
		{"mysql", "mysql"},
		{"postgresql", "postgres"},
	} {
		d, err := dialectorFor(tt.driver, "dsn")
		require.NoError(t, err, tt.driver)
		assert.Equal(t, tt.name, d.Name(), tt.driver)
	}
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, logLevel("silent"))
	assert.Equal(t, logger.Info, logLevel("INFO"))
	assert.Equal(t, logger.Warn, logLevel(""))
}

func TestMigrate(t *testing.T) {
	db, err := Connect(&config.Config{Database: config.DBCfg{Driver: "sqlite", DSN: ":memory:", LogLevel: "silent"}})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, Migrate(db))
	// a second run is a no-op
	require.NoError(t, Migrate(db))

	m := db.Migrator()
	for _, model := range Models() {
		assert.True(t, m.HasTable(model))
	}
	assert.True(t, m.HasIndex(&models.ProjectSection{}, "idx_project_sections_object_order"))
	assert.True(t, m.HasIndex(&models.ProjectPart{}, "idx_project_parts_section_order"))
	assert.True(t, m.HasIndex(&models.ProjectPart{}, "idx_project_parts_status"))
}

func TestSqliteDSN(t *testing.T) {
	tests := []struct{ in, want string }{
		{"tracker.db", "tracker.db?_foreign_keys=on"},
		{"file:tracker.db?cache=shared", "file:tracker.db?cache=shared&_foreign_keys=on"},
		{"tracker.db?_foreign_keys=off", "tracker.db?_foreign_keys=off"},
		{"tracker.db?_fk=1", "tracker.db?_fk=1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sqliteDSN(tt.in), tt.in)
	}
}

func connectFile(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Connect(&config.Config{Database: config.DBCfg{
		Driver:   "sqlite",
		DSN:      filepath.Join(t.TempDir(), "tracker.db"),
		LogLevel: "silent",
	}})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	require.NoError(t, Migrate(db))
	return db
}

func TestConnect_SqliteForeignKeys(t *testing.T) {
	db := connectFile(t)

	err := db.Create(&models.ProjectPart{SectionID: 424242, Name: "Text", OrderIndex: 1}).Error
	assert.Error(t, err, "parts must reference an existing section")

	var parts int64
	require.NoError(t, db.Model(&models.ProjectPart{}).Count(&parts).Error)
	assert.Zero(t, parts)
}

func TestConnect_SqliteCascadeDelete(t *testing.T) {
	db := connectFile(t)

	obj := &models.ProjectObject{Code: "OBJ-1", ShortName: "O1", FullName: "Object one"}
	require.NoError(t, db.Create(obj).Error)
	section := &models.ProjectSection{ObjectID: obj.ID, Code: "000", Name: "General", OrderIndex: 1}
	require.NoError(t, db.Create(section).Error)
	require.NoError(t, db.Create(&models.ProjectPart{SectionID: section.ID, Name: "Text", OrderIndex: 1}).Error)

	require.NoError(t, db.Delete(obj).Error)

	var sections, parts int64
	require.NoError(t, db.Model(&models.ProjectSection{}).Count(&sections).Error)
	require.NoError(t, db.Model(&models.ProjectPart{}).Count(&parts).Error)
	assert.Zero(t, sections)
	assert.Zero(t, parts)
}
