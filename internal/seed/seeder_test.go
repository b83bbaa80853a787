package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-tracker/internal/models"
	"github.com/yukikurage/project-tracker/internal/testutil"
	"gorm.io/gorm"
)

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestDefaultCatalog(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	assert.Len(t, catalog.Objects, 21)
	assert.Len(t, catalog.Sections, 14)
	assert.Len(t, catalog.Parts, 5)
	assert.Equal(t, "PLGL1-GP.2-000-000-SIT", catalog.Objects[0].Code)
	assert.Equal(t, "GAR", catalog.Objects[20].ShortName)
	assert.Equal(t, "125", catalog.Sections[13].Code)
}

func TestParseCatalog_Invalid(t *testing.T) {
	_, err := ParseCatalog([]byte("objects: []\nsections: []\nparts: []\n"))
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	dup := `
objects:
  - {code: "A", short_name: "a", full_name: "A"}
  - {code: "A", short_name: "b", full_name: "B"}
sections:
  - {code: "000", name: "General"}
parts: ["Text"]
`
	_, err = ParseCatalog([]byte(dup))
	assert.ErrorIs(t, err, ErrDuplicateObjectCode)

	blank := `
objects:
  - {code: "A", short_name: "", full_name: "A"}
sections:
  - {code: "000", name: "General"}
parts: ["Text"]
`
	_, err = ParseCatalog([]byte(blank))
	assert.ErrorIs(t, err, ErrBlankCatalogEntry)

	_, err = ParseCatalog([]byte("objects: {"))
	assert.Error(t, err)
}

func TestSeeder_Run(t *testing.T) {
	db := testutil.NewDB(t)
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	seeder := NewSeeder(db, catalog, nil)
	require.NoError(t, seeder.Run(context.Background()))

	assert.EqualValues(t, 21, countRows(t, db, &models.ProjectObject{}))
	assert.EqualValues(t, 21*14, countRows(t, db, &models.ProjectSection{}))
	assert.EqualValues(t, 21*14*5, countRows(t, db, &models.ProjectPart{}))

	var objects []models.ProjectObject
	require.NoError(t, db.Order("id").Find(&objects).Error)
	for _, obj := range objects {
		var sections []models.ProjectSection
		require.NoError(t, db.Where("object_id = ?", obj.ID).Order("order_index").Find(&sections).Error)
		require.Len(t, sections, 14)
		for i, sec := range sections {
			assert.Equal(t, i+1, sec.OrderIndex)
			assert.Equal(t, catalog.Sections[i].Code, sec.Code)
		}
	}

	var sections []models.ProjectSection
	require.NoError(t, db.Find(&sections).Error)
	for _, sec := range sections {
		var parts []models.ProjectPart
		require.NoError(t, db.Where("section_id = ?", sec.ID).Order("order_index").Find(&parts).Error)
		require.Len(t, parts, 5)
		for i, part := range parts {
			assert.Equal(t, i+1, part.OrderIndex)
			assert.Equal(t, models.PartStatusPending, part.Status)
			assert.Nil(t, part.EndDate)
		}
	}
}

func TestSeeder_Idempotent(t *testing.T) {
	db := testutil.NewDB(t)
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	seeder := NewSeeder(db, catalog, nil)
	require.NoError(t, seeder.Run(context.Background()))
	require.NoError(t, seeder.Run(context.Background()))

	assert.EqualValues(t, 21, countRows(t, db, &models.ProjectObject{}))
	assert.EqualValues(t, 21*14, countRows(t, db, &models.ProjectSection{}))
	assert.EqualValues(t, 21*14*5, countRows(t, db, &models.ProjectPart{}))
}

func TestSeeder_NonEmptyTableIsNotBackfilled(t *testing.T) {
	db := testutil.NewDB(t)
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	// A single pre-existing object blocks the object seed, but sections and
	// parts are still generated for whatever objects exist.
	require.NoError(t, db.Create(&models.ProjectObject{Code: "X-1", ShortName: "X", FullName: "Existing"}).Error)

	require.NoError(t, NewSeeder(db, catalog, nil).Run(context.Background()))

	assert.EqualValues(t, 1, countRows(t, db, &models.ProjectObject{}))
	assert.EqualValues(t, 14, countRows(t, db, &models.ProjectSection{}))
	assert.EqualValues(t, 14*5, countRows(t, db, &models.ProjectPart{}))
}

func TestSeeder_SmallCatalog(t *testing.T) {
	db := testutil.NewDB(t)
	catalog := &Catalog{
		Objects:  []ObjectEntry{{Code: "A", ShortName: "a", FullName: "Alpha"}, {Code: "B", ShortName: "b", FullName: "Beta"}},
		Sections: []SectionEntry{{Code: "000", Name: "General"}},
		Parts:    []string{"Text", "Drawings"},
	}

	require.NoError(t, NewSeeder(db, catalog, nil).Run(context.Background()))

	assert.EqualValues(t, 2, countRows(t, db, &models.ProjectObject{}))
	assert.EqualValues(t, 2, countRows(t, db, &models.ProjectSection{}))
	assert.EqualValues(t, 4, countRows(t, db, &models.ProjectPart{}))
}
