package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-tracker/internal/models"
	"github.com/yukikurage/project-tracker/internal/seed"
	"github.com/yukikurage/project-tracker/internal/testutil"
	"github.com/yukikurage/project-tracker/internal/utils"
	"gorm.io/gorm"
)

func TestUserRepository_Register(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &models.User{Email: "a@x.com", Name: "Admin", PasswordHash: "h"}
	require.NoError(t, repo.Register(ctx, first))
	assert.True(t, first.IsAdmin)
	assert.True(t, first.IsApproved)

	second := &models.User{Email: "b@x.com", Name: "Bob", PasswordHash: "h", IsAdmin: true, IsApproved: true}
	require.NoError(t, repo.Register(ctx, second))
	assert.False(t, second.IsAdmin, "only the first account is promoted")
	assert.False(t, second.IsApproved)

	stored, err := repo.FindByID(ctx, second.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsAdmin)
	assert.False(t, stored.IsApproved)

	err = repo.Register(ctx, &models.User{Email: "a@x.com", Name: "Again", PasswordHash: "h"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestUserRepository_CRUD(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	for _, email := range []string{"c@x.com", "a@x.com", "b@x.com"} {
		require.NoError(t, db.Create(&models.User{Email: email, Name: email, PasswordHash: "h"}).Error)
	}

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "c@x.com", users[0].Email, "listed by id, not by email")

	user, err := repo.FindByEmail(ctx, "b@x.com")
	require.NoError(t, err)
	user.IsApproved = true
	require.NoError(t, repo.Update(ctx, user))

	reloaded, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsApproved)

	require.NoError(t, repo.Delete(ctx, user.ID))
	_, err = repo.FindByID(ctx, user.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	_, err = repo.FindByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func seedHierarchy(t *testing.T, db *gorm.DB) {
	t.Helper()
	catalog := &seed.Catalog{
		Objects: []seed.ObjectEntry{
			{Code: "OBJ-1", ShortName: "O1", FullName: "Object one"},
			{Code: "OBJ-2", ShortName: "O2", FullName: "Object two"},
		},
		Sections: []seed.SectionEntry{{Code: "000", Name: "General"}, {Code: "010", Name: "Architecture"}},
		Parts:    []string{"Text", "Drawings", "Album"},
	}
	require.NoError(t, seed.NewSeeder(db, catalog, nil).Run(context.Background()))
}

func TestHierarchyRepositories(t *testing.T) {
	db := testutil.NewDB(t)
	seedHierarchy(t, db)
	ctx := context.Background()

	objects := NewObjectRepository(db)
	sections := NewSectionRepository(db)
	parts := NewPartRepository(db)

	objs, err := objects.List(ctx)
	require.NoError(t, err)
	require.Len(t, objs, 2)
	assert.Equal(t, "OBJ-1", objs[0].Code)

	secs, err := sections.ListByObject(ctx, objs[1].ID)
	require.NoError(t, err)
	require.Len(t, secs, 2)
	assert.Equal(t, []int{1, 2}, []int{secs[0].OrderIndex, secs[1].OrderIndex})

	owner, err := objects.GetObjectOfSection(ctx, secs[1].ID)
	require.NoError(t, err)
	assert.Equal(t, objs[1].ID, owner.ID)
	assert.Equal(t, "Object two", owner.FullName)

	_, err = objects.GetObjectOfSection(ctx, 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	list, err := parts.ListBySection(ctx, secs[0].ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Text", list[0].Name)
	assert.Equal(t, "Album", list[2].Name)

	part := list[1]
	part.Status = models.PartStatusInProgress
	part.EndDate = utils.ParseDate("2024-07-01")
	part.AssigneeName = utils.NullableString("Petrov")
	require.NoError(t, parts.Update(ctx, &part))

	reloaded, err := parts.FindByID(ctx, part.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PartStatusInProgress, reloaded.Status)
	require.NotNil(t, reloaded.EndDate)
	assert.Equal(t, "2024-07-01", *utils.FormatDate(reloaded.EndDate))
	require.NotNil(t, reloaded.AssigneeName)
	assert.Equal(t, "Petrov", *reloaded.AssigneeName)
	assert.Equal(t, part.SectionID, reloaded.SectionID)
}

func TestCascadeDelete(t *testing.T) {
	db := testutil.NewDB(t)
	seedHierarchy(t, db)

	var obj models.ProjectObject
	require.NoError(t, db.Where("code = ?", "OBJ-1").First(&obj).Error)
	require.NoError(t, db.Delete(&obj).Error)

	var sections, parts int64
	require.NoError(t, db.Model(&models.ProjectSection{}).Count(&sections).Error)
	require.NoError(t, db.Model(&models.ProjectPart{}).Count(&parts).Error)
	assert.EqualValues(t, 2, sections)
	assert.EqualValues(t, 6, parts)
}
