package categories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCategoriesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS categories (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE,
  description TEXT,
  emoji TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func TestCategoriesList_orderedByName(t *testing.T) {
	db := setupCategoriesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	for _, c := range []CreateCategoryDTO{
		{Name: "Masks", Slug: "masks"},
		{Name: "Accessories", Slug: "accessories"},
		{Name: "Costumes", Slug: "costumes"},
	} {
		_, err := repo.Create(ctx, c)
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Accessories", list[0].Name)
	assert.Equal(t, "Costumes", list[1].Name)
	assert.Equal(t, "Masks", list[2].Name)
}

func TestCategoriesFindOrCreate_idempotentOnSlug(t *testing.T) {
	db := setupCategoriesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created, existed, err := repo.FindOrCreate(ctx, CreateCategoryDTO{Name: "Costumes", Slug: "costumes"})
	require.NoError(t, err)
	assert.False(t, existed)

	again, existed, err := repo.FindOrCreate(ctx, CreateCategoryDTO{Name: "Renamed", Slug: "costumes"})
	require.NoError(t, err)
	assert.True(t, existed)
	assert.Equal(t, created.ID, again.ID)
	assert.Equal(t, "Costumes", again.Name)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCategoriesFindBySlug_missing(t *testing.T) {
	db := setupCategoriesTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindBySlug(context.Background(), "nope")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
