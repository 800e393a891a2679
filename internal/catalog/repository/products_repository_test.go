package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breadlab/internal/testutil"
)

// Unit Tests

func TestNewMySQLRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func TestRepository_FindActive_SkipsInactiveAndDeleted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	_, err := db.Exec(`
		INSERT INTO Product (name, description, price, category, isActive, isDeleted)
		VALUES ('Sourdough', 'Our classic loaf', 8.00, 'loaves', 1, 0),
		       ('Rye', 'Dark and dense', 9.50, 'loaves', 1, 0),
		       ('Spelt', 'Retired recipe', 7.00, 'loaves', 0, 0),
		       ('Brioche', 'Gone for good', 6.00, 'pastries', 1, 1)
	`)
	require.NoError(t, err)

	products, err := repo.FindActive(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	names := []string{products[0].Name, products[1].Name}
	assert.Contains(t, names, "Sourdough")
	assert.Contains(t, names, "Rye")
}

func TestRepository_FindActive_EmptyTable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	products, err := repo.FindActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}
