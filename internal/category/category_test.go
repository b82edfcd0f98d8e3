package category_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-quick-add/internal/category"
	"smart-quick-add/internal/model"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
categories:
  - id: work
    name: Work
    keywords: [work, office]
  - id: home
    name: Home Chores
`)

	defs, err := category.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, model.CategoryDefinition{ID: "work", Name: "Work", Keywords: []string{"work", "office"}}, defs[0])
	assert.Empty(t, defs[1].Keywords)
	assert.Equal(t, []string{"Home Chores", "home chores", "home", "chores"}, defs[1].MatchKeywords())
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := category.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = category.LoadFile(writeFile(t, "categories: [unclosed"))
	assert.Error(t, err)

	_, err = category.LoadFile(writeFile(t, "categories:\n  - name: NoID\n"))
	assert.ErrorIs(t, err, category.ErrMissingID)

	_, err = category.LoadFile(writeFile(t, "categories:\n  - id: a\n  - id: a\n"))
	assert.ErrorIs(t, err, category.ErrDuplicateID)
}

func TestCatalog(t *testing.T) {
	c, err := category.NewFromConfig("")
	require.NoError(t, err)

	defs, err := c.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, category.Defaults, defs)

	// List hands out copies.
	defs[0].Keywords[0] = "changed"
	again, _ := c.List(context.Background())
	assert.Equal(t, "work", again[0].Keywords[0])

	_, err = category.NewCatalog([]model.CategoryDefinition{{Name: "no id"}})
	assert.ErrorIs(t, err, category.ErrMissingID)
}
