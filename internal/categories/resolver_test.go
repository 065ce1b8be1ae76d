package categories

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ERUDITE137/shikhar-finance/internal/models"
)

func newTestResolver(seed ...models.Category) (*Resolver, *MemoryStore) {
	store := NewMemoryStore(seed...)
	resolver := NewResolver(store, nil)
	n := 0
	resolver.NewID = func() string {
		n++
		return string(rune('a' + n - 1))
	}
	return resolver, store
}

func TestResolveMatchesExistingBySubstring(t *testing.T) {
	resolver, store := newTestResolver(models.Category{ID: "cat-food", Name: "Food & Dining"})

	tests := []struct {
		name string
		hint string
	}{
		{name: "hint inside name", hint: "food"},
		{name: "case insensitive", hint: "FOOD"},
		{name: "name inside hint", hint: "food & dining out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := resolver.Resolve(tt.hint)
			require.NoError(t, err)
			assert.Equal(t, "cat-food", id)
		})
	}

	// Matching never creates anything.
	all, err := store.List()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestResolveCreatesOnMiss(t *testing.T) {
	resolver, store := newTestResolver()

	id, err := resolver.Resolve("travel")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	all, err := store.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
	created := all[0]
	assert.Equal(t, "Travel", created.Name)
	assert.Equal(t, models.CategoryTypeExpense, created.Type)
	assert.Equal(t, PaletteIcon("Travel"), created.Icon)
	assert.Equal(t, PaletteColor("Travel"), created.Color)

	// Resolving the same hint again reuses the created category.
	again, err := resolver.Resolve("travel")
	require.NoError(t, err)
	assert.Equal(t, id, again)
}

func TestResolveEmptyHintFallsBackToOther(t *testing.T) {
	resolver, store := newTestResolver()

	id, err := resolver.Resolve("")
	require.NoError(t, err)

	all, err := store.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
	other := all[0]
	assert.Equal(t, id, other.ID)
	assert.Equal(t, models.CategoryOther, other.Name)
	assert.Equal(t, models.CategoryTypeBoth, other.Type)
	assert.Equal(t, "📁", other.Icon)
	assert.Equal(t, "#6b7280", other.Color)

	// A second fallback reuses the same category.
	again, err := resolver.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, id, again)
}

func TestResolveForCommit(t *testing.T) {
	resolver, _ := newTestResolver(
		models.Category{ID: "cat-shopping", Name: "Shopping"},
		models.Category{ID: "cat-food", Name: "Food & Dining"},
	)

	t.Run("chosen name wins", func(t *testing.T) {
		id, err := resolver.ResolveForCommit("shopping", "Food & Dining")
		require.NoError(t, err)
		assert.Equal(t, "cat-shopping", id)
	})

	t.Run("suggestion used when no chosen name", func(t *testing.T) {
		id, err := resolver.ResolveForCommit("", "food & dining")
		require.NoError(t, err)
		assert.Equal(t, "cat-food", id)
	})

	t.Run("exact match only", func(t *testing.T) {
		// Substring hits are for the hint path; the commit path needs the
		// full name and falls back to Other otherwise.
		id, err := resolver.ResolveForCommit("shop", "")
		require.NoError(t, err)
		assert.NotEqual(t, "cat-shopping", id)
	})

	t.Run("no signal falls back to Other", func(t *testing.T) {
		id, err := resolver.ResolveForCommit("", "")
		require.NoError(t, err)
		assert.NotEmpty(t, id)
	})
}

func TestPaletteIsDeterministic(t *testing.T) {
	assert.Equal(t, PaletteIcon("Coffee"), PaletteIcon("coffee"))
	assert.Equal(t, PaletteColor("Coffee"), PaletteColor("COFFEE"))

	assert.Contains(t, categoryIcons, PaletteIcon("Groceries"))
	assert.Contains(t, categoryColors, PaletteColor("Groceries"))
}

func TestYAMLStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	store := NewYAMLStore(path)

	// Missing file reads as empty.
	all, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, all)

	first := models.Category{ID: "1", Name: "Travel", Icon: "✈️", Color: "#3b82f6", Type: models.CategoryTypeExpense}
	second := models.Category{ID: "2", Name: "Other", Icon: "📁", Color: "#6b7280", Type: models.CategoryTypeBoth}
	require.NoError(t, store.Create(first))
	require.NoError(t, store.Create(second))

	reopened := NewYAMLStore(path)
	all, err = reopened.List()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first, all[0])
	assert.Equal(t, second, all[1])
}
