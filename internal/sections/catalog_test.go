package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"template-renderer/internal/model"
)

func TestCatalogShape(t *testing.T) {
	assert.Len(t, Catalog, 10)

	seen := map[string]bool{}
	for _, s := range Catalog {
		assert.False(t, seen[s.ID], "duplicate section id %s", s.ID)
		seen[s.ID] = true
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Template)
		assert.Greater(t, s.Order, 0)
	}
}

func TestRequiredSections(t *testing.T) {
	required := Required()
	require.Len(t, required, 1)
	assert.Equal(t, "hero", required[0].ID)
}

func TestByID(t *testing.T) {
	s, ok := ByID("gallery")
	require.True(t, ok)
	assert.Equal(t, "gallery", s.ID)

	_, ok = ByID("nonexistent")
	assert.False(t, ok)
}

func TestDisplayNameFallsBackToID(t *testing.T) {
	assert.Equal(t, "Home", DisplayName("hero"))
	assert.Equal(t, "custom-block", DisplayName("custom-block"))
}

func TestDefaultDataCoversEverySection(t *testing.T) {
	for _, s := range Catalog {
		data := DefaultData(s.ID)
		assert.NotEmpty(t, data, "section %s has no default payload", s.ID)
	}
	assert.Empty(t, DefaultData("nonexistent"))
}

func TestThemeForStyle(t *testing.T) {
	classic := ThemeForStyle(model.StyleClassic)
	assert.Equal(t, "340 82% 52%", classic.Colors.Primary)

	modern := ThemeForStyle(model.StyleModern)
	assert.NotEqual(t, classic.Colors.Primary, modern.Colors.Primary)

	fallback := ThemeForStyle(model.Style("unknown"))
	assert.Equal(t, classic, fallback)
}
