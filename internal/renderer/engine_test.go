package renderer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"template-renderer/internal/apperr"
	"template-renderer/internal/logger"
	"template-renderer/internal/model"
)

func writeViews(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func TestEngineStyleLayoutSelection(t *testing.T) {
	views := writeViews(t, map[string]string{
		"layouts/modern.tmpl":  "modern:{{.clientId}}",
		"layouts/dynamic.tmpl": "dynamic:{{.clientId}}",
	})
	e := NewEngine(views, logger.NewNop())

	out, err := e.Render(model.StyleModern, map[string]any{"clientId": "acme"})
	require.NoError(t, err)
	assert.Equal(t, "modern:acme", out)

	out, err = e.Render(model.StyleClassic, map[string]any{"clientId": "acme"})
	require.NoError(t, err)
	assert.Equal(t, "dynamic:acme", out, "missing style layout falls back")
}

func TestEngineMissingLayoutsIsNotFound(t *testing.T) {
	e := NewEngine(t.TempDir(), logger.NewNop())

	_, err := e.Render(model.StyleModern, nil)
	assert.True(t, apperr.IsNotFound(err))
}

func TestEnginePartialDispatch(t *testing.T) {
	views := writeViews(t, map[string]string{
		"layouts/dynamic.tmpl":         `{{range .sections}}{{partial (printf "sections/%s" .id) .data}}{{end}}`,
		"partials/sections/hero.tmpl":  "<h1>{{.title}}</h1>",
		"partials/sections/about.tmpl": "<p>{{.text}}</p>",
	})
	e := NewEngine(views, logger.NewNop())

	out, err := e.Render(model.StyleClassic, map[string]any{
		"sections": []any{
			map[string]any{"id": "hero", "data": map[string]any{"title": "Hi"}},
			map[string]any{"id": "about", "data": map[string]any{"text": "Us"}},
			map[string]any{"id": "ghost", "data": map[string]any{}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "<h1>Hi</h1><p>Us</p>", out, "unknown partial renders empty")
}

func TestEngineMissingPartialGroupsSkipped(t *testing.T) {
	views := writeViews(t, map[string]string{
		"layouts/dynamic.tmpl":              `{{partial "components/navigation" .}}`,
		"partials/components/navigation.tmpl": "<nav></nav>",
	})
	e := NewEngine(views, logger.NewNop())

	out, err := e.Render(model.StyleClassic, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "<nav></nav>", out)
}

func TestEngineHelpersAvailableInLayout(t *testing.T) {
	views := writeViews(t, map[string]string{
		"layouts/dynamic.tmpl": `{{formatPrice .price}}|{{truncate .text 4}}|{{range times 2}}x{{end}}`,
	})
	e := NewEngine(views, logger.NewNop())

	out, err := e.Render(model.StyleClassic, map[string]any{
		"price": 9.5,
		"text":  "abcdefgh",
	})
	require.NoError(t, err)
	assert.Equal(t, "$9.50|abcd...|xx", out)
}

func TestEngineRenderSource(t *testing.T) {
	e := NewEngine(t.TempDir(), logger.NewNop())

	out, err := e.RenderSource("<h1>{{.title}}</h1>", map[string]any{"title": "Standalone"})
	require.NoError(t, err)
	assert.Equal(t, "<h1>Standalone</h1>", out)

	_, err = e.RenderSource("{{broken", nil)
	kind, ok := apperr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindRender, kind)
}
