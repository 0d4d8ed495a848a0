// Package renderer turns client configurations and standalone templates
// into HTML. Templates are parsed fresh for every render so edits on disk
// take effect immediately and no shared mutable state leaks across renders.
package renderer

import (
	"bytes"
	"html/template"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"template-renderer/internal/apperr"
	"template-renderer/internal/model"
	"template-renderer/pkg/fsutils"
)

// partialGroups are the fragment directories loaded under views/partials.
// A missing group directory is skipped, not an error.
var partialGroups = []string{"components", "sections", "styles", "scripts"}

const (
	layoutName        = "layout"
	defaultLayoutFile = "dynamic"
	templateExt       = ".tmpl"
)

// Engine loads layouts and partials from a views directory.
type Engine struct {
	viewsPath string
	log       *zap.Logger
}

// NewEngine creates an Engine reading templates under viewsPath.
func NewEngine(viewsPath string, log *zap.Logger) *Engine {
	return &Engine{viewsPath: viewsPath, log: log}
}

// layoutPathForStyle picks the style-specific layout when present, falling
// back to the default layout.
func (e *Engine) layoutPathForStyle(style model.Style) string {
	styled := filepath.Join(e.viewsPath, "layouts", string(style)+templateExt)
	if fsutils.FileExists(styled) {
		return styled
	}
	return filepath.Join(e.viewsPath, "layouts", defaultLayoutFile+templateExt)
}

// load parses the layout for a style together with every partial group.
// Partials are addressable as "<group>/<name>", and a "partial" helper
// dispatches to them by computed name so section partials can be selected
// from data.
func (e *Engine) load(style model.Style) (*template.Template, error) {
	layoutPath := e.layoutPathForStyle(style)
	src, err := fsutils.ReadText(layoutPath)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.NotFound("layout not found for style %s", style)
		}
		return nil, err
	}

	root := template.New(layoutName)
	funcs := helperFuncs()
	funcs["partial"] = partialDispatch(root)
	root.Funcs(funcs)

	if _, err := root.Parse(src); err != nil {
		return nil, apperr.Render(err, "failed to parse layout %s", layoutPath)
	}

	for _, group := range partialGroups {
		dir := filepath.Join(e.viewsPath, "partials", group)
		entries, err := fsutils.ListDir(dir)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), templateExt) {
				continue
			}
			content, err := fsutils.ReadText(filepath.Join(dir, entry.Name()))
			if err != nil {
				return nil, err
			}
			name := group + "/" + strings.TrimSuffix(entry.Name(), templateExt)
			if _, err := root.New(name).Parse(content); err != nil {
				return nil, apperr.Render(err, "failed to parse partial %s", name)
			}
		}
	}
	return root, nil
}

// Render executes the layout for a style against the given data.
func (e *Engine) Render(style model.Style, data map[string]any) (string, error) {
	root, err := e.load(style)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := root.ExecuteTemplate(&buf, layoutName, data); err != nil {
		return "", apperr.Render(err, "layout execution failed for style %s", style)
	}
	return buf.String(), nil
}

// RenderSource compiles and executes standalone template markup, as used by
// the template-directory render modes. The helper set matches layouts, with
// partial dispatch limited to the compiled source itself.
func (e *Engine) RenderSource(src string, data map[string]any) (string, error) {
	root := template.New("standalone")
	funcs := helperFuncs()
	funcs["partial"] = partialDispatch(root)
	root.Funcs(funcs)

	if _, err := root.Parse(src); err != nil {
		return "", apperr.Render(err, "failed to parse template")
	}
	var buf bytes.Buffer
	if err := root.ExecuteTemplate(&buf, "standalone", data); err != nil {
		return "", apperr.Render(err, "template execution failed")
	}
	return buf.String(), nil
}

// partialDispatch builds the helper that renders an associated template by
// name. Unknown names render as empty, so layouts can probe for optional
// fragments such as per-section partials.
func partialDispatch(root *template.Template) func(string, any) (template.HTML, error) {
	return func(name string, data any) (template.HTML, error) {
		if root.Lookup(name) == nil {
			return "", nil
		}
		var buf bytes.Buffer
		if err := root.ExecuteTemplate(&buf, name, data); err != nil {
			return "", err
		}
		return template.HTML(buf.String()), nil
	}
}
