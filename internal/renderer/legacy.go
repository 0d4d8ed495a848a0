package renderer

import (
	"time"

	"go.uber.org/zap"

	"template-renderer/internal/apperr"
	"template-renderer/internal/metrics"
	"template-renderer/internal/storage"
)

// RenderMode selects which data documents feed a template-directory render.
type RenderMode string

const (
	// ModeStatic renders with the base data document only.
	ModeStatic RenderMode = "static"
	// ModeFull overlays the stored custom data onto the base data.
	ModeFull RenderMode = "full"
	// ModePreview additionally overlays caller-supplied data without
	// persisting it.
	ModePreview RenderMode = "preview"
)

// TemplateRenderer renders standalone template directories, the flow that
// predates per-client configurations.
type TemplateRenderer struct {
	engine    *Engine
	templates *storage.TemplateStore
	log       *zap.Logger
}

// NewTemplateRenderer wires a TemplateRenderer over its engine and store.
func NewTemplateRenderer(engine *Engine, templates *storage.TemplateStore, log *zap.Logger) *TemplateRenderer {
	return &TemplateRenderer{engine: engine, templates: templates, log: log}
}

// Render executes the named template with data selected by mode.
func (r *TemplateRenderer) Render(name string, mode RenderMode, previewData map[string]any) (string, error) {
	defer metrics.ObserveRender(string(mode), time.Now())

	src, err := r.templates.TemplateSource(name)
	if err != nil {
		return "", err
	}
	data, err := r.dataForMode(name, mode, previewData)
	if err != nil {
		return "", err
	}

	r.log.Debug("rendering template",
		zap.String("template", name),
		zap.String("mode", string(mode)))
	return r.engine.RenderSource(src, data)
}

func (r *TemplateRenderer) dataForMode(name string, mode RenderMode, previewData map[string]any) (map[string]any, error) {
	static, err := r.templates.StaticData(name)
	if err != nil {
		return nil, err
	}

	switch mode {
	case ModeStatic:
		return static, nil
	case ModeFull:
		custom, err := r.templates.CustomData(name)
		if err != nil {
			return nil, err
		}
		return DeepMerge(static, custom), nil
	case ModePreview:
		custom, err := r.templates.CustomData(name)
		if err != nil {
			return nil, err
		}
		merged := DeepMerge(static, custom)
		if previewData != nil {
			merged = DeepMerge(merged, previewData)
		}
		return merged, nil
	default:
		return nil, apperr.Validation("invalid render mode %q", mode)
	}
}

// StaticData exposes the template's base data document.
func (r *TemplateRenderer) StaticData(name string) (map[string]any, error) {
	return r.templates.StaticData(name)
}

// CustomData exposes the template's overlay document.
func (r *TemplateRenderer) CustomData(name string) (map[string]any, error) {
	return r.templates.CustomData(name)
}

// SaveCustomData replaces the overlay document for an existing template.
func (r *TemplateRenderer) SaveCustomData(name string, data map[string]any) error {
	return r.templates.SaveCustomData(name, data)
}
