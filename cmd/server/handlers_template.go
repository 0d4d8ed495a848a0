package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"template-renderer/internal/apperr"
	"template-renderer/internal/renderer"
	"template-renderer/internal/storage"
)

// checkCategory validates the optional category path segment against the
// fixed enumeration. Template names resolve across categories either way;
// the segment exists for URL compatibility.
func checkCategory(r *http.Request) error {
	category := chi.URLParam(r, "category")
	if category != "" && !storage.ValidCategory(category) {
		return apperr.Validation("unknown template category %q", category)
	}
	return nil
}

func (app *application) listTemplatesHandler(w http.ResponseWriter, r *http.Request) {
	infos, err := app.templates.List()
	if err != nil {
		app.writeError(w, r, err)
		return
	}
	app.writeJSON(w, http.StatusOK, map[string]any{
		"count":     len(infos),
		"templates": infos,
	})
}

func (app *application) templateInfoHandler(w http.ResponseWriter, r *http.Request) {
	if err := checkCategory(r); err != nil {
		app.writeError(w, r, err)
		return
	}
	info, err := app.templates.Info(chi.URLParam(r, "project"))
	if err != nil {
		app.writeError(w, r, err)
		return
	}
	app.writeJSON(w, http.StatusOK, info)
}

// renderTemplateHandler serves the static and full modes, selected by the
// mode query parameter (default full).
func (app *application) renderTemplateHandler(w http.ResponseWriter, r *http.Request) {
	if err := checkCategory(r); err != nil {
		app.writeError(w, r, err)
		return
	}
	mode := renderer.RenderMode(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = renderer.ModeFull
	}
	html, err := app.legacy.Render(chi.URLParam(r, "project"), mode, nil)
	if err != nil {
		app.writeError(w, r, err)
		return
	}
	app.writeHTML(w, html)
}

// renderTemplatePreviewHandler renders with the request body layered over
// static and custom data, without persisting anything.
func (app *application) renderTemplatePreviewHandler(w http.ResponseWriter, r *http.Request) {
	if err := checkCategory(r); err != nil {
		app.writeError(w, r, err)
		return
	}
	var previewData map[string]any
	if err := app.readJSONBody(r, &previewData); err != nil {
		app.writeError(w, r, err)
		return
	}
	html, err := app.legacy.Render(chi.URLParam(r, "project"), renderer.ModePreview, previewData)
	if err != nil {
		app.writeError(w, r, err)
		return
	}
	app.writeHTML(w, html)
}

func (app *application) getStaticDataHandler(w http.ResponseWriter, r *http.Request) {
	if err := checkCategory(r); err != nil {
		app.writeError(w, r, err)
		return
	}
	data, err := app.legacy.StaticData(chi.URLParam(r, "project"))
	if err != nil {
		app.writeError(w, r, err)
		return
	}
	app.writeJSON(w, http.StatusOK, data)
}

func (app *application) getCustomDataHandler(w http.ResponseWriter, r *http.Request) {
	if err := checkCategory(r); err != nil {
		app.writeError(w, r, err)
		return
	}
	data, err := app.legacy.CustomData(chi.URLParam(r, "project"))
	if err != nil {
		app.writeError(w, r, err)
		return
	}
	app.writeJSON(w, http.StatusOK, data)
}

func (app *application) saveCustomDataHandler(w http.ResponseWriter, r *http.Request) {
	if err := checkCategory(r); err != nil {
		app.writeError(w, r, err)
		return
	}
	var data map[string]any
	if err := app.readJSONBody(r, &data); err != nil {
		app.writeError(w, r, err)
		return
	}
	if err := app.legacy.SaveCustomData(chi.URLParam(r, "project"), data); err != nil {
		app.writeError(w, r, err)
		return
	}
	app.writeJSON(w, http.StatusOK, map[string]string{
		"message": "Custom data saved",
	})
}
