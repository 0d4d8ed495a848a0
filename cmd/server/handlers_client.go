package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"template-renderer/internal/apperr"
	"template-renderer/internal/clientconfig"
	"template-renderer/internal/dto"
	"template-renderer/internal/model"
	"template-renderer/internal/sections"
)

func (app *application) createClientTemplateHandler(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateClientConfigurationRequest
	if err := app.readJSONBody(r, &req); err != nil {
		app.writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		app.writeError(w, r, apperr.Validation("%v", err))
		return
	}

	cfg, err := app.manager.Create(clientconfig.CreateParams{
		ClientID:    req.ClientID,
		Name:        req.Name,
		Description: req.Description,
		Style:       model.Style(req.Style),
		SectionIDs:  req.Sections,
		Company:     req.Company,
		Theme:       req.Theme,
		SectionData: req.CustomData,
	})
	if err != nil {
		app.writeError(w, r, err)
		return
	}
	app.writeJSON(w, http.StatusCreated, map[string]any{
		"message":       "Client configuration created",
		"configuration": cfg,
	})
}

func (app *application) listClientTemplatesHandler(w http.ResponseWriter, r *http.Request) {
	includeDisabled := r.URL.Query().Get("includeDisabled") == "true"
	configs, err := app.manager.List(includeDisabled)
	if err != nil {
		app.writeError(w, r, err)
		return
	}
	app.writeJSON(w, http.StatusOK, map[string]any{
		"count":   len(configs),
		"clients": configs,
	})
}

func (app *application) renderClientSiteHandler(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	if r.URL.Query().Get("multiPage") == "true" {
		http.Redirect(w, r, fmt.Sprintf("/api/v1/client-templates/%s/pages", clientID), http.StatusFound)
		return
	}
	html, err := app.sites.RenderSite(clientID, nil)
	if err != nil {
		app.writeError(w, r, err)
		return
	}
	app.writeHTML(w, html)
}

// renderClientSiteWithDataHandler renders the site with a caller-supplied
// overlay that is not persisted.
func (app *application) renderClientSiteWithDataHandler(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	var custom map[string]any
	if err := app.readJSONBody(r, &custom); err != nil {
		app.writeError(w, r, err)
		return
	}
	html, err := app.sites.RenderSite(clientID, custom)
	if err != nil {
		app.writeError(w, r, err)
		return
	}
	app.writeHTML(w, html)
}

func (app *application) renderClientPagesHandler(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	html, err := app.sites.RenderMultipageIndex(clientID)
	if err != nil {
		app.writeError(w, r, err)
		return
	}
	app.writeHTML(w, html)
}

// clientPagesInfoHandler describes the per-section pages available for a
// client without rendering them.
func (app *application) clientPagesInfoHandler(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	cfg, err := app.manager.Get(clientID)
	if err != nil {
		app.writeError(w, r, err)
		return
	}

	enabled := clientconfig.EnabledOrdered(cfg)
	pages := make([]map[string]any, 0, len(enabled))
	for _, s := range enabled {
		pages = append(pages, map[string]any{
			"id":          s.ID,
			"name":        sections.DisplayName(s.ID),
			"description": sections.Description(s.ID),
			"order":       s.Order,
			"url":         fmt.Sprintf("/api/v1/client-templates/%s/section/%s", clientID, s.ID),
		})
	}
	app.writeJSON(w, http.StatusOK, map[string]any{
		"clientId": clientID,
		"index":    fmt.Sprintf("/api/v1/client-templates/%s/pages", clientID),
		"pages":    pages,
	})
}

func (app *application) renderClientSectionHandler(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	sectionID := chi.URLParam(r, "sectionID")
	html, err := app.sites.RenderSection(clientID, sectionID, nil)
	if err != nil {
		app.writeError(w, r, err)
		return
	}
	app.writeHTML(w, html)
}

func (app *application) getClientConfigurationHandler(w http.ResponseWriter, r *http.Request) {
	cfg, err := app.manager.Get(chi.URLParam(r, "clientID"))
	if err != nil {
		app.writeError(w, r, err)
		return
	}
	app.writeJSON(w, http.StatusOK, cfg)
}

func (app *application) updateClientConfigurationHandler(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	var req dto.UpdateClientConfigurationRequest
	if err := app.readJSONBody(r, &req); err != nil {
		app.writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		app.writeError(w, r, apperr.Validation("%v", err))
		return
	}

	params := clientconfig.UpdateParams{
		Name:        req.Name,
		Description: req.Description,
		Sections:    req.Sections,
		Company:     req.Company,
		Theme:       req.Theme,
	}
	if req.Style != nil {
		style := model.Style(*req.Style)
		params.Style = &style
	}

	cfg, err := app.manager.Update(clientID, params)
	if err != nil {
		app.writeError(w, r, err)
		return
	}
	app.writeJSON(w, http.StatusOK, map[string]any{
		"message":       "Client configuration updated",
		"configuration": cfg,
	})
}

// deleteClientTemplateHandler is idempotent: deleting an unknown client
// still answers 200.
func (app *application) deleteClientTemplateHandler(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	if err := app.manager.Delete(clientID); err != nil && !apperr.IsNotFound(err) {
		app.writeError(w, r, err)
		return
	}
	app.writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Client %s deleted", clientID),
	})
}

// availableSectionsHandler exposes the static catalog grouped by category,
// with display labels for each category.
func (app *application) availableSectionsHandler(w http.ResponseWriter, r *http.Request) {
	byCategory := map[string][]model.Section{}
	for _, s := range sections.Catalog {
		byCategory[string(s.Category)] = append(byCategory[string(s.Category)], s)
	}
	labels := map[string]string{}
	for category, label := range sections.CategoryLabels {
		labels[string(category)] = label
	}
	app.writeJSON(w, http.StatusOK, map[string]any{
		"sections":       sections.Catalog,
		"categories":     byCategory,
		"categoryLabels": labels,
	})
}
