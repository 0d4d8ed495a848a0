package renderer

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"template-renderer/internal/apperr"
	"template-renderer/internal/clientconfig"
	"template-renderer/internal/metrics"
	"template-renderer/internal/model"
	"template-renderer/internal/resolver"
	"template-renderer/internal/sections"
	"template-renderer/internal/storage"
)

// SiteRenderer assembles a client's configured sections into full pages.
type SiteRenderer struct {
	engine  *Engine
	manager *clientconfig.Manager
	images  *storage.ImageStore
	log     *zap.Logger
}

// NewSiteRenderer wires a SiteRenderer over its collaborators.
func NewSiteRenderer(engine *Engine, manager *clientconfig.Manager, images *storage.ImageStore, log *zap.Logger) *SiteRenderer {
	return &SiteRenderer{engine: engine, manager: manager, images: images, log: log}
}

// RenderSite renders the client's full single-page site. Enabled sections
// are rendered in order; custom overlays top-level data keys.
func (r *SiteRenderer) RenderSite(clientID string, custom map[string]any) (string, error) {
	defer metrics.ObserveRender("site", time.Now())

	cfg, res, err := r.prepare(clientID)
	if err != nil {
		return "", err
	}

	enabled := clientconfig.EnabledOrdered(cfg)
	processed := r.processSections(enabled, res)

	data := baseData(clientID, cfg, res, processed, processed, navigationData(enabled))
	overlayCustom(data, custom, res)

	r.log.Debug("rendering site",
		zap.String("clientId", clientID),
		zap.Int("sections", len(processed)))
	return r.engine.Render(cfg.Style, data)
}

// RenderSection renders one section as a standalone page. The section may
// be disabled in the configuration; unknown ids fail with not found.
func (r *SiteRenderer) RenderSection(clientID, sectionID string, custom map[string]any) (string, error) {
	defer metrics.ObserveRender("section", time.Now())

	cfg, res, err := r.prepare(clientID)
	if err != nil {
		return "", err
	}

	var requested *model.SectionConfiguration
	for i := range cfg.Sections {
		if cfg.Sections[i].ID == sectionID {
			requested = &cfg.Sections[i]
			break
		}
	}
	if requested == nil {
		return "", apperr.NotFound("section %s not found for client %s", sectionID, clientID)
	}

	enabled := clientconfig.EnabledOrdered(cfg)
	all := r.processSections(enabled, res)
	single := r.processSections([]model.SectionConfiguration{{
		ID:      sectionID,
		Enabled: true,
		Order:   requested.Order,
		Data:    requested.Data,
	}}, res)

	data := baseData(clientID, cfg, res, single, all, navigationData([]model.SectionConfiguration{*requested}))
	data["isMultiPage"] = true
	data["currentSectionId"] = sectionID
	overlayCustom(data, custom, res)

	return r.engine.Render(cfg.Style, data)
}

// RenderMultipageIndex renders an index page linking every enabled section
// as its own page.
func (r *SiteRenderer) RenderMultipageIndex(clientID string) (string, error) {
	defer metrics.ObserveRender("index", time.Now())

	cfg, res, err := r.prepare(clientID)
	if err != nil {
		return "", err
	}

	enabled := clientconfig.EnabledOrdered(cfg)
	all := r.processSections(enabled, res)

	links := make([]any, 0, len(enabled))
	for _, s := range enabled {
		links = append(links, map[string]any{
			"id":   s.ID,
			"text": sections.DisplayName(s.ID),
			"href": fmt.Sprintf("/api/v1/client-templates/%s/section/%s", clientID, s.ID),
		})
	}
	index := []map[string]any{{
		"id":      "index",
		"enabled": true,
		"order":   0,
		"data":    map[string]any{"title": "Sections", "links": links},
	}}

	data := baseData(clientID, cfg, res, index, all, navigationData(enabled))
	data["isMultiPage"] = true
	data["currentSectionId"] = "index"

	return r.engine.Render(cfg.Style, data)
}

// prepare loads the configuration and builds a resolver over the client's
// uploaded-image pool.
func (r *SiteRenderer) prepare(clientID string) (*model.ClientConfiguration, *resolver.Resolver, error) {
	cfg, err := r.manager.Get(clientID)
	if err != nil {
		return nil, nil, err
	}
	pool, err := r.images.ListImages(clientID, "")
	if err != nil {
		return nil, nil, err
	}
	return cfg, resolver.New(clientID, pool), nil
}

// processSections runs the image resolver over each section's data and
// applies the per-section assignment passes.
func (r *SiteRenderer) processSections(list []model.SectionConfiguration, res *resolver.Resolver) []map[string]any {
	out := make([]map[string]any, 0, len(list))
	for _, s := range list {
		data := res.ResolveMap(s.Data)
		if data == nil {
			data = map[string]any{}
		}
		switch s.ID {
		case "products":
			if items, ok := data["products"].([]any); ok {
				data["products"] = res.AssignToProducts(items)
			}
		case "testimonials":
			if items, ok := data["reviews"].([]any); ok {
				data["reviews"] = res.AssignToTestimonials(items)
			}
		case "gallery":
			if items, ok := data["images"].([]any); ok {
				data["images"] = res.AssignToGallery(items)
			}
		}
		out = append(out, map[string]any{
			"id":      s.ID,
			"enabled": s.Enabled,
			"order":   s.Order,
			"data":    data,
		})
	}
	return out
}

// baseData assembles the template context shared by every render path.
func baseData(clientID string, cfg *model.ClientConfiguration, res *resolver.Resolver, active, all []map[string]any, navigation map[string]any) map[string]any {
	company := res.ResolveMap(toJSONMap(cfg.Company))
	return map[string]any{
		"company":     company,
		"style":       string(cfg.Style),
		"theme":       toJSONMap(cfg.Theme),
		"sections":    active,
		"allSections": all,
		"footer":      footerData(cfg),
		"navigation":  navigation,
		"currentYear": time.Now().Year(),
		"clientId":    clientID,
	}
}

// overlayCustom resolves image references in the custom payload and merges
// its top-level keys over the assembled data.
func overlayCustom(data, custom map[string]any, res *resolver.Resolver) {
	if len(custom) == 0 {
		return
	}
	for k, v := range res.ResolveMap(custom) {
		data[k] = v
	}
}

// footerData synthesizes the footer block. It is computed per render and
// never stored.
func footerData(cfg *model.ClientConfiguration) map[string]any {
	company := cfg.Company.Name
	email := "info@" + strings.ReplaceAll(strings.ToLower(company), " ", "") + ".com"
	return map[string]any{
		"tagline": cfg.Company.Description,
		"social": []any{
			map[string]any{"name": "Facebook", "href": "#"},
			map[string]any{"name": "Instagram", "href": "#"},
			map[string]any{"name": "Twitter", "href": "#"},
		},
		"contact": map[string]any{
			"phone":   "+1 (555) 123-4567",
			"email":   email,
			"address": "456 Main Street",
		},
		"copyright": fmt.Sprintf("© %d %s. All rights reserved.", time.Now().Year(), company),
	}
}

// navigationData builds the menu from the sections being shown, labeling
// entries via the catalog display names.
func navigationData(list []model.SectionConfiguration) map[string]any {
	menu := make([]any, 0, len(list))
	for _, s := range list {
		menu = append(menu, map[string]any{
			"text": sections.DisplayName(s.ID),
			"href": "#" + s.ID,
		})
	}
	return map[string]any{
		"menu": menu,
		"cta":  map[string]any{"text": "Contact", "href": "#contact"},
	}
}

// toJSONMap converts a struct to the same map shape its JSON encoding has,
// so templates address struct-backed and file-backed data uniformly.
func toJSONMap(v any) map[string]any {
	b, err := json.Marshal(v)
	if err != nil {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return map[string]any{}
	}
	return m
}
