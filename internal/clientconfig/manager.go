// Package clientconfig holds the business rules for client configurations,
// sitting between the HTTP handlers and the JSON file stores.
package clientconfig

import (
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"template-renderer/internal/apperr"
	"template-renderer/internal/model"
	"template-renderer/internal/sections"
	"template-renderer/internal/storage"
	"template-renderer/pkg/fsutils"
)

// Manager creates, updates, and removes client configurations.
type Manager struct {
	configs *storage.ConfigStore
	images  *storage.ImageStore
	log     *zap.Logger
}

// NewManager wires a Manager over its stores.
func NewManager(configs *storage.ConfigStore, images *storage.ImageStore, log *zap.Logger) *Manager {
	return &Manager{configs: configs, images: images, log: log}
}

// CreateParams carries the validated input for Create.
type CreateParams struct {
	ClientID    string
	Name        string
	Description string
	Style       model.Style
	SectionIDs  []string
	Company     model.Company
	Theme       *model.Theme
	// SectionData optionally overrides the default payload per section id.
	SectionData map[string]map[string]any
}

// Create builds and persists a configuration. Every section flagged required
// in the catalog must be among the requested ids. Creating over an existing
// client id replaces the stored configuration.
func (m *Manager) Create(p CreateParams) (*model.ClientConfiguration, error) {
	if err := fsutils.ValidateName(p.ClientID); err != nil {
		return nil, err
	}
	if !model.ValidStyle(string(p.Style)) {
		return nil, apperr.Validation("unknown style %q", p.Style)
	}

	var missing []string
	for _, required := range sections.Required() {
		if !containsString(p.SectionIDs, required.ID) {
			missing = append(missing, required.Name)
		}
	}
	if len(missing) > 0 {
		return nil, apperr.Validation("missing required sections: %s", strings.Join(missing, ", "))
	}

	configured := make([]model.SectionConfiguration, 0, len(p.SectionIDs))
	for i, id := range p.SectionIDs {
		order := i + 1
		if info, ok := sections.ByID(id); ok {
			order = info.Order
		}
		data := p.SectionData[id]
		if data == nil {
			data = sections.DefaultData(id)
		}
		configured = append(configured, model.SectionConfiguration{
			ID:      id,
			Enabled: true,
			Order:   order,
			Data:    data,
		})
	}

	theme := sections.ThemeForStyle(p.Style)
	if p.Theme != nil {
		theme = *p.Theme
	}

	name := p.Name
	if name == "" {
		name = p.Company.Name
	}

	now := time.Now()
	cfg := &model.ClientConfiguration{
		ClientID:    p.ClientID,
		Name:        name,
		Description: p.Description,
		Style:       p.Style,
		Sections:    configured,
		Company:     p.Company,
		Theme:       theme,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := m.configs.Save(cfg); err != nil {
		return nil, err
	}
	m.log.Info("created client configuration",
		zap.String("clientId", p.ClientID),
		zap.String("style", string(p.Style)),
		zap.Int("sections", len(configured)))
	return cfg, nil
}

// UpdateParams carries the fields Update may replace. Nil pointers and nil
// slices mean "leave as is".
type UpdateParams struct {
	Name        *string
	Description *string
	Style       *model.Style
	Sections    []model.SectionConfiguration
	Company     *model.Company
	Theme       *model.Theme
}

// Update shallow-merges the supplied top-level fields over the stored
// configuration and refreshes the update timestamp. Required-section rules
// are not re-checked here.
func (m *Manager) Update(clientID string, p UpdateParams) (*model.ClientConfiguration, error) {
	cfg, err := m.configs.Load(clientID)
	if err != nil {
		return nil, err
	}

	if p.Name != nil {
		cfg.Name = *p.Name
	}
	if p.Description != nil {
		cfg.Description = *p.Description
	}
	if p.Style != nil {
		if !model.ValidStyle(string(*p.Style)) {
			return nil, apperr.Validation("unknown style %q", *p.Style)
		}
		cfg.Style = *p.Style
	}
	if p.Sections != nil {
		cfg.Sections = p.Sections
	}
	if p.Company != nil {
		cfg.Company = *p.Company
	}
	if p.Theme != nil {
		cfg.Theme = *p.Theme
	}
	cfg.UpdatedAt = time.Now()

	if err := m.configs.Save(cfg); err != nil {
		return nil, err
	}
	m.log.Info("updated client configuration", zap.String("clientId", clientID))
	return cfg, nil
}

// Get loads one configuration by client id.
func (m *Manager) Get(clientID string) (*model.ClientConfiguration, error) {
	return m.configs.Load(clientID)
}

// List returns all configurations. When includeDisabled is false, each
// configuration's section list is narrowed to its enabled sections and
// configurations with nothing enabled are omitted entirely.
func (m *Manager) List(includeDisabled bool) ([]*model.ClientConfiguration, error) {
	configs, err := m.configs.List()
	if err != nil {
		return nil, err
	}
	if includeDisabled {
		return configs, nil
	}
	out := make([]*model.ClientConfiguration, 0, len(configs))
	for _, cfg := range configs {
		cfg.Sections = EnabledOrdered(cfg)
		if len(cfg.Sections) == 0 {
			continue
		}
		out = append(out, cfg)
	}
	return out, nil
}

// Delete removes the configuration and, best effort, the client's uploaded
// images. A failure cleaning up images does not fail the delete.
func (m *Manager) Delete(clientID string) error {
	if _, err := m.configs.Load(clientID); err != nil {
		return err
	}
	if err := m.configs.Delete(clientID); err != nil {
		return err
	}
	if err := m.images.DeleteAllForClient(clientID); err != nil {
		m.log.Warn("failed to remove uploaded images during client delete",
			zap.String("clientId", clientID), zap.Error(err))
	}
	m.log.Info("deleted client configuration", zap.String("clientId", clientID))
	return nil
}

// EnabledOrdered returns the configuration's enabled sections in ascending
// order. The sort is stable so equal orders keep their stored position.
func EnabledOrdered(cfg *model.ClientConfiguration) []model.SectionConfiguration {
	enabled := make([]model.SectionConfiguration, 0, len(cfg.Sections))
	for _, s := range cfg.Sections {
		if s.Enabled {
			enabled = append(enabled, s)
		}
	}
	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Order < enabled[j].Order
	})
	return enabled
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
