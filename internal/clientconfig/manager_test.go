package clientconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"template-renderer/internal/apperr"
	"template-renderer/internal/logger"
	"template-renderer/internal/model"
	"template-renderer/internal/storage"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	dir := t.TempDir()
	log := logger.NewNop()
	configs, err := storage.NewConfigStore(dir, log)
	require.NoError(t, err)
	images, err := storage.NewImageStore(dir, 1<<20, log)
	require.NoError(t, err)
	return NewManager(configs, images, log)
}

func createParams(clientID string) CreateParams {
	return CreateParams{
		ClientID:   clientID,
		Style:      model.StyleModern,
		SectionIDs: []string{"hero", "about", "contact"},
		Company:    model.Company{Name: "Acme Flowers"},
	}
}

func TestCreateBuildsSectionsFromCatalog(t *testing.T) {
	m := newTestManager(t)

	cfg, err := m.Create(createParams("acme"))
	require.NoError(t, err)

	assert.Equal(t, "Acme Flowers", cfg.Name, "name falls back to company name")
	require.Len(t, cfg.Sections, 3)
	assert.Equal(t, "hero", cfg.Sections[0].ID)
	assert.Equal(t, 1, cfg.Sections[0].Order)
	assert.True(t, cfg.Sections[0].Enabled)
	assert.NotEmpty(t, cfg.Sections[0].Data, "default payload applied")
	assert.Equal(t, model.StyleModern, cfg.Style)
	assert.NotEmpty(t, cfg.Theme.Colors.Primary, "theme derived from style")
}

func TestCreateFailsListingMissingRequiredByName(t *testing.T) {
	m := newTestManager(t)

	p := createParams("acme")
	p.SectionIDs = []string{"about", "contact"}
	_, err := m.Create(p)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Contains(t, err.Error(), "Hero Section")
}

func TestCreateHonorsSectionDataOverride(t *testing.T) {
	m := newTestManager(t)

	p := createParams("acme")
	p.SectionData = map[string]map[string]any{
		"hero": {"title": "Custom Title"},
	}
	cfg, err := m.Create(p)
	require.NoError(t, err)
	assert.Equal(t, "Custom Title", cfg.Sections[0].Data["title"])
}

func TestCreateRejectsUnknownStyle(t *testing.T) {
	m := newTestManager(t)

	p := createParams("acme")
	p.Style = "baroque"
	_, err := m.Create(p)
	assert.True(t, apperr.IsValidation(err))
}

func TestUpdateShallowMergesAndBumpsTimestamp(t *testing.T) {
	m := newTestManager(t)

	cfg, err := m.Create(createParams("acme"))
	require.NoError(t, err)
	before := cfg.UpdatedAt

	time.Sleep(5 * time.Millisecond)
	newName := "Acme Rebranded"
	updated, err := m.Update("acme", UpdateParams{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "Acme Rebranded", updated.Name)
	assert.Equal(t, model.StyleModern, updated.Style, "untouched fields survive")
	assert.True(t, updated.UpdatedAt.After(before))
}

func TestUpdateMissingClientIsNotFound(t *testing.T) {
	m := newTestManager(t)

	name := "x"
	_, err := m.Update("ghost", UpdateParams{Name: &name})
	assert.True(t, apperr.IsNotFound(err))
}

func TestListFiltersDisabledSections(t *testing.T) {
	m := newTestManager(t)

	cfg, err := m.Create(createParams("acme"))
	require.NoError(t, err)
	cfg.Sections[1].Enabled = false
	_, err = m.Update("acme", UpdateParams{Sections: cfg.Sections})
	require.NoError(t, err)

	visible, err := m.List(false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Len(t, visible[0].Sections, 2)

	all, err := m.List(true)
	require.NoError(t, err)
	assert.Len(t, all[0].Sections, 3)
}

func TestListOmitsFullyDisabledConfigurations(t *testing.T) {
	m := newTestManager(t)

	cfg, err := m.Create(createParams("acme"))
	require.NoError(t, err)
	for i := range cfg.Sections {
		cfg.Sections[i].Enabled = false
	}
	_, err = m.Update("acme", UpdateParams{Sections: cfg.Sections})
	require.NoError(t, err)

	visible, err := m.List(false)
	require.NoError(t, err)
	assert.Empty(t, visible)

	all, err := m.List(true)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDeleteRemovesConfiguration(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Create(createParams("acme"))
	require.NoError(t, err)

	require.NoError(t, m.Delete("acme"))

	_, err = m.Get("acme")
	assert.True(t, apperr.IsNotFound(err))

	err = m.Delete("acme")
	assert.True(t, apperr.IsNotFound(err))
}

func TestEnabledOrderedIsStable(t *testing.T) {
	cfg := &model.ClientConfiguration{
		Sections: []model.SectionConfiguration{
			{ID: "c", Enabled: true, Order: 2},
			{ID: "a", Enabled: true, Order: 1},
			{ID: "b", Enabled: false, Order: 1},
			{ID: "d", Enabled: true, Order: 2},
		},
	}
	ordered := EnabledOrdered(cfg)
	require.Len(t, ordered, 3)
	assert.Equal(t, "a", ordered[0].ID)
	assert.Equal(t, "c", ordered[1].ID)
	assert.Equal(t, "d", ordered[2].ID)
}
