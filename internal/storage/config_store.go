package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"template-renderer/internal/apperr"
	"template-renderer/internal/model"
	"template-renderer/pkg/fsutils"
)

// ConfigStore persists client configurations as individual JSON files
// under <basePath>/configurations/<clientId>.json.
type ConfigStore struct {
	basePath string
	log      *zap.Logger
}

// NewConfigStore creates a ConfigStore and ensures its directory exists.
func NewConfigStore(basePath string, log *zap.Logger) (*ConfigStore, error) {
	dir := filepath.Join(basePath, "configurations")
	if err := fsutils.EnsureDir(dir); err != nil {
		return nil, apperr.IO(err, "failed to create configurations directory %s", dir)
	}
	return &ConfigStore{basePath: basePath, log: log}, nil
}

// Dir returns the directory configurations are stored in.
func (s *ConfigStore) Dir() string {
	return filepath.Join(s.basePath, "configurations")
}

func (s *ConfigStore) pathFor(clientID string) string {
	return filepath.Join(s.Dir(), clientID+".json")
}

// Save writes the configuration to disk, overwriting any previous version.
func (s *ConfigStore) Save(cfg *model.ClientConfiguration) error {
	if err := fsutils.ValidateName(cfg.ClientID); err != nil {
		return err
	}
	if err := fsutils.EnsureDir(s.Dir()); err != nil {
		return apperr.IO(err, "failed to create configurations directory")
	}
	if err := fsutils.WriteJSON(s.pathFor(cfg.ClientID), cfg); err != nil {
		return err
	}
	s.log.Debug("saved client configuration", zap.String("clientId", cfg.ClientID))
	return nil
}

// Load reads a single configuration by client ID.
func (s *ConfigStore) Load(clientID string) (*model.ClientConfiguration, error) {
	if err := fsutils.ValidateName(clientID); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.pathFor(clientID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperr.NotFound("configuration for client %s not found", clientID)
		}
		return nil, apperr.IO(err, "failed to read configuration for client %s", clientID)
	}
	var cfg model.ClientConfiguration
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, apperr.Validation("invalid JSON data in configuration for client %s", clientID)
	}
	return &cfg, nil
}

// Exists reports whether a configuration file is present for the client.
func (s *ConfigStore) Exists(clientID string) bool {
	if fsutils.ValidateName(clientID) != nil {
		return false
	}
	return fsutils.FileExists(s.pathFor(clientID))
}

// List returns every stored configuration. Files that fail to parse are
// skipped with a warning so one corrupt file does not hide the rest.
func (s *ConfigStore) List() ([]*model.ClientConfiguration, error) {
	entries, err := fsutils.ListDir(s.Dir())
	if err != nil {
		return nil, err
	}
	configs := make([]*model.ClientConfiguration, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		clientID := strings.TrimSuffix(entry.Name(), ".json")
		cfg, err := s.Load(clientID)
		if err != nil {
			s.log.Warn("skipping unreadable configuration",
				zap.String("file", entry.Name()), zap.Error(err))
			continue
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

// Delete removes a configuration file. Deleting a missing configuration
// is not an error.
func (s *ConfigStore) Delete(clientID string) error {
	if err := fsutils.ValidateName(clientID); err != nil {
		return err
	}
	if err := fsutils.RemoveFile(s.pathFor(clientID)); err != nil {
		return apperr.IO(err, "failed to delete configuration for client %s", clientID)
	}
	s.log.Debug("deleted client configuration", zap.String("clientId", clientID))
	return nil
}
