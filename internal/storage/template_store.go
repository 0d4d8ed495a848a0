package storage

import (
	"path/filepath"

	"go.uber.org/zap"

	"template-renderer/internal/apperr"
	"template-renderer/internal/model"
	"template-renderer/pkg/fsutils"
)

// templateCategories are the subdirectories scanned for grouped templates,
// alongside templates stored directly at the templates root.
var templateCategories = []string{"productos", "servicios", "productos-servicios"}

const (
	templateFileName   = "index.tmpl"
	staticDataFileName = "static-data.json"
	customDataFileName = "custom-data.json"
)

// TemplateStore manages standalone template directories living directly
// under the views root, next to the layouts and partials directories. Each
// template directory holds an index.tmpl plus optional static-data.json and
// custom-data.json documents. Directories without an index.tmpl, such as
// layouts or configurations, are not templates.
type TemplateStore struct {
	basePath string
	log      *zap.Logger
}

// NewTemplateStore creates a TemplateStore rooted at the views path.
func NewTemplateStore(basePath string, log *zap.Logger) *TemplateStore {
	return &TemplateStore{basePath: basePath, log: log}
}

// Dir returns the directory templates are stored in.
func (s *TemplateStore) Dir() string {
	return s.basePath
}

// resolveDir finds the directory for a template name, checking the templates
// root first and then each category subdirectory. The boolean reports whether
// the directory exists; when it does not, the root location is returned so
// callers can still create files there.
func (s *TemplateStore) resolveDir(name string) (string, string, bool) {
	root := filepath.Join(s.Dir(), name)
	if fsutils.DirExists(root) {
		return root, "", true
	}
	for _, category := range templateCategories {
		dir := filepath.Join(s.Dir(), category, name)
		if fsutils.DirExists(dir) {
			return dir, category, true
		}
	}
	return root, "", false
}

// TemplateExists reports whether the named template has an index.tmpl.
func (s *TemplateStore) TemplateExists(name string) bool {
	if fsutils.ValidateName(name) != nil {
		return false
	}
	dir, _, ok := s.resolveDir(name)
	return ok && fsutils.FileExists(filepath.Join(dir, templateFileName))
}

// TemplateSource returns the template markup for the named template.
func (s *TemplateStore) TemplateSource(name string) (string, error) {
	if err := fsutils.ValidateName(name); err != nil {
		return "", err
	}
	dir, _, ok := s.resolveDir(name)
	if !ok {
		return "", apperr.NotFound("template %s not found", name)
	}
	return fsutils.ReadText(filepath.Join(dir, templateFileName))
}

// StaticData returns the template's base data document. A missing file
// yields an empty map.
func (s *TemplateStore) StaticData(name string) (map[string]any, error) {
	if err := fsutils.ValidateName(name); err != nil {
		return nil, err
	}
	dir, _, _ := s.resolveDir(name)
	return fsutils.ReadJSON(filepath.Join(dir, staticDataFileName))
}

// CustomData returns the template's overlay document. A missing file yields
// an empty map.
func (s *TemplateStore) CustomData(name string) (map[string]any, error) {
	if err := fsutils.ValidateName(name); err != nil {
		return nil, err
	}
	dir, _, _ := s.resolveDir(name)
	return fsutils.ReadJSON(filepath.Join(dir, customDataFileName))
}

// SaveCustomData replaces the template's overlay document. The template
// itself must already exist.
func (s *TemplateStore) SaveCustomData(name string, data map[string]any) error {
	if err := fsutils.ValidateName(name); err != nil {
		return err
	}
	if !s.TemplateExists(name) {
		return apperr.NotFound("template %s not found", name)
	}
	dir, _, _ := s.resolveDir(name)
	if err := fsutils.WriteJSON(filepath.Join(dir, customDataFileName), data); err != nil {
		return err
	}
	s.log.Debug("saved custom data", zap.String("template", name))
	return nil
}

// Info describes a single template directory.
func (s *TemplateStore) Info(name string) (*model.TemplateInfo, error) {
	if err := fsutils.ValidateName(name); err != nil {
		return nil, err
	}
	dir, category, ok := s.resolveDir(name)
	if !ok {
		return nil, apperr.NotFound("template %s not found", name)
	}

	info := &model.TemplateInfo{
		Name:          name,
		Category:      category,
		HasTemplate:   fsutils.FileExists(filepath.Join(dir, templateFileName)),
		HasStaticData: fsutils.FileExists(filepath.Join(dir, staticDataFileName)),
		HasCustomData: fsutils.FileExists(filepath.Join(dir, customDataFileName)),
	}
	entries, err := fsutils.ListDir(dir)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		info.Files = append(info.Files, model.TemplateFileInfo{
			Name:     entry.Name(),
			Size:     fi.Size(),
			Modified: fi.ModTime(),
		})
	}
	return info, nil
}

// List enumerates every template directory at the root and inside each
// category subdirectory.
func (s *TemplateStore) List() ([]model.TemplateInfo, error) {
	var infos []model.TemplateInfo

	appendFrom := func(dir, category string) error {
		entries, err := fsutils.ListDir(dir)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			if category == "" && isTemplateCategory(entry.Name()) {
				continue
			}
			if !fsutils.FileExists(filepath.Join(dir, entry.Name(), templateFileName)) {
				continue
			}
			info, err := s.Info(entry.Name())
			if err != nil {
				s.log.Warn("skipping unreadable template",
					zap.String("name", entry.Name()), zap.Error(err))
				continue
			}
			infos = append(infos, *info)
		}
		return nil
	}

	if err := appendFrom(s.Dir(), ""); err != nil {
		return nil, err
	}
	for _, category := range templateCategories {
		if err := appendFrom(filepath.Join(s.Dir(), category), category); err != nil {
			return nil, err
		}
	}
	return infos, nil
}

func isTemplateCategory(name string) bool {
	for _, c := range templateCategories {
		if c == name {
			return true
		}
	}
	return false
}

// ValidCategory reports whether name is one of the fixed template
// categories.
func ValidCategory(name string) bool {
	return isTemplateCategory(name)
}
