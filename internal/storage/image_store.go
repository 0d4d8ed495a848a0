package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"template-renderer/internal/apperr"
	"template-renderer/internal/model"
	"template-renderer/pkg/fsutils"
)

// allowedImageMimeTypes is the upload whitelist.
var allowedImageMimeTypes = map[string]bool{
	"image/jpeg":    true,
	"image/jpg":     true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

const metadataFileName = "images-metadata.json"

// ImageStore keeps uploaded image files under
// <basePath>/clients/<clientId>[/<category>]/<fileName> and tracks them in a
// per-client metadata document. The metadata document is authoritative: an
// image missing from it is treated as not stored even if bytes remain on disk.
type ImageStore struct {
	basePath    string
	maxFileSize int64
	log         *zap.Logger
}

// NewImageStore creates an ImageStore rooted at basePath.
func NewImageStore(basePath string, maxFileSize int64, log *zap.Logger) (*ImageStore, error) {
	if err := fsutils.EnsureDir(filepath.Join(basePath, "clients")); err != nil {
		return nil, apperr.IO(err, "failed to create uploads directory %s", basePath)
	}
	return &ImageStore{basePath: basePath, maxFileSize: maxFileSize, log: log}, nil
}

func (s *ImageStore) clientDir(clientID string) string {
	return filepath.Join(s.basePath, "clients", clientID)
}

func (s *ImageStore) metadataPath(clientID string) string {
	return filepath.Join(s.clientDir(clientID), metadataFileName)
}

func (s *ImageStore) loadMetadata(clientID string) (*model.ImageMetadata, error) {
	data, err := os.ReadFile(s.metadataPath(clientID))
	if err != nil {
		if os.IsNotExist(err) {
			now := time.Now()
			return &model.ImageMetadata{
				ClientID:  clientID,
				Images:    []model.UploadedImage{},
				CreatedAt: now,
				UpdatedAt: now,
			}, nil
		}
		return nil, apperr.IO(err, "failed to read image metadata for client %s", clientID)
	}
	var meta model.ImageMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, apperr.Validation("invalid JSON data in image metadata for client %s", clientID)
	}
	if meta.Images == nil {
		meta.Images = []model.UploadedImage{}
	}
	return &meta, nil
}

func (s *ImageStore) saveMetadata(meta *model.ImageMetadata) error {
	if err := fsutils.EnsureDir(s.clientDir(meta.ClientID)); err != nil {
		return apperr.IO(err, "failed to create client directory for %s", meta.ClientID)
	}
	meta.UpdatedAt = time.Now()
	return fsutils.WriteJSON(s.metadataPath(meta.ClientID), meta)
}

// Upload validates and stores an image for the client. The stored file name
// is a fresh UUID with the original extension preserved; category, when set,
// becomes a subdirectory and must itself be a valid identifier.
func (s *ImageStore) Upload(clientID, originalName, mimeType, category string, content []byte) (*model.UploadedImage, error) {
	if err := fsutils.ValidateName(clientID); err != nil {
		return nil, err
	}
	if !allowedImageMimeTypes[strings.ToLower(mimeType)] {
		return nil, apperr.Validation("unsupported image type %s", mimeType)
	}
	if int64(len(content)) > s.maxFileSize {
		return nil, apperr.Validation("file exceeds maximum size of %d bytes", s.maxFileSize)
	}
	if len(content) == 0 {
		return nil, apperr.Validation("uploaded file is empty")
	}
	if category != "" {
		if err := fsutils.ValidateName(category); err != nil {
			return nil, err
		}
	}

	ext := filepath.Ext(originalName)
	fileName := uuid.NewString() + ext

	dir := s.clientDir(clientID)
	urlPath := clientID + "/" + fileName
	if category != "" {
		dir = filepath.Join(dir, category)
		urlPath = clientID + "/" + category + "/" + fileName
	}
	if err := fsutils.EnsureDir(dir); err != nil {
		return nil, apperr.IO(err, "failed to create image directory %s", dir)
	}

	fullPath := filepath.Join(dir, fileName)
	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		return nil, apperr.IO(err, "failed to write image file %s", fullPath)
	}

	img := model.UploadedImage{
		ID:           uuid.NewString(),
		OriginalName: originalName,
		FileName:     fileName,
		FilePath:     fullPath,
		URL:          "/api/v1/storage/images/" + urlPath,
		Size:         int64(len(content)),
		MimeType:     strings.ToLower(mimeType),
		UploadedAt:   time.Now(),
		ClientID:     clientID,
	}

	meta, err := s.loadMetadata(clientID)
	if err != nil {
		return nil, err
	}
	meta.Images = append(meta.Images, img)
	if err := s.saveMetadata(meta); err != nil {
		return nil, err
	}

	s.log.Info("stored image",
		zap.String("clientId", clientID),
		zap.String("fileName", fileName),
		zap.Int("size", len(content)))
	return &img, nil
}

// ListImages returns the client's images, optionally narrowed to a category.
// The category filter matches the storage path segment, so images uploaded
// without a category are excluded from every category listing.
func (s *ImageStore) ListImages(clientID, category string) ([]model.UploadedImage, error) {
	if err := fsutils.ValidateName(clientID); err != nil {
		return nil, err
	}
	meta, err := s.loadMetadata(clientID)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return meta.Images, nil
	}
	needle := filepath.Join("clients", clientID, category) + string(filepath.Separator)
	filtered := make([]model.UploadedImage, 0, len(meta.Images))
	for _, img := range meta.Images {
		if strings.Contains(img.FilePath, needle) {
			filtered = append(filtered, img)
		}
	}
	return filtered, nil
}

// GetImage returns a single image record by its id, the identifier handed
// out at upload time.
func (s *ImageStore) GetImage(clientID, imageID string) (*model.UploadedImage, error) {
	meta, err := s.loadMetadata(clientID)
	if err != nil {
		return nil, err
	}
	for i := range meta.Images {
		if meta.Images[i].ID == imageID {
			return &meta.Images[i], nil
		}
	}
	return nil, apperr.NotFound("image %s not found for client %s", imageID, clientID)
}

// getByFileName looks a record up by stored file name, the key embedded in
// public URLs.
func (s *ImageStore) getByFileName(clientID, fileName string) (*model.UploadedImage, error) {
	meta, err := s.loadMetadata(clientID)
	if err != nil {
		return nil, err
	}
	for i := range meta.Images {
		if meta.Images[i].FileName == fileName {
			return &meta.Images[i], nil
		}
	}
	return nil, apperr.NotFound("image %s not found for client %s", fileName, clientID)
}

// ReadImageBytes serves the raw bytes for a stored file name. The file is
// looked up at the client root first, then in each category subdirectory.
func (s *ImageStore) ReadImageBytes(clientID, fileName string) ([]byte, string, error) {
	if err := fsutils.ValidateName(clientID); err != nil {
		return nil, "", err
	}
	if strings.ContainsAny(fileName, "/\\") || strings.Contains(fileName, "..") {
		return nil, "", apperr.Validation("invalid file name")
	}

	candidates := []string{filepath.Join(s.clientDir(clientID), fileName)}
	entries, _ := fsutils.ListDir(s.clientDir(clientID))
	for _, entry := range entries {
		if entry.IsDir() {
			candidates = append(candidates, filepath.Join(s.clientDir(clientID), entry.Name(), fileName))
		}
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err == nil {
			mimeType := "application/octet-stream"
			if img, gerr := s.getByFileName(clientID, fileName); gerr == nil {
				mimeType = img.MimeType
			}
			return data, mimeType, nil
		}
		if !os.IsNotExist(err) {
			return nil, "", apperr.IO(err, "failed to read image file %s", path)
		}
	}
	return nil, "", apperr.NotFound("image %s not found for client %s", fileName, clientID)
}

// DeleteImage removes the image with the given id from the metadata document
// and best-effort deletes its file from disk.
func (s *ImageStore) DeleteImage(clientID, imageID string) error {
	meta, err := s.loadMetadata(clientID)
	if err != nil {
		return err
	}
	idx := -1
	for i := range meta.Images {
		if meta.Images[i].ID == imageID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperr.NotFound("image %s not found for client %s", imageID, clientID)
	}

	if err := fsutils.RemoveFile(meta.Images[idx].FilePath); err != nil {
		s.log.Warn("failed to remove image file, metadata entry dropped anyway",
			zap.String("path", meta.Images[idx].FilePath), zap.Error(err))
	}
	meta.Images = append(meta.Images[:idx], meta.Images[idx+1:]...)
	return s.saveMetadata(meta)
}

// DeleteAllForClient removes the client's whole upload tree, metadata included.
func (s *ImageStore) DeleteAllForClient(clientID string) error {
	if err := fsutils.ValidateName(clientID); err != nil {
		return err
	}
	if err := fsutils.RemoveTree(s.clientDir(clientID)); err != nil {
		return apperr.IO(err, "failed to remove uploads for client %s", clientID)
	}
	return nil
}

// Stats summarizes the client's stored images.
func (s *ImageStore) Stats(clientID string) (*model.ImageStats, error) {
	if err := fsutils.ValidateName(clientID); err != nil {
		return nil, err
	}
	meta, err := s.loadMetadata(clientID)
	if err != nil {
		return nil, err
	}

	stats := &model.ImageStats{
		ClientID:    clientID,
		TotalImages: len(meta.Images),
		MimeTypes:   map[string]int{},
		Categories:  map[string]int{},
	}
	prefix := filepath.Join("clients", clientID) + string(filepath.Separator)
	for _, img := range meta.Images {
		stats.TotalSize += img.Size
		stats.MimeTypes[img.MimeType]++

		category := "uncategorized"
		if i := strings.Index(img.FilePath, prefix); i >= 0 {
			rest := img.FilePath[i+len(prefix):]
			if parts := strings.Split(rest, string(filepath.Separator)); len(parts) > 1 {
				category = parts[0]
			}
		}
		stats.Categories[category]++

		if stats.LastUpload == nil || img.UploadedAt.After(*stats.LastUpload) {
			t := img.UploadedAt
			stats.LastUpload = &t
		}
	}
	return stats, nil
}

// TotalSizeForClient is a convenience for the metrics gauge.
func (s *ImageStore) TotalSizeForClient(clientID string) int64 {
	stats, err := s.Stats(clientID)
	if err != nil {
		return 0
	}
	return stats.TotalSize
}
