package main

import (
	"io"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"

	"template-renderer/internal/apperr"
	"template-renderer/internal/metrics"
)

// uploadImageHandler accepts a multipart upload under the "image" field.
// The optional category query parameter groups the file in a subdirectory.
func (app *application) uploadImageHandler(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")

	if err := r.ParseMultipartForm(app.cfg.MaxFileSize); err != nil {
		app.uploadFailure(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		app.uploadFailure(w, http.StatusBadRequest, "missing image field")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, app.cfg.MaxFileSize+1))
	if err != nil {
		app.uploadFailure(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	category := r.URL.Query().Get("category")

	img, err := app.images.Upload(clientID, header.Filename, mimeType, category, content)
	if err != nil {
		status := http.StatusInternalServerError
		if apperr.IsValidation(err) {
			status = http.StatusBadRequest
		}
		app.uploadFailure(w, status, err.Error())
		return
	}
	app.recordStoredBytes(clientID)
	app.writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"image":   img,
	})
}

// recordStoredBytes refreshes the per-client storage gauge after a mutation.
func (app *application) recordStoredBytes(clientID string) {
	metrics.ImagesStoredBytes.WithLabelValues(clientID).Set(float64(app.images.TotalSizeForClient(clientID)))
}

func (app *application) uploadFailure(w http.ResponseWriter, status int, msg string) {
	app.writeJSON(w, status, map[string]any{
		"success": false,
		"error":   msg,
	})
}

func (app *application) listImagesHandler(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	category := r.URL.Query().Get("category")

	images, err := app.images.ListImages(clientID, category)
	if err != nil {
		app.writeError(w, r, err)
		return
	}
	app.writeJSON(w, http.StatusOK, map[string]any{
		"clientId": clientID,
		"count":    len(images),
		"images":   images,
	})
}

// serveImageHandler streams stored image bytes with a long-lived caching
// header; generated file names never change content.
func (app *application) serveImageHandler(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	// The wildcard may carry a category prefix; storage locates the file
	// by name across category directories.
	fileName := path.Base(chi.URLParam(r, "*"))

	data, mimeType, err := app.images.ReadImageBytes(clientID, fileName)
	if err != nil {
		app.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// getImageHandler returns one image record by the id handed out at upload.
func (app *application) getImageHandler(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	imageID := chi.URLParam(r, "imageID")

	img, err := app.images.GetImage(clientID, imageID)
	if err != nil {
		app.writeError(w, r, err)
		return
	}
	app.writeJSON(w, http.StatusOK, img)
}

func (app *application) deleteImageHandler(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	imageID := chi.URLParam(r, "imageID")

	if err := app.images.DeleteImage(clientID, imageID); err != nil {
		app.writeError(w, r, err)
		return
	}
	app.recordStoredBytes(clientID)
	app.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Image deleted",
	})
}

// deleteAllImagesHandler removes every uploaded image for a client.
func (app *application) deleteAllImagesHandler(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	if err := app.images.DeleteAllForClient(clientID); err != nil {
		app.writeError(w, r, err)
		return
	}
	app.recordStoredBytes(clientID)
	app.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "All images deleted",
	})
}

func (app *application) imageStatsHandler(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	stats, err := app.images.Stats(clientID)
	if err != nil {
		app.writeError(w, r, err)
		return
	}
	app.writeJSON(w, http.StatusOK, stats)
}
