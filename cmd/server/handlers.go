package main

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"template-renderer/internal/apperr"
)

// writeJSON encodes v as the response body with the given status.
func (app *application) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.log.Error("failed to encode response", zap.Error(err))
	}
}

// writeHTML sends a rendered page.
func (app *application) writeHTML(w http.ResponseWriter, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		app.log.Error("failed to write response", zap.Error(err))
	}
}

// writeError maps the error taxonomy onto HTTP statuses. Not-found and
// validation failures are expected outcomes and logged at debug; everything
// else is a server fault.
func (app *application) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind, ok := apperr.KindOf(err)
	if !ok {
		kind = apperr.KindIO
	}
	switch kind {
	case apperr.KindNotFound:
		app.log.Debug("not found", zap.String("path", r.URL.Path), zap.Error(err))
		app.writeJSON(w, http.StatusNotFound, map[string]string{"message": err.Error()})
	case apperr.KindValidation:
		app.log.Debug("validation failed", zap.String("path", r.URL.Path), zap.Error(err))
		app.writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
	default:
		app.log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		app.writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
	}
}

// readJSONBody decodes the request body into dst.
func (app *application) readJSONBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return apperr.Validation("request body is required")
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return apperr.Validation("invalid JSON body: %v", err)
	}
	return nil
}

func (app *application) healthHandler(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, http.StatusOK, map[string]string{
		"status":      "ok",
		"environment": app.cfg.Environment,
	})
}
