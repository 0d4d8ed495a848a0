package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"template-renderer/internal/metrics"
)

// routes builds the HTTP router. The API lives under /api/v1, matching the
// public image URLs embedded in rendered pages.
func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(metrics.Middleware)

	r.Get("/health", app.healthHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/client-templates", func(r chi.Router) {
			r.Get("/", app.listClientTemplatesHandler)
			r.Post("/", app.createClientTemplateHandler)
			r.Get("/available-sections", app.availableSectionsHandler)

			r.Route("/{clientID}", func(r chi.Router) {
				r.Get("/", app.renderClientSiteHandler)
				r.Post("/render", app.renderClientSiteWithDataHandler)
				r.Get("/pages", app.renderClientPagesHandler)
				r.Get("/pages-info", app.clientPagesInfoHandler)
				r.Get("/section/{sectionID}", app.renderClientSectionHandler)
				r.Get("/configuration", app.getClientConfigurationHandler)
				r.Put("/configuration", app.updateClientConfigurationHandler)
				r.Delete("/", app.deleteClientTemplateHandler)
			})
		})

		r.Route("/storage/images/{clientID}", func(r chi.Router) {
			r.Get("/", app.listImagesHandler)
			r.Delete("/", app.deleteAllImagesHandler)
			r.Post("/upload", app.uploadImageHandler)
			r.Get("/stats", app.imageStatsHandler)
			r.Get("/image/{imageID}", app.getImageHandler)
			r.Delete("/{imageID}", app.deleteImageHandler)
			// Catch-all so category-prefixed image URLs resolve too.
			r.Get("/*", app.serveImageHandler)
		})

		r.Route("/template", func(r chi.Router) {
			r.Get("/", app.listTemplatesHandler)
			r.Route("/{project}", app.templateProjectRoutes)
			r.Route("/category/{category}/{project}", app.templateProjectRoutes)
		})
	})

	return r
}

// templateProjectRoutes serves one template directory, with or without a
// category prefix in the URL.
func (app *application) templateProjectRoutes(r chi.Router) {
	r.Get("/", app.templateInfoHandler)
	r.Get("/render", app.renderTemplateHandler)
	r.Post("/render", app.renderTemplatePreviewHandler)
	r.Get("/static-data", app.getStaticDataHandler)
	r.Get("/custom-data", app.getCustomDataHandler)
	r.Put("/custom-data", app.saveCustomDataHandler)
}
