// render-cli exports a client's site as static HTML files: the full
// single-page site, the multipage index, and one page per enabled section.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"template-renderer/internal/clientconfig"
	"template-renderer/internal/logger"
	"template-renderer/internal/renderer"
	"template-renderer/internal/storage"
)

func main() {
	clientID := flag.String("client", "", "Client id to export")
	viewsPath := flag.String("views", "views", "Views directory (layouts, partials, configurations)")
	uploadsPath := flag.String("uploads", "uploads", "Uploads directory")
	outDir := flag.String("out", "dist", "Output directory for the exported HTML")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	if *clientID == "" {
		fmt.Fprintln(os.Stderr, "usage: render-cli -client <clientId> [-views dir] [-uploads dir] [-out dir]")
		os.Exit(2)
	}

	log := logger.New(*logLevel, "console")
	defer log.Sync()

	if err := run(*clientID, *viewsPath, *uploadsPath, *outDir, log); err != nil {
		log.Fatal("export failed", zap.String("clientId", *clientID), zap.Error(err))
	}
}

func run(clientID, viewsPath, uploadsPath, outDir string, log *zap.Logger) error {
	configs, err := storage.NewConfigStore(viewsPath, log)
	if err != nil {
		return err
	}
	images, err := storage.NewImageStore(uploadsPath, 5<<20, log)
	if err != nil {
		return err
	}
	manager := clientconfig.NewManager(configs, images, log)
	engine := renderer.NewEngine(viewsPath, log)
	sites := renderer.NewSiteRenderer(engine, manager, images, log)

	cfg, err := manager.Get(clientID)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	write := func(name, html string) error {
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, []byte(html), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		log.Info("wrote page", zap.String("path", path), zap.Int("bytes", len(html)))
		return nil
	}

	site, err := sites.RenderSite(clientID, nil)
	if err != nil {
		return err
	}
	if err := write("index.html", site); err != nil {
		return err
	}

	pages, err := sites.RenderMultipageIndex(clientID)
	if err != nil {
		return err
	}
	if err := write("pages.html", pages); err != nil {
		return err
	}

	for _, section := range clientconfig.EnabledOrdered(cfg) {
		html, err := sites.RenderSection(clientID, section.ID, nil)
		if err != nil {
			return err
		}
		if err := write(section.ID+".html", html); err != nil {
			return err
		}
	}

	log.Info("export complete",
		zap.String("clientId", clientID),
		zap.String("out", outDir))
	return nil
}
