package main

import (
	"fmt"
	"net"
	"net/http"
	"os"

	"go.uber.org/zap"

	"template-renderer/internal/clientconfig"
	"template-renderer/internal/config"
	"template-renderer/internal/logger"
	"template-renderer/internal/renderer"
	"template-renderer/internal/storage"
)

// maxPortProbes bounds the auto-increment search for a free port.
const maxPortProbes = 20

// application holds the server's shared dependencies.
type application struct {
	cfg       *config.Config
	log       *zap.Logger
	manager   *clientconfig.Manager
	images    *storage.ImageStore
	templates *storage.TemplateStore
	sites     *renderer.SiteRenderer
	legacy    *renderer.TemplateRenderer
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	app, err := newApplication(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize application", zap.Error(err))
	}

	ln, port, err := listenWithProbing(cfg.Port, log)
	if err != nil {
		log.Fatal("no free port found", zap.Int("startPort", cfg.Port), zap.Error(err))
	}

	log.Info("server listening",
		zap.Int("port", port),
		zap.String("environment", cfg.Environment),
		zap.String("views", cfg.TemplatesPath),
		zap.String("uploads", cfg.UploadsPath))
	if err := http.Serve(ln, app.routes()); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func newApplication(cfg *config.Config, log *zap.Logger) (*application, error) {
	configs, err := storage.NewConfigStore(cfg.TemplatesPath, log)
	if err != nil {
		return nil, err
	}
	images, err := storage.NewImageStore(cfg.UploadsPath, cfg.MaxFileSize, log)
	if err != nil {
		return nil, err
	}
	templates := storage.NewTemplateStore(cfg.TemplatesPath, log)
	manager := clientconfig.NewManager(configs, images, log)
	engine := renderer.NewEngine(cfg.TemplatesPath, log)

	return &application{
		cfg:       cfg,
		log:       log,
		manager:   manager,
		images:    images,
		templates: templates,
		sites:     renderer.NewSiteRenderer(engine, manager, images, log),
		legacy:    renderer.NewTemplateRenderer(engine, templates, log),
	}, nil
}

// listenWithProbing binds the first free port at or above start.
func listenWithProbing(start int, log *zap.Logger) (net.Listener, int, error) {
	var lastErr error
	for port := start; port < start+maxPortProbes; port++ {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err == nil {
			return ln, port, nil
		}
		lastErr = err
		log.Warn("port unavailable, trying next", zap.Int("port", port), zap.Error(err))
	}
	return nil, 0, fmt.Errorf("no free port in range %d-%d: %w", start, start+maxPortProbes-1, lastErr)
}
