// Package site parses site service flags and launches the service.
package site

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	entrypoint "github.com/Godwin-Baiju/aissol-test/internal/platform/cmd"
	"github.com/Godwin-Baiju/aissol-test/internal/platform/logging"
	sitesvc "github.com/Godwin-Baiju/aissol-test/internal/services/site"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/catalog"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/content"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/enquiry"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/integration/contentful"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/leads"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/requestmeta"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/storage/sqlite"
	"go.uber.org/zap"
)

// Config holds site command configuration.
type Config struct {
	HTTPAddr            string        `env:"AISSOL_SITE_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath              string        `env:"AISSOL_SITE_DB_PATH" envDefault:"data/site.db"`
	PublicDir           string        `env:"AISSOL_SITE_PUBLIC_DIR" envDefault:"public"`
	BrochureFile        string        `env:"AISSOL_SITE_BROCHURE_FILE" envDefault:"Broucher-Al-Shaikh-International-Group.pdf"`
	TrustForwardedProto bool          `env:"AISSOL_SITE_TRUST_FORWARDED_PROTO" envDefault:"false"`
	LeadsRatePerMinute  int           `env:"AISSOL_LEADS_RATE_PER_MINUTE" envDefault:"10"`
	CatalogCacheTTL     time.Duration `env:"AISSOL_CATALOG_CACHE_TTL" envDefault:"5m"`
	RefreshCatalog      bool          `env:"AISSOL_CATALOG_REFRESH_ON_START" envDefault:"false"`

	ContentfulSpaceID     string `env:"AISSOL_CONTENTFUL_SPACE_ID"`
	ContentfulAccessToken string `env:"AISSOL_CONTENTFUL_ACCESS_TOKEN"`
	ContentfulEnvironment string `env:"AISSOL_CONTENTFUL_ENVIRONMENT" envDefault:"master"`
	ContentfulBaseURL     string `env:"AISSOL_CONTENTFUL_BASE_URL" envDefault:"https://cdn.contentful.com"`

	Log logging.Config
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path")
	fs.StringVar(&cfg.PublicDir, "public-dir", cfg.PublicDir, "Directory holding downloadable files")
	fs.BoolVar(&cfg.RefreshCatalog, "refresh-catalog", cfg.RefreshCatalog, "Drop the cached product catalog before serving")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "Log level (debug, info, warn, error)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the site HTTP service.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceSite, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		return run(ctx, cfg, logger)
	})
}

func run(ctx context.Context, cfg Config, logger *zap.Logger) error {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create database directory: %w", err)
		}
	}
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open site store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("close site store", zap.Error(err))
		}
	}()

	client := contentful.NewClient(contentful.Config{
		SpaceID:     cfg.ContentfulSpaceID,
		AccessToken: cfg.ContentfulAccessToken,
		Environment: cfg.ContentfulEnvironment,
		BaseURL:     cfg.ContentfulBaseURL,
	})
	if !client.Configured() {
		logger.Warn("contentful credentials missing; product catalog will be empty",
			zap.Bool("space_id_set", cfg.ContentfulSpaceID != ""),
			zap.Bool("access_token_set", cfg.ContentfulAccessToken != ""),
		)
	}
	catalogService := catalog.NewService(catalog.ServiceConfig{
		Source: catalog.ContentfulSource{Client: client},
		Cache:  store,
		TTL:    cfg.CatalogCacheTTL,
		Logger: logger,
	})
	if cfg.RefreshCatalog {
		if err := catalogService.Invalidate(ctx); err != nil {
			logger.Warn("refresh catalog cache", zap.Error(err))
		}
	}

	siteContent, err := content.Default()
	if err != nil {
		return fmt.Errorf("load site content: %w", err)
	}

	server, err := sitesvc.NewServer(ctx, sitesvc.Config{
		HTTPAddr:           cfg.HTTPAddr,
		Logger:             logger,
		Catalog:            catalogService,
		Enquiry:            enquiry.NewService(store, catalogService, logger),
		Leads:              leads.NewRecorder(store, logger),
		Content:            siteContent,
		SchemePolicy:       requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
		LeadsRatePerMinute: cfg.LeadsRatePerMinute,
		PublicDir:          cfg.PublicDir,
		BrochureFile:       cfg.BrochureFile,
	})
	if err != nil {
		return err
	}
	defer server.Close()
	return server.ListenAndServe(ctx)
}
