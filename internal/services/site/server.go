// Package site hosts the fire-safety company's JSON/HTTP site service.
package site

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Godwin-Baiju/aissol-test/internal/platform/logging"
	"github.com/Godwin-Baiju/aissol-test/internal/platform/timeouts"
	siteapp "github.com/Godwin-Baiju/aissol-test/internal/services/site/app"
	module "github.com/Godwin-Baiju/aissol-test/internal/services/site/module"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/modules"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/httpx"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/observability"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/requestmeta"
	"github.com/andybalholm/brotli"
	"go.uber.org/zap"
)

// Config defines startup inputs for the site service.
type Config struct {
	HTTPAddr           string
	Logger             *zap.Logger
	Catalog            module.CatalogService
	Enquiry            module.EnquiryService
	Leads              module.LeadRecorder
	Content            module.ContentSource
	SchemePolicy       requestmeta.SchemePolicy
	LeadsRatePerMinute int
	PublicDir          string
	BrochureFile       string
}

// Server hosts the site HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *zap.Logger
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := logging.OrNop(cfg.Logger)
	deps := module.Dependencies{
		Logger:             logger,
		Catalog:            cfg.Catalog,
		Enquiry:            cfg.Enquiry,
		Leads:              cfg.Leads,
		Content:            cfg.Content,
		SchemePolicy:       cfg.SchemePolicy,
		LeadsRatePerMinute: cfg.LeadsRatePerMinute,
		PublicDir:          cfg.PublicDir,
		BrochureFile:       cfg.BrochureFile,
	}
	h, err := siteapp.Composer{}.Compose(siteapp.ComposeInput{
		Dependencies: deps,
		Modules:      modules.DefaultModules(),
	})
	if err != nil {
		return nil, err
	}
	return httpx.Chain(h,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		observability.RequestLogger(logger.Named("http")),
		httpx.Compress(brotli.DefaultCompression),
	), nil
}

// NewServer validates config and constructs a site server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose site handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		logger:   logging.OrNop(cfg.Logger),
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("site server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()
	s.logger.Info("site listening", zap.String("addr", s.httpAddr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown site http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve site http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
