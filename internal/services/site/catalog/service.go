package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	siteotel "github.com/Godwin-Baiju/aissol-test/internal/platform/otel"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/integration/contentful"
	apperrors "github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/errors"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/storage"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const (
	productsCacheKey   = "catalog:products"
	productsCacheScope = "catalog"
	// DefaultCacheTTL bounds how long a fetched product list is reused.
	DefaultCacheTTL = 5 * time.Minute
)

// ErrNotFound reports that no product matched an id.
var ErrNotFound = apperrors.E(apperrors.KindNotFound, "product not found")

// Source loads products from the upstream CMS.
type Source interface {
	FetchProducts(ctx context.Context) ([]Product, error)
	// FetchProduct returns ErrNotFound when no product has productID.
	FetchProduct(ctx context.Context, productID string) (Product, error)
}

// ContentfulSource adapts a contentful client to Source.
type ContentfulSource struct {
	Client *contentful.Client
}

// FetchProducts loads every product entry.
func (s ContentfulSource) FetchProducts(ctx context.Context) ([]Product, error) {
	products, err := s.Client.FetchProducts(ctx)
	if err != nil {
		return nil, err
	}
	return FromProducts(products), nil
}

// FetchProduct loads one entry by productId.
func (s ContentfulSource) FetchProduct(ctx context.Context, productID string) (Product, error) {
	entry, assets, err := s.Client.FetchProductByID(ctx, productID)
	if errors.Is(err, contentful.ErrNotFound) {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	return FromEntry(entry, assets), nil
}

// ServiceConfig wires catalog dependencies.
type ServiceConfig struct {
	Source Source
	// Cache persists fetched product lists. Nil disables caching.
	Cache  storage.CacheStore
	TTL    time.Duration
	Logger *zap.Logger
	Now    func() time.Time
}

// Service answers catalog reads from a cached product list.
type Service struct {
	source Source
	cache  storage.CacheStore
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

// NewService builds a catalog service.
func NewService(cfg ServiceConfig) *Service {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		source: cfg.Source,
		cache:  cfg.Cache,
		ttl:    ttl,
		logger: logger.Named("catalog"),
		now:    now,
	}
}

// List returns one page of products matching q.
func (s *Service) List(ctx context.Context, q Query) (Page, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return Page{}, err
	}
	return Apply(products, q)
}

// Categories returns the taxonomy categories that currently hold products.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	return AvailableCategories(products), nil
}

// Get returns one product by business id or entry id.
func (s *Service) Get(ctx context.Context, productID string) (Product, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return Product{}, apperrors.E(apperrors.KindInvalidInput, "product id is required")
	}
	products, err := s.Products(ctx)
	if err != nil {
		return Product{}, err
	}
	for _, product := range products {
		if product.ID == productID || product.EntryID == productID {
			return product, nil
		}
	}
	if s.source == nil {
		return Product{}, ErrNotFound
	}
	product, err := s.source.FetchProduct(ctx, productID)
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, contentful.ErrNotConfigured):
		return Product{}, ErrNotFound
	case err != nil:
		s.logger.Warn("fetch product failed", zap.String("product_id", productID), zap.Error(err))
		return Product{}, apperrors.E(apperrors.KindUnavailable, "product catalog is unavailable")
	}
	return product, nil
}

// FindByTitle returns the first product whose title equals title exactly.
func (s *Service) FindByTitle(ctx context.Context, title string) (Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return Product{}, err
	}
	for _, product := range products {
		if product.Title == title {
			return product, nil
		}
	}
	return Product{}, ErrNotFound
}

// Products returns the full product list.
//
// A fresh cache entry is used when present. Otherwise the source is fetched
// and the result cached. A failed fetch serves a stale entry when one exists
// and an empty list when not; failures are never cached.
func (s *Service) Products(ctx context.Context) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ctx, span := siteotel.Tracer("catalog").Start(ctx, "catalog.Products")
	defer span.End()

	cached, cachedOK := s.readCache(ctx)
	if cachedOK && s.now().Before(cached.expiresAt) {
		span.SetAttributes(attribute.Bool("catalog.cache_hit", true))
		return cached.products, nil
	}
	span.SetAttributes(attribute.Bool("catalog.cache_hit", false))

	if s.source == nil {
		return []Product{}, nil
	}
	products, err := s.source.FetchProducts(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if errors.Is(err, contentful.ErrNotConfigured) {
			s.logger.Debug("catalog source not configured")
		} else {
			s.logger.Warn("fetch products failed", zap.Error(err), zap.Bool("serving_stale", cachedOK))
		}
		if cachedOK {
			return cached.products, nil
		}
		return []Product{}, nil
	}
	s.writeCache(ctx, products)
	span.SetAttributes(attribute.Int("catalog.products", len(products)))
	return products, nil
}

// Invalidate drops the cached product list.
func (s *Service) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.DeleteCacheEntry(ctx, productsCacheKey); err != nil {
		return fmt.Errorf("invalidate catalog cache: %w", err)
	}
	return nil
}

type cachedProducts struct {
	products  []Product
	expiresAt time.Time
}

func (s *Service) readCache(ctx context.Context) (cachedProducts, bool) {
	if s.cache == nil {
		return cachedProducts{}, false
	}
	entry, ok, err := s.cache.GetCacheEntry(ctx, productsCacheKey)
	if err != nil {
		s.logger.Warn("read catalog cache failed", zap.Error(err))
		return cachedProducts{}, false
	}
	if !ok {
		return cachedProducts{}, false
	}
	var products []Product
	if err := json.Unmarshal(entry.PayloadBytes, &products); err != nil {
		s.logger.Warn("decode catalog cache failed", zap.Error(err))
		return cachedProducts{}, false
	}
	return cachedProducts{products: products, expiresAt: entry.ExpiresAt}, true
}

func (s *Service) writeCache(ctx context.Context, products []Product) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(products)
	if err != nil {
		s.logger.Warn("encode catalog cache failed", zap.Error(err))
		return
	}
	now := s.now().UTC()
	if err := s.cache.PutCacheEntry(ctx, storage.CacheEntry{
		CacheKey:     productsCacheKey,
		Scope:        productsCacheScope,
		PayloadBytes: payload,
		RefreshedAt:  now,
		ExpiresAt:    now.Add(s.ttl),
	}); err != nil {
		s.logger.Warn("write catalog cache failed", zap.Error(err))
	}
}
