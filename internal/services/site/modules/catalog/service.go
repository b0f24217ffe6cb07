package catalog

import (
	"context"

	sitecatalog "github.com/Godwin-Baiju/aissol-test/internal/services/site/catalog"
	module "github.com/Godwin-Baiju/aissol-test/internal/services/site/module"
	apperrors "github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/errors"
)

type catalogGateway = module.CatalogService

type unavailableGateway struct{}

var errCatalogUnavailable = apperrors.E(apperrors.KindUnavailable, "product catalog is not configured")

func (unavailableGateway) List(context.Context, sitecatalog.Query) (sitecatalog.Page, error) {
	return sitecatalog.Page{}, errCatalogUnavailable
}

func (unavailableGateway) Categories(context.Context) ([]sitecatalog.Category, error) {
	return nil, errCatalogUnavailable
}

func (unavailableGateway) Get(context.Context, string) (sitecatalog.Product, error) {
	return sitecatalog.Product{}, errCatalogUnavailable
}

func newGateway(deps module.Dependencies) catalogGateway {
	if deps.Catalog != nil {
		return deps.Catalog
	}
	return unavailableGateway{}
}

type service struct {
	gateway catalogGateway
}

func newService(gateway catalogGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

type categoriesView struct {
	// Categories is the full taxonomy in display order.
	Categories []sitecatalog.Category `json:"categories"`
	// Available lists the categories holding at least one product.
	Available []sitecatalog.Category `json:"available"`
}

func (s service) listProducts(ctx context.Context, q sitecatalog.Query) (sitecatalog.Page, error) {
	return s.gateway.List(ctx, q)
}

func (s service) product(ctx context.Context, productID string) (sitecatalog.Product, error) {
	return s.gateway.Get(ctx, productID)
}

func (s service) categories(ctx context.Context) (categoriesView, error) {
	available, err := s.gateway.Categories(ctx)
	if err != nil {
		return categoriesView{}, err
	}
	if available == nil {
		available = []sitecatalog.Category{}
	}
	return categoriesView{Categories: sitecatalog.Categories(), Available: available}, nil
}
