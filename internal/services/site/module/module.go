// Package module defines the contract between the site composer and its
// feature modules.
package module

import (
	"context"
	"net/http"

	"github.com/Godwin-Baiju/aissol-test/internal/services/site/catalog"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/content"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/enquiry"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/leads"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/requestmeta"
	"go.uber.org/zap"
)

// Module is one mountable feature area.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}

// Mount is a module's route prefix and handler.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// CatalogService reads the product catalog.
type CatalogService interface {
	List(context.Context, catalog.Query) (catalog.Page, error)
	Categories(context.Context) ([]catalog.Category, error)
	Get(context.Context, string) (catalog.Product, error)
}

// EnquiryService manages visitor enquiry lists.
type EnquiryService interface {
	Load(ctx context.Context, visitorID string) (enquiry.List, error)
	AddItem(ctx context.Context, visitorID string, item enquiry.Item) (enquiry.List, error)
	AddProduct(ctx context.Context, visitorID, productID string, quantity int) (enquiry.List, error)
	AddByTitle(ctx context.Context, visitorID, title, productID string) (enquiry.List, error)
	UpdateQuantity(ctx context.Context, visitorID, itemID string, quantity int) (enquiry.List, error)
	Remove(ctx context.Context, visitorID, itemID string) (enquiry.List, error)
	Clear(ctx context.Context, visitorID string) (enquiry.List, error)
}

// LeadRecorder records lead submissions.
type LeadRecorder interface {
	Record(context.Context, leads.Form) (leads.Lead, error)
}

// ContentSource serves static informational content.
type ContentSource interface {
	Company() content.Company
	Services() []content.Service
	Service(slug string) (content.Service, error)
	Careers() content.Careers
	Job(slug string) (content.Job, error)
	Gallery() []content.GalleryCategory
	Contact() content.Contact
}

// Dependencies carries the shared services modules are built from. Nil
// services leave their modules mounted but reporting unavailable.
type Dependencies struct {
	Logger  *zap.Logger
	Catalog CatalogService
	Enquiry EnquiryService
	Leads   LeadRecorder
	Content ContentSource

	// SchemePolicy decides when the visitor cookie is marked Secure.
	SchemePolicy requestmeta.SchemePolicy
	// LeadsRatePerMinute bounds lead submissions per client IP. Zero or
	// less disables limiting.
	LeadsRatePerMinute int
	// PublicDir holds downloadable static files.
	PublicDir string
	// BrochureFile is the brochure file name inside PublicDir.
	BrochureFile string
}
