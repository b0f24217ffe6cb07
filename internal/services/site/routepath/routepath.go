// Package routepath centralizes the site's HTTP route patterns.
package routepath

import "net/url"

const (
	Root   = "/"
	Health = "/up"

	ContentPrefix   = "/api/content/"
	ContentCompany  = ContentPrefix + "company"
	ContentServices = ContentPrefix + "services"
	ContentService  = ContentServices + "/{slug}"
	ContentCareers  = ContentPrefix + "careers"
	ContentJob      = ContentCareers + "/{slug}"
	ContentGallery  = ContentPrefix + "gallery"
	ContentContact  = ContentPrefix + "contact"

	CatalogPrefix     = "/api/catalog/"
	CatalogProducts   = CatalogPrefix + "products"
	CatalogProduct    = CatalogProducts + "/{productID}"
	CatalogCategories = CatalogPrefix + "categories"

	EnquiryPrefix = "/api/enquiry/"
	Enquiry       = "/api/enquiry"
	EnquiryItems  = EnquiryPrefix + "items"
	EnquiryItem   = EnquiryItems + "/{itemID}"
	EnquirySubmit = EnquiryPrefix + "submit"

	LeadsPrefix   = "/api/leads/"
	LeadsContact  = LeadsPrefix + "contact"
	LeadsCareers  = LeadsPrefix + "careers"
	LeadsProducts = LeadsPrefix + "products"
	LeadsServices = LeadsPrefix + "services"

	DownloadPrefix = "/api/download/"
	Download       = "/api/download"
)

// ServicePath returns the content route of one service.
func ServicePath(slug string) string {
	return ContentServices + "/" + url.PathEscape(slug)
}

// JobPath returns the content route of one job opening.
func JobPath(slug string) string {
	return ContentCareers + "/" + url.PathEscape(slug)
}

// ProductPath returns the catalog route of one product.
func ProductPath(productID string) string {
	return CatalogProducts + "/" + url.PathEscape(productID)
}

// EnquiryItemPath returns the route of one enquiry list line.
func EnquiryItemPath(itemID string) string {
	return EnquiryItems + "/" + url.PathEscape(itemID)
}
