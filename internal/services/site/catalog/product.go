package catalog

import (
	"strings"

	"github.com/Godwin-Baiju/aissol-test/internal/services/site/integration/contentful"
)

// Image is one product image.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Product is the catalog view of one CMS product entry.
type Product struct {
	// ID is the business product id, falling back to the entry id.
	ID string `json:"id"`
	// EntryID is the CMS entry id and keys enquiry list items.
	EntryID         string   `json:"entry_id"`
	Title           string   `json:"title"`
	CategoryID      string   `json:"category_id"`
	Category        string   `json:"category"`
	Description     string   `json:"description"`
	FullDescription string   `json:"full_description"`
	Features        []string `json:"features"`
	Specifications  []string `json:"specifications"`
	Images          []Image  `json:"images"`
}

// PrimaryImage returns the first image source or the placeholder.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return contentful.PlaceholderImage
	}
	return p.Images[0].Src
}

// FromEntry maps a CMS entry and its included assets to a Product.
func FromEntry(entry contentful.Entry, assets []contentful.Asset) Product {
	fields := entry.Fields
	product := Product{
		ID:              strings.TrimSpace(fields.ProductID),
		EntryID:         entry.Sys.ID,
		Title:           fields.Title,
		CategoryID:      fields.CategoryID,
		Category:        strings.TrimSpace(fields.CategoryName),
		Description:     fields.Description,
		FullDescription: fields.FullDescription.Text(),
		Features:        nonNil(fields.Features),
		Specifications:  nonNil(fields.Specifications),
		Images:          make([]Image, 0, len(fields.Images)),
	}
	if product.ID == "" {
		product.ID = entry.Sys.ID
	}
	if product.Category == "" {
		product.Category = fields.CategoryID
	}
	if product.FullDescription == "" {
		product.FullDescription = fields.Description
	}
	for _, link := range fields.Images {
		product.Images = append(product.Images, Image{
			Src: contentful.ImageURL(link.Sys.ID, assets),
			Alt: fields.Title,
		})
	}
	return product
}

// FromProducts maps a full CMS fetch to catalog products in CMS order.
func FromProducts(products contentful.Products) []Product {
	out := make([]Product, 0, len(products.Items))
	for _, entry := range products.Items {
		out = append(out, FromEntry(entry, products.Assets))
	}
	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
