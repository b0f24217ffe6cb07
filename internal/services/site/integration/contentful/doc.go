// Package contentful reads product entries from the Contentful Content
// Delivery API.
//
// Only the read path the catalog needs is implemented: paging through the
// product content type and looking up one product by its productId field.
package contentful
