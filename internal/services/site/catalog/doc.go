// Package catalog serves the CMS-backed product catalog: category taxonomy,
// text search, structured filters and page slicing over a cached product list.
package catalog
