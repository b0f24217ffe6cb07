// Package storage declares persistence contracts for site-owned data: the
// derived catalog cache, visitor enquiry lists and recorded leads.
package storage
