package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound reports a missing record.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists reports a duplicate primary key.
var ErrAlreadyExists = errors.New("record already exists")

// CacheEntry stores one cached payload and its freshness window.
//
// Cache data is always derived and can be rebuilt from the CMS.
type CacheEntry struct {
	CacheKey     string
	Scope        string
	PayloadBytes []byte
	RefreshedAt  time.Time
	ExpiresAt    time.Time
}

// EnquiryRecord is the persisted enquiry list of one visitor.
type EnquiryRecord struct {
	VisitorID    string
	PayloadBytes []byte
	UpdatedAt    time.Time
}

// LeadRecord is one persisted lead submission.
type LeadRecord struct {
	ID           string
	Kind         string
	Name         string
	Email        string
	PayloadBytes []byte
	CreatedAt    time.Time
}

// LeadPage is one page of leads, newest first.
type LeadPage struct {
	Leads         []LeadRecord
	NextPageToken string
}

// CacheStore persists derived cache payloads.
type CacheStore interface {
	GetCacheEntry(ctx context.Context, cacheKey string) (CacheEntry, bool, error)
	PutCacheEntry(ctx context.Context, entry CacheEntry) error
	DeleteCacheEntry(ctx context.Context, cacheKey string) error
}

// EnquiryStore persists enquiry lists keyed by visitor id. Writes replace the
// previous record.
type EnquiryStore interface {
	GetEnquiryList(ctx context.Context, visitorID string) (EnquiryRecord, bool, error)
	PutEnquiryList(ctx context.Context, record EnquiryRecord) error
}

// LeadStore persists lead submissions.
type LeadStore interface {
	CreateLead(ctx context.Context, record LeadRecord) error
	GetLead(ctx context.Context, leadID string) (LeadRecord, error)
	// ListLeads pages leads newest first. An empty kind lists every kind.
	ListLeads(ctx context.Context, kind string, pageSize int, pageToken string) (LeadPage, error)
}

// Store is the full site persistence contract.
type Store interface {
	CacheStore
	EnquiryStore
	LeadStore
	Close() error
}
