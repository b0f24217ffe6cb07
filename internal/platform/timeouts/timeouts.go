// Package timeouts defines shared timeout constants used across the site.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// CMSRequest caps one round trip to the headless CMS delivery API.
const CMSRequest = 10 * time.Second

// CatalogLoad caps a full catalog refresh, which may span several CMS pages.
const CatalogLoad = 30 * time.Second
