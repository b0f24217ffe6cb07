package contentful

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	siteotel "github.com/Godwin-Baiju/aissol-test/internal/platform/otel"
	"github.com/Godwin-Baiju/aissol-test/internal/platform/timeouts"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultBaseURL is the public Content Delivery API host.
	DefaultBaseURL = "https://cdn.contentful.com"
	// DefaultEnvironment is the environment used when none is configured.
	DefaultEnvironment = "master"
	// ProductContentType is the content type id of catalog products.
	ProductContentType = "product"

	defaultPageSize = 100
	maxErrorBody    = 64 << 10
)

var (
	// ErrNotConfigured reports missing space or token settings.
	ErrNotConfigured = errors.New("contentful credentials are not configured")
	// ErrNotFound reports that no product matched a lookup.
	ErrNotFound = errors.New("contentful product not found")
)

// StatusError is returned for non-2xx API responses.
type StatusError struct {
	StatusCode int
	ErrorID    string
	Message    string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("contentful returned status %d", e.StatusCode)
	if e.ErrorID != "" {
		msg += " (" + e.ErrorID + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Config holds Delivery API connection settings.
type Config struct {
	SpaceID     string
	AccessToken string
	Environment string
	BaseURL     string
	// PageSize bounds entries per request. Zero means 100.
	PageSize   int
	HTTPClient *http.Client
}

// Client fetches product entries.
type Client struct {
	spaceID     string
	accessToken string
	environment string
	baseURL     string
	pageSize    int
	http        *http.Client
	tracer      trace.Tracer
	group       singleflight.Group
}

// NewClient builds a client. Missing credentials are reported on first fetch.
func NewClient(cfg Config) *Client {
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = DefaultEnvironment
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeouts.CMSRequest}
	}
	return &Client{
		spaceID:     strings.TrimSpace(cfg.SpaceID),
		accessToken: strings.TrimSpace(cfg.AccessToken),
		environment: environment,
		baseURL:     baseURL,
		pageSize:    pageSize,
		http:        httpClient,
		tracer:      siteotel.Tracer("contentful"),
	}
}

// Configured reports whether space id and access token are set.
func (c *Client) Configured() bool {
	return c != nil && c.spaceID != "" && c.accessToken != ""
}

// FetchProducts returns every product entry with its included assets.
//
// Concurrent callers share one in-flight fetch. A caller whose context ends
// early stops waiting without cancelling the shared fetch.
func (c *Client) FetchProducts(ctx context.Context) (Products, error) {
	if err := ctx.Err(); err != nil {
		return Products{}, err
	}
	if !c.Configured() {
		return Products{}, ErrNotConfigured
	}

	ch := c.group.DoChan("products", func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeouts.CatalogLoad)
		defer cancel()
		return c.fetchAllProducts(fetchCtx)
	})
	select {
	case <-ctx.Done():
		return Products{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Products{}, res.Err
		}
		return res.Val.(Products), nil
	}
}

func (c *Client) fetchAllProducts(ctx context.Context) (Products, error) {
	ctx, span := c.tracer.Start(ctx, "contentful.FetchProducts")
	defer span.End()

	var out Products
	assetSeen := make(map[string]struct{})
	for skip := 0; ; {
		query := url.Values{}
		query.Set("content_type", ProductContentType)
		query.Set("include", "1")
		query.Set("limit", strconv.Itoa(c.pageSize))
		query.Set("skip", strconv.Itoa(skip))

		page, err := c.getEntries(ctx, query)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "fetch products")
			return Products{}, err
		}
		out.Total = page.Total
		out.Items = append(out.Items, page.Items...)
		for _, asset := range page.Includes.Asset {
			if _, ok := assetSeen[asset.Sys.ID]; ok {
				continue
			}
			assetSeen[asset.Sys.ID] = struct{}{}
			out.Assets = append(out.Assets, asset)
		}

		skip += len(page.Items)
		if len(page.Items) == 0 || skip >= page.Total {
			break
		}
	}
	span.SetAttributes(
		attribute.Int("contentful.total", out.Total),
		attribute.Int("contentful.items", len(out.Items)),
		attribute.Int("contentful.assets", len(out.Assets)),
	)
	return out, nil
}

// FetchProductByID looks up one product by its productId field.
func (c *Client) FetchProductByID(ctx context.Context, productID string) (Entry, []Asset, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, nil, err
	}
	if !c.Configured() {
		return Entry{}, nil, ErrNotConfigured
	}
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return Entry{}, nil, ErrNotFound
	}

	ctx, span := c.tracer.Start(ctx, "contentful.FetchProductByID",
		trace.WithAttributes(attribute.String("contentful.product_id", productID)))
	defer span.End()

	query := url.Values{}
	query.Set("content_type", ProductContentType)
	query.Set("fields.productId", productID)
	query.Set("include", "1")
	query.Set("limit", "1")

	page, err := c.getEntries(ctx, query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch product")
		return Entry{}, nil, err
	}
	if len(page.Items) == 0 {
		return Entry{}, nil, ErrNotFound
	}
	return page.Items[0], page.Includes.Asset, nil
}

func (c *Client) getEntries(ctx context.Context, query url.Values) (entriesResponse, error) {
	endpoint := fmt.Sprintf("%s/spaces/%s/environments/%s/entries?%s",
		c.baseURL,
		url.PathEscape(c.spaceID),
		url.PathEscape(c.environment),
		query.Encode(),
	)
	reqCtx, cancel := context.WithTimeout(ctx, timeouts.CMSRequest)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entriesResponse{}, fmt.Errorf("build entries request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return entriesResponse{}, fmt.Errorf("entries request: %w", err)
	}
	defer resp.Body.Close()
	trace.SpanFromContext(ctx).AddEvent("contentful.response", trace.WithAttributes(
		attribute.Int("http.status_code", resp.StatusCode),
		attribute.Int64("latency_ms", time.Since(start).Milliseconds()),
	))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return entriesResponse{}, decodeStatusError(resp)
	}

	var page entriesResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return entriesResponse{}, fmt.Errorf("decode entries response: %w", err)
	}
	return page, nil
}

func decodeStatusError(resp *http.Response) error {
	statusErr := &StatusError{StatusCode: resp.StatusCode}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(body) == 0 {
		return statusErr
	}
	var payload errorResponse
	if json.Unmarshal(body, &payload) == nil {
		statusErr.ErrorID = payload.Sys.ID
		statusErr.Message = strings.TrimSpace(payload.Message)
	}
	return statusErr
}
