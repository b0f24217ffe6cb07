package enquiry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/Godwin-Baiju/aissol-test/internal/services/site/catalog"
	siteenquiry "github.com/Godwin-Baiju/aissol-test/internal/services/site/enquiry"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/leads"
	module "github.com/Godwin-Baiju/aissol-test/internal/services/site/module"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/visitorcookie"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/routepath"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/storage"
)

type memoryEnquiryStore struct {
	mu      sync.Mutex
	records map[string]storage.EnquiryRecord
}

func (m *memoryEnquiryStore) GetEnquiryList(_ context.Context, visitorID string) (storage.EnquiryRecord, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[visitorID]
	return record, ok, nil
}

func (m *memoryEnquiryStore) PutEnquiryList(_ context.Context, record storage.EnquiryRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[record.VisitorID] = record
	return nil
}

type productsStub struct{}

var detector = catalog.Product{ID: "AS-1", EntryID: "e-1", Title: "Smoke Detector"}

func (productsStub) Get(_ context.Context, productID string) (catalog.Product, error) {
	if productID == detector.ID || productID == detector.EntryID {
		return detector, nil
	}
	return catalog.Product{}, catalog.ErrNotFound
}

func (productsStub) FindByTitle(_ context.Context, title string) (catalog.Product, error) {
	if title == detector.Title {
		return detector, nil
	}
	return catalog.Product{}, catalog.ErrNotFound
}

type recorderStub struct {
	mu    sync.Mutex
	forms []leads.Form
}

func (r *recorderStub) Record(ctx context.Context, form leads.Form) (leads.Lead, error) {
	lead, err := leads.NewRecorder(nil, nil).Record(ctx, form)
	if err != nil {
		return leads.Lead{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.forms = append(r.forms, form)
	return lead, nil
}

type client struct {
	t       *testing.T
	handler http.Handler
	cookie  *http.Cookie
}

func newClient(t *testing.T, recorder module.LeadRecorder) *client {
	t.Helper()
	store := &memoryEnquiryStore{records: map[string]storage.EnquiryRecord{}}
	deps := module.Dependencies{
		Enquiry: siteenquiry.NewService(store, productsStub{}, nil),
		Leads:   recorder,
	}
	mount, err := New().Mount(deps)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return &client{t: t, handler: mount.Handler}
}

func (c *client) do(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	rr := httptest.NewRecorder()
	c.handler.ServeHTTP(rr, req)
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == visitorcookie.Name {
			c.cookie = cookie
		}
	}
	return rr
}

func decodeList(t *testing.T, rr *httptest.ResponseRecorder) listView {
	t.Helper()
	var view listView
	if err := json.NewDecoder(rr.Body).Decode(&view); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return view
}

func TestModuleIDReturnsEnquiry(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "enquiry" {
		t.Fatalf("ID() = %q, want %q", got, "enquiry")
	}
}

func TestFirstAccessIssuesVisitorCookie(t *testing.T) {
	t.Parallel()

	c := newClient(t, nil)
	rr := c.do(http.MethodGet, routepath.Enquiry, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if c.cookie == nil || !c.cookie.HttpOnly || c.cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("cookie = %+v, want HttpOnly Lax visitor cookie", c.cookie)
	}
	view := decodeList(t, rr)
	if len(view.Items) != 0 || view.TotalItems != 0 {
		t.Fatalf("view = %+v, want empty", view)
	}
}

func TestEnquiryListLifecycle(t *testing.T) {
	t.Parallel()

	c := newClient(t, nil)
	if rr := c.do(http.MethodPost, routepath.EnquiryItems, `{"product_id":"AS-1","quantity":2}`); rr.Code != http.StatusOK {
		t.Fatalf("add product status = %d, body %s", rr.Code, rr.Body.String())
	}
	if rr := c.do(http.MethodPost, routepath.EnquiryItems, `{"title":"Smoke Detector","product_id":"AS-1"}`); rr.Code != http.StatusOK {
		t.Fatalf("deep link status = %d, body %s", rr.Code, rr.Body.String())
	}
	rr := c.do(http.MethodPost, routepath.EnquiryItems, `{"id":"custom-1","title":"Custom Panel","quantity":1,"price":120.5}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("add item status = %d, body %s", rr.Code, rr.Body.String())
	}
	view := decodeList(t, rr)
	if len(view.Items) != 2 || view.TotalItems != 4 {
		t.Fatalf("view = %+v, want 2 lines totalling 4", view)
	}

	view = decodeList(t, c.do(http.MethodPatch, routepath.EnquiryItemPath("e-1"), `{"quantity":5}`))
	if view.TotalItems != 6 {
		t.Fatalf("TotalItems after update = %d, want 6", view.TotalItems)
	}

	view = decodeList(t, c.do(http.MethodDelete, routepath.EnquiryItemPath("custom-1"), ""))
	if len(view.Items) != 1 || view.Items[0].ID != "e-1" {
		t.Fatalf("items after remove = %+v", view.Items)
	}

	view = decodeList(t, c.do(http.MethodDelete, routepath.Enquiry, ""))
	if len(view.Items) != 0 {
		t.Fatalf("items after clear = %+v", view.Items)
	}
}

func TestAddErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{name: "empty body", method: http.MethodPost, path: routepath.EnquiryItems, body: "", wantStatus: http.StatusBadRequest},
		{name: "unknown field", method: http.MethodPost, path: routepath.EnquiryItems, body: `{"sku":"x"}`, wantStatus: http.StatusBadRequest},
		{name: "nothing to add", method: http.MethodPost, path: routepath.EnquiryItems, body: `{"quantity":1}`, wantStatus: http.StatusBadRequest},
		{name: "unknown product", method: http.MethodPost, path: routepath.EnquiryItems, body: `{"product_id":"nope"}`, wantStatus: http.StatusNotFound},
		{name: "unknown title", method: http.MethodPost, path: routepath.EnquiryItems, body: `{"title":"smoke detector"}`, wantStatus: http.StatusNotFound},
		{name: "missing quantity", method: http.MethodPatch, path: routepath.EnquiryItemPath("e-1"), body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "put rejected", method: http.MethodPut, path: routepath.EnquiryItems, body: `{}`, wantStatus: http.StatusMethodNotAllowed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rr := newClient(t, nil).do(tc.method, tc.path, tc.body)
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rr.Code, tc.wantStatus, rr.Body.String())
			}
		})
	}
}

func TestSubmitRecordsLeadAndKeepsList(t *testing.T) {
	t.Parallel()

	recorder := &recorderStub{}
	c := newClient(t, recorder)
	c.do(http.MethodPost, routepath.EnquiryItems, `{"product_id":"AS-1","quantity":3}`)

	rr := c.do(http.MethodPost, routepath.EnquirySubmit,
		`{"full_name":"Amal","email":"amal@example.com","phone":"+966 5","subject":"Quote","message":"Please quote"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body %s)", rr.Code, http.StatusCreated, rr.Body.String())
	}
	if len(recorder.forms) != 1 {
		t.Fatalf("recorded forms = %d, want 1", len(recorder.forms))
	}
	submission, ok := recorder.forms[0].(*leads.EnquiryListSubmission)
	if !ok {
		t.Fatalf("form = %T, want *leads.EnquiryListSubmission", recorder.forms[0])
	}
	if len(submission.Items) != 1 || submission.Items[0].Title != "Smoke Detector" || submission.Items[0].Quantity != 3 {
		t.Fatalf("items = %+v", submission.Items)
	}

	view := decodeList(t, c.do(http.MethodGet, routepath.Enquiry, ""))
	if view.TotalItems != 3 {
		t.Fatalf("TotalItems after submit = %d, want 3", view.TotalItems)
	}
}

func TestSubmitEmptyListIsInvalid(t *testing.T) {
	t.Parallel()

	c := newClient(t, &recorderStub{})
	rr := c.do(http.MethodPost, routepath.EnquirySubmit,
		`{"full_name":"Amal","email":"amal@example.com","phone":"1","subject":"s","message":"m"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if !strings.Contains(rr.Body.String(), `"items"`) {
		t.Fatalf("body = %s, want items field error", rr.Body.String())
	}
}

func TestMountWithoutServicesIsUnavailable(t *testing.T) {
	t.Parallel()

	mount, err := New().Mount(module.Dependencies{})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Enquiry, nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}
