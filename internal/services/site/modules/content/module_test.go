package content

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	sitecontent "github.com/Godwin-Baiju/aissol-test/internal/services/site/content"
	module "github.com/Godwin-Baiju/aissol-test/internal/services/site/module"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/routepath"
)

func mountWithDefaultContent(t *testing.T) http.Handler {
	t.Helper()
	site, err := sitecontent.Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	mount, err := New().Mount(module.Dependencies{Content: site})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return mount.Handler
}

func TestModuleIDReturnsContent(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "content" {
		t.Fatalf("ID() = %q, want %q", got, "content")
	}
}

func TestMountRoutes(t *testing.T) {
	t.Parallel()

	handler := mountWithDefaultContent(t)
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "company", method: http.MethodGet, path: routepath.ContentCompany, wantStatus: http.StatusOK},
		{name: "services", method: http.MethodGet, path: routepath.ContentServices, wantStatus: http.StatusOK},
		{name: "service", method: http.MethodGet, path: routepath.ServicePath("novac"), wantStatus: http.StatusOK},
		{name: "unknown service", method: http.MethodGet, path: routepath.ServicePath("plumbing"), wantStatus: http.StatusNotFound},
		{name: "careers", method: http.MethodGet, path: routepath.ContentCareers, wantStatus: http.StatusOK},
		{name: "job", method: http.MethodGet, path: routepath.JobPath("service-technician"), wantStatus: http.StatusOK},
		{name: "unknown job", method: http.MethodGet, path: routepath.JobPath("pilot"), wantStatus: http.StatusNotFound},
		{name: "gallery", method: http.MethodGet, path: routepath.ContentGallery, wantStatus: http.StatusOK},
		{name: "contact", method: http.MethodGet, path: routepath.ContentContact, wantStatus: http.StatusOK},
		{name: "post rejected", method: http.MethodPost, path: routepath.ContentCompany, wantStatus: http.StatusMethodNotAllowed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rr.Code, tc.wantStatus, rr.Body.String())
			}
		})
	}
}

func TestServiceBody(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountWithDefaultContent(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.ServicePath("fm200"), nil))
	var body struct {
		Slug     string   `json:"slug"`
		Title    string   `json:"title"`
		Features []string `json:"features"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Slug != "fm200" || body.Title != "FM200 Systems" || len(body.Features) != 6 {
		t.Fatalf("body = %+v", body)
	}
}

func TestCareersHidesUnlistedJobs(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountWithDefaultContent(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.ContentCareers, nil))
	var body struct {
		Jobs []struct {
			Slug string `json:"slug"`
		} `json:"jobs"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	for _, job := range body.Jobs {
		if job.Slug == "general-application" {
			t.Fatal("careers listing includes general application")
		}
	}
	if len(body.Jobs) != 5 {
		t.Fatalf("len(jobs) = %d, want 5", len(body.Jobs))
	}
}

func TestMountWithoutContentIsUnavailable(t *testing.T) {
	t.Parallel()

	mount, err := New().Mount(module.Dependencies{})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.ContentCompany, nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}
