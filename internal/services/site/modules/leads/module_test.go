package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	siteleads "github.com/Godwin-Baiju/aissol-test/internal/services/site/leads"
	module "github.com/Godwin-Baiju/aissol-test/internal/services/site/module"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/routepath"
)

type recorderStub struct {
	mu    sync.Mutex
	leads []siteleads.Lead
}

func (r *recorderStub) Record(ctx context.Context, form siteleads.Form) (siteleads.Lead, error) {
	lead, err := siteleads.NewRecorder(nil, nil).Record(ctx, form)
	if err != nil {
		return siteleads.Lead{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads = append(r.leads, lead)
	return lead, nil
}

func mountHandler(t *testing.T, deps module.Dependencies) http.Handler {
	t.Helper()
	mount, err := New().Mount(deps)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.LeadsPrefix {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, routepath.LeadsPrefix)
	}
	return mount.Handler
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rr.Body.String(), err)
	}
	return body
}

func postJSON(handler http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestModuleIDReturnsLeads(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "leads" {
		t.Fatalf("ID() = %q, want %q", got, "leads")
	}
}

func TestJSONLeadRoutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		path        string
		body        string
		wantStatus  int
		wantMessage string
		wantField   string
	}{
		{
			name:        "contact",
			path:        routepath.LeadsContact,
			body:        `{"name":"Asha","email":"asha@example.com","subject":"Audit","message":"Please call","service":"fm200"}`,
			wantStatus:  http.StatusCreated,
			wantMessage: "Thank you for your message. We will contact you shortly.",
		},
		{
			name:        "product enquiry",
			path:        routepath.LeadsProducts,
			body:        `{"product":"Smoke Detector","name":"Asha","email":"asha@example.com","message":"Need 20","urgency":"high"}`,
			wantStatus:  http.StatusCreated,
			wantMessage: "Thank you for your interest in Smoke Detector. Our team will contact you shortly.",
		},
		{
			name:        "service enquiry",
			path:        routepath.LeadsServices,
			body:        `{"service":"Fire Detection","name":"Asha","email":"asha@example.com","message":"New site","timeframe":"soon"}`,
			wantStatus:  http.StatusCreated,
			wantMessage: "Thank you for your interest in our Fire Detection. Our team will contact you shortly to discuss your requirements.",
		},
		{
			name:       "contact missing subject",
			path:       routepath.LeadsContact,
			body:       `{"name":"Asha","email":"asha@example.com","message":"Please call"}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "subject",
		},
		{
			name:       "contact bad email",
			path:       routepath.LeadsContact,
			body:       `{"name":"Asha","email":"not-an-email","subject":"Audit","message":"Please call"}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "email",
		},
		{
			name:       "product unknown urgency",
			path:       routepath.LeadsProducts,
			body:       `{"product":"Smoke Detector","name":"Asha","email":"asha@example.com","message":"Need 20","urgency":"yesterday"}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "urgency",
		},
		{
			name:       "unknown json field",
			path:       routepath.LeadsServices,
			body:       `{"service":"Fire Detection","budget":100}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			recorder := &recorderStub{}
			handler := mountHandler(t, module.Dependencies{Leads: recorder})
			rr := postJSON(handler, tc.path, tc.body)
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rr.Code, tc.wantStatus, rr.Body.String())
			}
			body := decodeBody(t, rr)
			if tc.wantMessage != "" {
				if body["message"] != tc.wantMessage {
					t.Fatalf("message = %v, want %q", body["message"], tc.wantMessage)
				}
				if id, _ := body["id"].(string); id == "" {
					t.Fatalf("response id is empty: %v", body)
				}
				if len(recorder.leads) != 1 {
					t.Fatalf("recorded leads = %d, want 1", len(recorder.leads))
				}
			}
			if tc.wantField != "" {
				fields, _ := body["fields"].(map[string]any)
				if _, ok := fields[tc.wantField]; !ok {
					t.Fatalf("fields = %v, want %q", body["fields"], tc.wantField)
				}
			}
		})
	}
}

func careerRequest(t *testing.T, fields map[string]string, filename string, resume []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if resume != nil {
		part, err := writer.CreateFormFile("resume", filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(resume); err != nil {
			t.Fatalf("write resume: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, routepath.LeadsCareers, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

var applicant = map[string]string{
	"name":  "Ravi",
	"email": "ravi@example.com",
	"phone": "+91 98450 00000",
}

func TestCareerApplicationWithResume(t *testing.T) {
	t.Parallel()

	recorder := &recorderStub{}
	handler := mountHandler(t, module.Dependencies{Leads: recorder})
	resume := []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n%%EOF\n")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, careerRequest(t, applicant, "../../cv.pdf", resume))
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body %s)", rr.Code, http.StatusCreated, rr.Body.String())
	}
	body := decodeBody(t, rr)
	if body["message"] != "Thank you for your application. We will review it and contact you soon." {
		t.Fatalf("message = %v", body["message"])
	}

	form, ok := recorder.leads[0].Form.(*siteleads.CareerApplication)
	if !ok {
		t.Fatalf("form type = %T, want *CareerApplication", recorder.leads[0].Form)
	}
	if form.JobTitle != siteleads.DefaultJobTitle {
		t.Fatalf("job title = %q, want %q", form.JobTitle, siteleads.DefaultJobTitle)
	}
	if form.Resume.Filename != "cv.pdf" {
		t.Fatalf("resume filename = %q, want %q", form.Resume.Filename, "cv.pdf")
	}
	if form.Resume.ContentType != "application/pdf" {
		t.Fatalf("resume content type = %q, want application/pdf", form.Resume.ContentType)
	}
}

func TestCareerApplicationRejectsBadResumes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		resume   []byte
	}{
		{name: "missing", resume: nil},
		{name: "empty", filename: "cv.pdf", resume: []byte{}},
		{name: "image", filename: "cv.pdf", resume: []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")},
		{name: "oversized", filename: "cv.txt", resume: bytes.Repeat([]byte("a"), siteleads.MaxResumeBytes+1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			recorder := &recorderStub{}
			handler := mountHandler(t, module.Dependencies{Leads: recorder})
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, careerRequest(t, applicant, tc.filename, tc.resume))
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d (body %s)", rr.Code, http.StatusBadRequest, rr.Body.String())
			}
			fields, _ := decodeBody(t, rr)["fields"].(map[string]any)
			if _, ok := fields["resume"]; !ok {
				t.Fatalf("fields = %v, want resume error", fields)
			}
			if len(recorder.leads) != 0 {
				t.Fatalf("recorded leads = %d, want 0", len(recorder.leads))
			}
		})
	}
}

func TestLeadRoutesRejectGet(t *testing.T) {
	t.Parallel()

	handler := mountHandler(t, module.Dependencies{Leads: &recorderStub{}})
	for _, path := range []string{routepath.LeadsContact, routepath.LeadsCareers, routepath.LeadsProducts, routepath.LeadsServices} {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusMethodNotAllowed {
			t.Fatalf("GET %s status = %d, want %d", path, rr.Code, http.StatusMethodNotAllowed)
		}
		if got := rr.Header().Get("Allow"); got != http.MethodPost {
			t.Fatalf("GET %s Allow = %q, want %q", path, got, http.MethodPost)
		}
	}
}

func TestLeadRoutesAreRateLimited(t *testing.T) {
	t.Parallel()

	handler := mountHandler(t, module.Dependencies{Leads: &recorderStub{}, LeadsRatePerMinute: 2})
	body := `{"name":"Asha","email":"asha@example.com","subject":"Audit","message":"Please call"}`
	for i := range 2 {
		if rr := postJSON(handler, routepath.LeadsContact, body); rr.Code != http.StatusCreated {
			t.Fatalf("request %d status = %d, want %d", i, rr.Code, http.StatusCreated)
		}
	}
	rr := postJSON(handler, routepath.LeadsContact, body)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusTooManyRequests)
	}
}

func TestMountWithoutRecorderIsUnavailable(t *testing.T) {
	t.Parallel()

	handler := mountHandler(t, module.Dependencies{})
	rr := postJSON(handler, routepath.LeadsContact, `{"name":"Asha","email":"asha@example.com","subject":"Audit","message":"Please call"}`)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}
