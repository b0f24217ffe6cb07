package leads

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	apperrors "github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/errors"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/storage"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type memoryLeadStore struct {
	mu        sync.Mutex
	records   []storage.LeadRecord
	createErr error
}

func (m *memoryLeadStore) CreateLead(_ context.Context, record storage.LeadRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.records = append(m.records, record)
	return nil
}

func (m *memoryLeadStore) GetLead(_ context.Context, leadID string) (storage.LeadRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, record := range m.records {
		if record.ID == leadID {
			return record, nil
		}
	}
	return storage.LeadRecord{}, storage.ErrNotFound
}

func (m *memoryLeadStore) ListLeads(context.Context, string, int, string) (storage.LeadPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return storage.LeadPage{Leads: append([]storage.LeadRecord(nil), m.records...)}, nil
}

func newTestRecorder(store storage.LeadStore, logger *zap.Logger) *Recorder {
	r := NewRecorder(store, logger)
	r.now = func() time.Time { return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC) }
	r.newID = func() (string, error) { return "lead-1", nil }
	return r
}

func validContact() *ContactForm {
	return &ContactForm{
		Name:    "  Amal Haddad ",
		Email:   "amal@example.com",
		Subject: "Site survey",
		Message: "Please call me about a survey.",
		Service: "fm200",
	}
}

func TestFormValidation(t *testing.T) {
	t.Parallel()

	price := 12.5
	negative := -1.0
	tests := []struct {
		name       string
		form       Form
		wantFields []string
	}{
		{name: "valid contact", form: validContact()},
		{
			name:       "contact missing fields",
			form:       &ContactForm{Email: "not-an-email"},
			wantFields: []string{"name", "email", "subject", "message"},
		},
		{
			name:       "contact display name address rejected",
			form:       &ContactForm{Name: "A", Email: "Amal <amal@example.com>", Subject: "s", Message: "m"},
			wantFields: []string{"email"},
		},
		{
			name:       "contact unknown service",
			form:       &ContactForm{Name: "A", Email: "a@example.com", Subject: "s", Message: "m", Service: "plumbing"},
			wantFields: []string{"service"},
		},
		{
			name:       "contact name too long",
			form:       &ContactForm{Name: strings.Repeat("n", maxNameLength+1), Email: "a@example.com", Subject: "s", Message: "m"},
			wantFields: []string{"name"},
		},
		{
			name:       "career without resume",
			form:       &CareerApplication{Name: "A", Email: "a@example.com", Phone: "+966 5"},
			wantFields: []string{"resume"},
		},
		{
			name: "valid product enquiry",
			form: &ProductEnquiry{Product: "Smoke Detector", Name: "A", Email: "a@example.com", Message: "m", Urgency: "high"},
		},
		{
			name:       "product enquiry bad urgency",
			form:       &ProductEnquiry{Product: "Smoke Detector", Name: "A", Email: "a@example.com", Message: "m", Urgency: "asap"},
			wantFields: []string{"urgency"},
		},
		{
			name: "valid service enquiry",
			form: &ServiceEnquiry{Service: "maintenance", Name: "A", Email: "a@example.com", Message: "m", ProjectType: "upgrade", Timeframe: "soon"},
		},
		{
			name:       "service enquiry bad enums",
			form:       &ServiceEnquiry{Service: "maintenance", Name: "A", Email: "a@example.com", Message: "m", ProjectType: "rebuild", Timeframe: "never"},
			wantFields: []string{"project_type", "timeframe"},
		},
		{
			name: "valid enquiry list",
			form: &EnquiryListSubmission{
				FullName: "A", Email: "a@example.com", Phone: "1", Subject: "s", Message: "m",
				Items: []EnquiryLine{{Title: "Panel", Quantity: 2, Price: &price}},
			},
		},
		{
			name:       "enquiry list without items",
			form:       &EnquiryListSubmission{FullName: "A", Email: "a@example.com", Phone: "1", Subject: "s", Message: "m"},
			wantFields: []string{"items"},
		},
		{
			name: "enquiry list bad line",
			form: &EnquiryListSubmission{
				FullName: "A", Email: "a@example.com", Phone: "1", Subject: "s", Message: "m",
				Items: []EnquiryLine{{Title: "Panel", Quantity: 1, Price: &negative}},
			},
			wantFields: []string{"items[0]"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.form.normalize()
			errs := tc.form.validate()
			var got []string
			for _, field := range tc.wantFields {
				if _, ok := errs[field]; ok {
					got = append(got, field)
				}
			}
			if diff := cmp.Diff(tc.wantFields, got); diff != "" {
				t.Fatalf("field errors %v mismatch (-want +got):\n%s", errs, diff)
			}
			if len(errs) != len(tc.wantFields) {
				t.Fatalf("field errors = %v, want only %v", errs, tc.wantFields)
			}
		})
	}
}

func TestCareerApplicationDefaultsJobTitle(t *testing.T) {
	t.Parallel()

	form := &CareerApplication{JobTitle: "   "}
	form.normalize()
	if form.JobTitle != DefaultJobTitle {
		t.Fatalf("JobTitle = %q, want %q", form.JobTitle, DefaultJobTitle)
	}
}

func TestResumeValidation(t *testing.T) {
	t.Parallel()

	pdf := []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n")
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{name: "pdf", data: pdf},
		{name: "plain text", data: []byte("Experienced fire safety engineer.\n")},
		{name: "image rejected", data: png, wantErr: true},
		{name: "empty rejected", data: nil, wantErr: true},
		{name: "oversized rejected", data: append(bytes.Clone(pdf), make([]byte, MaxResumeBytes)...), wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := NewResume("cv.bin", tc.data).validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestNewResumeSniffsContentType(t *testing.T) {
	t.Parallel()

	resume := NewResume("../../etc/cv.pdf", []byte("%PDF-1.7\n"))
	if resume.Filename != "cv.pdf" {
		t.Fatalf("Filename = %q, want cv.pdf", resume.Filename)
	}
	if resume.ContentType != "application/pdf" {
		t.Fatalf("ContentType = %q, want application/pdf", resume.ContentType)
	}
}

func TestRecorderLogsAndPersists(t *testing.T) {
	t.Parallel()

	store := &memoryLeadStore{}
	core, logs := observer.New(zap.InfoLevel)
	recorder := newTestRecorder(store, zap.New(core))

	lead, err := recorder.Record(context.Background(), validContact())
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if lead.ID != "lead-1" || lead.Kind != KindContact {
		t.Fatalf("lead = %+v, want id lead-1 kind contact", lead)
	}

	entries := logs.FilterMessage("lead submitted").All()
	if len(entries) != 1 {
		t.Fatalf("lead logs = %d, want 1", len(entries))
	}
	logged, ok := entries[0].ContextMap()["lead"].(map[string]any)
	if !ok {
		t.Fatalf("lead field = %#v, want object", entries[0].ContextMap()["lead"])
	}
	form, _ := logged["form"].(map[string]any)
	if form["name"] != "Amal Haddad" {
		t.Fatalf("logged name = %v, want trimmed name", form["name"])
	}

	if len(store.records) != 1 {
		t.Fatalf("records = %d, want 1", len(store.records))
	}
	record := store.records[0]
	if record.Name != "Amal Haddad" || record.Email != "amal@example.com" || record.Kind != "contact" {
		t.Fatalf("record = %+v", record)
	}

	decoded, err := Decode(record)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if diff := cmp.Diff(lead.Form, decoded.Form); diff != "" {
		t.Fatalf("decoded form mismatch (-want +got):\n%s", diff)
	}
}

func TestRecorderRejectsInvalidForm(t *testing.T) {
	t.Parallel()

	store := &memoryLeadStore{}
	_, err := newTestRecorder(store, nil).Record(context.Background(), &ContactForm{})
	if got := apperrors.HTTPStatus(err); got != http.StatusBadRequest {
		t.Fatalf("HTTPStatus = %d, want %d", got, http.StatusBadRequest)
	}
	if len(store.records) != 0 {
		t.Fatalf("records = %d, want 0", len(store.records))
	}
}

func TestRecorderWithoutStoreOnlyLogs(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	if _, err := newTestRecorder(nil, zap.New(core)).Record(context.Background(), validContact()); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if logs.FilterMessage("lead submitted").Len() != 1 {
		t.Fatal("expected lead to be logged")
	}
}

func TestRecorderPersistFailureIsUnavailable(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("database is locked")
	core, logs := observer.New(zap.InfoLevel)
	recorder := newTestRecorder(&memoryLeadStore{createErr: storeErr}, zap.New(core))

	_, err := recorder.Record(context.Background(), validContact())
	if !errors.Is(err, storeErr) {
		t.Fatalf("Record() error = %v, want wrapping %v", err, storeErr)
	}
	if got := apperrors.HTTPStatus(err); got != http.StatusServiceUnavailable {
		t.Fatalf("HTTPStatus = %d, want %d", got, http.StatusServiceUnavailable)
	}
	if logs.FilterMessage("lead submitted").Len() != 1 || logs.FilterMessage("persist lead failed").Len() != 1 {
		t.Fatalf("logs = %v, want submission then failure", logs.All())
	}
}

func TestDecodeUnknownKind(t *testing.T) {
	t.Parallel()

	if _, err := Decode(storage.LeadRecord{ID: "x", Kind: "fax", PayloadBytes: []byte("{}")}); err == nil {
		t.Fatal("expected unknown kind error")
	}
}

func TestDigestEscapesAndListsFields(t *testing.T) {
	t.Parallel()

	price := 99.0
	leads := []Lead{
		{
			ID:        "lead-1",
			Kind:      KindContact,
			CreatedAt: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
			Form:      &ContactForm{Name: "<script>alert(1)</script>", Email: "a@example.com", Subject: "s", Message: "m"},
		},
		{
			ID:        "lead-2",
			Kind:      KindEnquiryList,
			CreatedAt: time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
			Form: &EnquiryListSubmission{
				FullName: "B", Email: "b@example.com",
				Items: []EnquiryLine{{Title: "Panel", Quantity: 3, Price: &price}},
			},
		},
	}

	var buf bytes.Buffer
	if err := Digest(leads, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	html := buf.String()
	for _, want := range []string{
		"2 submissions",
		"&lt;script&gt;alert(1)&lt;/script&gt;",
		`<section id="lead-2">`,
		"quantity: 3",
		"<dt>total_items</dt><dd>3</dd>",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("digest missing %q:\n%s", want, html)
		}
	}
	if strings.Contains(html, "<script>") {
		t.Fatal("digest contains unescaped script tag")
	}
}
