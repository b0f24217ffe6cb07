package leads

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Godwin-Baiju/aissol-test/internal/services/site/storage"
	"go.uber.org/zap/zapcore"
)

// Kind names one submission flow.
type Kind string

const (
	KindContact           Kind = "contact"
	KindCareerApplication Kind = "career_application"
	KindProductEnquiry    Kind = "product_enquiry"
	KindServiceEnquiry    Kind = "service_enquiry"
	KindEnquiryList       Kind = "enquiry_list"
)

// Kinds lists every submission kind.
func Kinds() []Kind {
	return []Kind{KindContact, KindCareerApplication, KindProductEnquiry, KindServiceEnquiry, KindEnquiryList}
}

// ParseKind validates a kind name. The empty string is rejected.
func ParseKind(raw string) (Kind, error) {
	for _, kind := range Kinds() {
		if string(kind) == raw {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown lead kind %q", raw)
}

// Form is one submitted form of any kind.
type Form interface {
	zapcore.ObjectMarshaler
	Kind() Kind
	// Contact returns the submitter name and email.
	Contact() (name, email string)
	normalize()
	validate() fieldErrors
}

// Lead is one recorded submission.
type Lead struct {
	ID        string
	Kind      Kind
	CreatedAt time.Time
	Form      Form
}

// MarshalLogObject writes the lead and its form fields.
func (l Lead) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("lead_id", l.ID)
	enc.AddString("kind", string(l.Kind))
	enc.AddTime("created_at", l.CreatedAt)
	if l.Form == nil {
		return nil
	}
	return enc.AddObject("form", l.Form)
}

// Record converts a lead to its storage shape.
func (l Lead) Record() (storage.LeadRecord, error) {
	if l.Form == nil {
		return storage.LeadRecord{}, fmt.Errorf("lead form is required")
	}
	payload, err := json.Marshal(l.Form)
	if err != nil {
		return storage.LeadRecord{}, fmt.Errorf("encode lead: %w", err)
	}
	name, email := l.Form.Contact()
	return storage.LeadRecord{
		ID:           l.ID,
		Kind:         string(l.Kind),
		Name:         name,
		Email:        email,
		PayloadBytes: payload,
		CreatedAt:    l.CreatedAt,
	}, nil
}

// Decode rebuilds a lead from its storage shape.
func Decode(record storage.LeadRecord) (Lead, error) {
	kind, err := ParseKind(record.Kind)
	if err != nil {
		return Lead{}, err
	}
	var form Form
	switch kind {
	case KindContact:
		form = &ContactForm{}
	case KindCareerApplication:
		form = &CareerApplication{}
	case KindProductEnquiry:
		form = &ProductEnquiry{}
	case KindServiceEnquiry:
		form = &ServiceEnquiry{}
	case KindEnquiryList:
		form = &EnquiryListSubmission{}
	}
	if err := json.Unmarshal(record.PayloadBytes, form); err != nil {
		return Lead{}, fmt.Errorf("decode lead %s: %w", record.ID, err)
	}
	return Lead{
		ID:        record.ID,
		Kind:      kind,
		CreatedAt: record.CreatedAt,
		Form:      form,
	}, nil
}
