package leads

import (
	"context"
	"fmt"

	siteleads "github.com/Godwin-Baiju/aissol-test/internal/services/site/leads"
	module "github.com/Godwin-Baiju/aissol-test/internal/services/site/module"
	apperrors "github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/errors"
)

var errLeadsUnavailable = apperrors.E(apperrors.KindUnavailable, "lead submissions are not configured")

type service struct {
	recorder module.LeadRecorder
}

func newService(deps module.Dependencies) service {
	return service{recorder: deps.Leads}
}

// receipt is returned for an accepted submission.
type receipt struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (s service) record(ctx context.Context, form siteleads.Form) (receipt, error) {
	if s.recorder == nil {
		return receipt{}, errLeadsUnavailable
	}
	lead, err := s.recorder.Record(ctx, form)
	if err != nil {
		return receipt{}, err
	}
	return receipt{ID: lead.ID, Message: acknowledgement(lead.Form)}, nil
}

func acknowledgement(form siteleads.Form) string {
	switch f := form.(type) {
	case *siteleads.ContactForm:
		return "Thank you for your message. We will contact you shortly."
	case *siteleads.CareerApplication:
		return "Thank you for your application. We will review it and contact you soon."
	case *siteleads.ProductEnquiry:
		return fmt.Sprintf("Thank you for your interest in %s. Our team will contact you shortly.", f.Product)
	case *siteleads.ServiceEnquiry:
		return fmt.Sprintf("Thank you for your interest in our %s. Our team will contact you shortly to discuss your requirements.", f.Service)
	default:
		return "Thank you. Our team will contact you shortly."
	}
}
