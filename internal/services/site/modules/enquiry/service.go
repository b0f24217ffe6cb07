package enquiry

import (
	"context"
	"strings"

	siteenquiry "github.com/Godwin-Baiju/aissol-test/internal/services/site/enquiry"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/leads"
	module "github.com/Godwin-Baiju/aissol-test/internal/services/site/module"
	apperrors "github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/errors"
)

var (
	errEnquiryUnavailable = apperrors.E(apperrors.KindUnavailable, "enquiry list is not configured")
	errLeadsUnavailable   = apperrors.E(apperrors.KindUnavailable, "enquiry submission is not configured")
)

type service struct {
	lists   module.EnquiryService
	records module.LeadRecorder
}

func newService(deps module.Dependencies) service {
	return service{lists: deps.Enquiry, records: deps.Leads}
}

// listView is the JSON shape of an enquiry list.
type listView struct {
	Items      []siteenquiry.Item `json:"items"`
	TotalItems int                `json:"total_items"`
}

func viewOf(list siteenquiry.List) listView {
	return listView{Items: list.Items(), TotalItems: list.TotalItems()}
}

// addRequest adds one line. An id adds the described item as is; otherwise a
// product id alone is resolved from the catalog, and a title (with optional
// product id) follows the add-to-enquiry deep link.
type addRequest struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Quantity  int      `json:"quantity"`
	Price     *float64 `json:"price"`
	Image     string   `json:"image"`
	ProductID string   `json:"product_id"`
}

func (s service) load(ctx context.Context, visitorID string) (listView, error) {
	if s.lists == nil {
		return listView{}, errEnquiryUnavailable
	}
	list, err := s.lists.Load(ctx, visitorID)
	if err != nil {
		return listView{}, err
	}
	return viewOf(list), nil
}

func (s service) add(ctx context.Context, visitorID string, req addRequest) (listView, error) {
	if s.lists == nil {
		return listView{}, errEnquiryUnavailable
	}
	var (
		list siteenquiry.List
		err  error
	)
	switch {
	case strings.TrimSpace(req.ID) != "":
		list, err = s.lists.AddItem(ctx, visitorID, siteenquiry.Item{
			ID:        req.ID,
			Title:     req.Title,
			Quantity:  req.Quantity,
			Price:     req.Price,
			Image:     req.Image,
			ProductID: req.ProductID,
		})
	case strings.TrimSpace(req.Title) != "":
		list, err = s.lists.AddByTitle(ctx, visitorID, req.Title, req.ProductID)
	case strings.TrimSpace(req.ProductID) != "":
		list, err = s.lists.AddProduct(ctx, visitorID, req.ProductID, req.Quantity)
	default:
		err = apperrors.Invalid("invalid enquiry item", map[string]string{"product_id": "is required"})
	}
	if err != nil {
		return listView{}, err
	}
	return viewOf(list), nil
}

func (s service) updateQuantity(ctx context.Context, visitorID, itemID string, quantity int) (listView, error) {
	if s.lists == nil {
		return listView{}, errEnquiryUnavailable
	}
	list, err := s.lists.UpdateQuantity(ctx, visitorID, itemID, quantity)
	if err != nil {
		return listView{}, err
	}
	return viewOf(list), nil
}

func (s service) remove(ctx context.Context, visitorID, itemID string) (listView, error) {
	if s.lists == nil {
		return listView{}, errEnquiryUnavailable
	}
	list, err := s.lists.Remove(ctx, visitorID, itemID)
	if err != nil {
		return listView{}, err
	}
	return viewOf(list), nil
}

func (s service) clear(ctx context.Context, visitorID string) (listView, error) {
	if s.lists == nil {
		return listView{}, errEnquiryUnavailable
	}
	list, err := s.lists.Clear(ctx, visitorID)
	if err != nil {
		return listView{}, err
	}
	return viewOf(list), nil
}

// submitRequest carries the enquiry contact form. Lines come from the stored
// list, never from the request.
type submitRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

// submit records the visitor's list as an enquiry lead. The list is kept.
func (s service) submit(ctx context.Context, visitorID string, req submitRequest) (leads.Lead, error) {
	if s.lists == nil {
		return leads.Lead{}, errEnquiryUnavailable
	}
	if s.records == nil {
		return leads.Lead{}, errLeadsUnavailable
	}
	list, err := s.lists.Load(ctx, visitorID)
	if err != nil {
		return leads.Lead{}, err
	}
	items := list.Items()
	lines := make([]leads.EnquiryLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, leads.EnquiryLine{Title: item.Title, Quantity: item.Quantity, Price: item.Price})
	}
	return s.records.Record(ctx, &leads.EnquiryListSubmission{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Company:  req.Company,
		Subject:  req.Subject,
		Message:  req.Message,
		Items:    lines,
	})
}
