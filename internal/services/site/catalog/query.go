package catalog

import (
	"strings"

	"github.com/Godwin-Baiju/aissol-test/internal/services/site/catalog/filter"
	apperrors "github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/errors"
	"golang.org/x/text/cases"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

const (
	// DefaultPageSize matches the nine-card product grid.
	DefaultPageSize = 9
	// MaxPageSize caps one page.
	MaxPageSize = 60
)

// FilterFields are the product fields accepted in filter expressions.
var FilterFields = filter.Fields{
	"id":            filter.FieldString,
	"title":         filter.FieldString,
	"category_id":   filter.FieldString,
	"category":      filter.FieldString,
	"feature_count": filter.FieldInt,
}

// Query selects one page of products.
type Query struct {
	// Category is a taxonomy id; empty or "all" matches everything.
	Category string
	// Search matches case-insensitively against title or description.
	Search string
	// Filter is an optional AIP-160 expression over FilterFields.
	Filter   string
	Page     int
	PageSize int
}

// Page is one slice of matching products.
type Page struct {
	Products    []Product `json:"products"`
	Page        int       `json:"page"`
	PageSize    int       `json:"page_size"`
	TotalItems  int       `json:"total_items"`
	TotalPages  int       `json:"total_pages"`
	HasNext     bool      `json:"has_next"`
	HasPrevious bool      `json:"has_previous"`
}

// matcher is a compiled Query predicate.
type matcher struct {
	category string
	search   string
	filter   *expr.Expr
	folder   cases.Caser
}

func (q Query) normalized() Query {
	q.Category = strings.TrimSpace(q.Category)
	if q.Category == "" {
		q.Category = AllCategoryID
	}
	q.Search = strings.TrimSpace(q.Search)
	q.Filter = strings.TrimSpace(q.Filter)
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}

func compile(q Query) (matcher, error) {
	parsed, err := filter.Parse(q.Filter, FilterFields)
	if err != nil {
		return matcher{}, apperrors.E(apperrors.KindInvalidInput, err.Error())
	}
	folder := cases.Fold()
	return matcher{
		category: q.Category,
		search:   folder.String(q.Search),
		filter:   parsed,
		folder:   folder,
	}, nil
}

func (m matcher) match(p Product) (bool, error) {
	if m.category != AllCategoryID && p.CategoryID != m.category {
		return false, nil
	}
	if m.search != "" &&
		!strings.Contains(m.folder.String(p.Title), m.search) &&
		!strings.Contains(m.folder.String(p.Description), m.search) {
		return false, nil
	}
	ok, err := filter.Evaluate(m.filter, productResolver(p))
	if err != nil {
		return false, apperrors.E(apperrors.KindInvalidInput, err.Error())
	}
	return ok, nil
}

func productResolver(p Product) filter.Resolver {
	return func(name string) (any, bool) {
		switch name {
		case "id":
			return p.ID, true
		case "title":
			return p.Title, true
		case "category_id":
			return p.CategoryID, true
		case "category":
			return p.Category, true
		case "feature_count":
			return len(p.Features), true
		default:
			return nil, false
		}
	}
}

// Apply filters products by q and returns the requested page.
func Apply(products []Product, q Query) (Page, error) {
	q = q.normalized()
	m, err := compile(q)
	if err != nil {
		return Page{}, err
	}
	matched := make([]Product, 0, len(products))
	for _, product := range products {
		ok, err := m.match(product)
		if err != nil {
			return Page{}, err
		}
		if ok {
			matched = append(matched, product)
		}
	}
	return Paginate(matched, q.Page, q.PageSize), nil
}

// Paginate slices products into pages of size items.
//
// Pages past the end yield an empty product slice rather than an error.
func Paginate(products []Product, page, size int) Page {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	total := len(products)
	totalPages := total / size
	if total%size != 0 {
		totalPages++
	}

	// page <= totalPages keeps page*size within total+size.
	items := []Product{}
	if page <= totalPages {
		first := (page - 1) * size
		items = products[first:min(first+size, total)]
	}
	return Page{
		Products:    items,
		Page:        page,
		PageSize:    size,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}
