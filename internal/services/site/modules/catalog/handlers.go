package catalog

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	sitecatalog "github.com/Godwin-Baiju/aissol-test/internal/services/site/catalog"
	apperrors "github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/errors"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/httpx"
)

type handlers struct {
	service service
}

func newHandlers(s service) handlers {
	return handlers{service: s}
}

func (h handlers) handleProducts(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r.URL.Query())
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	page, err := h.service.listProducts(httpx.RequestContext(r), q)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, page)
}

func (h handlers) handleProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.product(httpx.RequestContext(r), r.PathValue("productID"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, product)
}

func (h handlers) handleCategories(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.categories(httpx.RequestContext(r))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, view)
}

func parseQuery(values url.Values) (sitecatalog.Query, error) {
	fields := map[string]string{}
	page := parsePositive(values.Get("page"), "page", fields)
	pageSize := parsePositive(values.Get("page_size"), "page_size", fields)
	if len(fields) > 0 {
		return sitecatalog.Query{}, apperrors.Invalid("invalid catalog query", fields)
	}
	return sitecatalog.Query{
		Category: values.Get("category"),
		Search:   values.Get("q"),
		Filter:   values.Get("filter"),
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func parsePositive(raw, field string, fields map[string]string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		fields[field] = "must be a positive integer"
		return 0
	}
	return n
}
