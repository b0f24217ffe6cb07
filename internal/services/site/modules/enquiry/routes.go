package enquiry

import (
	"net/http"

	apperrors "github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/errors"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/httpx"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/routepath"
)

var errQuantityRequired = apperrors.Invalid("invalid enquiry item", map[string]string{"quantity": "is required"})

func registerRoutes(mux *http.ServeMux, h handlers, limiter *httpx.RateLimiter) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Enquiry, h.handleList)
	mux.HandleFunc(http.MethodDelete+" "+routepath.Enquiry, h.handleClear)

	mux.HandleFunc(http.MethodPost+" "+routepath.EnquiryItems, h.handleAdd)
	mux.HandleFunc(http.MethodPatch+" "+routepath.EnquiryItem, h.handleUpdate)
	mux.HandleFunc(http.MethodDelete+" "+routepath.EnquiryItem, h.handleRemove)

	submit := http.Handler(http.HandlerFunc(h.handleSubmit))
	if limiter != nil {
		submit = limiter.Middleware()(submit)
	}
	mux.Handle(http.MethodPost+" "+routepath.EnquirySubmit, submit)
	mux.HandleFunc(http.MethodGet+" "+routepath.EnquirySubmit, httpx.MethodNotAllowed(http.MethodPost))
}
