package enquiry

import (
	"net/http"

	module "github.com/Godwin-Baiju/aissol-test/internal/services/site/module"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/httpx"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/requestmeta"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/visitorcookie"
)

const submittedMessage = "Thank you for your enquiry. Our team will contact you shortly."

type handlers struct {
	service service
	policy  requestmeta.SchemePolicy
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, policy: deps.SchemePolicy}
}

// visitor returns the visitor id, issuing the cookie on first access.
func (h handlers) visitor(w http.ResponseWriter, r *http.Request) (string, bool) {
	visitorID, err := visitorcookie.Ensure(w, r, h.policy)
	if err != nil {
		httpx.WriteError(w, err)
		return "", false
	}
	return visitorID, true
}

func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	visitorID, ok := h.visitor(w, r)
	if !ok {
		return
	}
	view, err := h.service.load(httpx.RequestContext(r), visitorID)
	h.respond(w, http.StatusOK, view, err)
}

func (h handlers) handleAdd(w http.ResponseWriter, r *http.Request) {
	visitorID, ok := h.visitor(w, r)
	if !ok {
		return
	}
	var req addRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	view, err := h.service.add(httpx.RequestContext(r), visitorID, req)
	h.respond(w, http.StatusOK, view, err)
}

func (h handlers) handleUpdate(w http.ResponseWriter, r *http.Request) {
	visitorID, ok := h.visitor(w, r)
	if !ok {
		return
	}
	var req struct {
		Quantity *int `json:"quantity"`
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	if req.Quantity == nil {
		httpx.WriteError(w, errQuantityRequired)
		return
	}
	view, err := h.service.updateQuantity(httpx.RequestContext(r), visitorID, r.PathValue("itemID"), *req.Quantity)
	h.respond(w, http.StatusOK, view, err)
}

func (h handlers) handleRemove(w http.ResponseWriter, r *http.Request) {
	visitorID, ok := h.visitor(w, r)
	if !ok {
		return
	}
	view, err := h.service.remove(httpx.RequestContext(r), visitorID, r.PathValue("itemID"))
	h.respond(w, http.StatusOK, view, err)
}

func (h handlers) handleClear(w http.ResponseWriter, r *http.Request) {
	visitorID, ok := h.visitor(w, r)
	if !ok {
		return
	}
	view, err := h.service.clear(httpx.RequestContext(r), visitorID)
	h.respond(w, http.StatusOK, view, err)
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	visitorID, ok := h.visitor(w, r)
	if !ok {
		return
	}
	var req submitRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	lead, err := h.service.submit(httpx.RequestContext(r), visitorID, req)
	h.respond(w, http.StatusCreated, map[string]string{"id": lead.ID, "message": submittedMessage}, err)
}

func (handlers) respond(w http.ResponseWriter, status int, body any, err error) {
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, status, body)
}
