package content

import (
	"net/http"

	"github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/httpx"
)

type handlers struct {
	service service
}

func newHandlers(s service) handlers {
	return handlers{service: s}
}

func respond[T any](w http.ResponseWriter, value T, err error) {
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, value)
}

func (h handlers) handleCompany(w http.ResponseWriter, _ *http.Request) {
	company, err := h.service.company()
	respond(w, company, err)
}

func (h handlers) handleServices(w http.ResponseWriter, _ *http.Request) {
	services, err := h.service.services()
	respond(w, map[string]any{"services": services}, err)
}

func (h handlers) handleService(w http.ResponseWriter, r *http.Request) {
	svc, err := h.service.service(r.PathValue("slug"))
	respond(w, svc, err)
}

func (h handlers) handleCareers(w http.ResponseWriter, _ *http.Request) {
	careers, err := h.service.careers()
	respond(w, careers, err)
}

func (h handlers) handleJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.service.job(r.PathValue("slug"))
	respond(w, job, err)
}

func (h handlers) handleGallery(w http.ResponseWriter, _ *http.Request) {
	gallery, err := h.service.gallery()
	respond(w, map[string]any{"categories": gallery}, err)
}

func (h handlers) handleContact(w http.ResponseWriter, _ *http.Request) {
	contact, err := h.service.contact()
	respond(w, contact, err)
}
