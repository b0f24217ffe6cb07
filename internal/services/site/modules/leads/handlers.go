package leads

import (
	"errors"
	"io"
	"net/http"

	siteleads "github.com/Godwin-Baiju/aissol-test/internal/services/site/leads"
	apperrors "github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/errors"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/httpx"
)

// multipartOverhead leaves room for the text fields next to the resume.
const multipartOverhead = 1 << 20

type handlers struct {
	service service
}

func newHandlers(s service) handlers {
	return handlers{service: s}
}

func (h handlers) handleContact(w http.ResponseWriter, r *http.Request) {
	h.recordJSON(w, r, &siteleads.ContactForm{})
}

func (h handlers) handleProductEnquiry(w http.ResponseWriter, r *http.Request) {
	h.recordJSON(w, r, &siteleads.ProductEnquiry{})
}

func (h handlers) handleServiceEnquiry(w http.ResponseWriter, r *http.Request) {
	h.recordJSON(w, r, &siteleads.ServiceEnquiry{})
}

func (h handlers) recordJSON(w http.ResponseWriter, r *http.Request, form siteleads.Form) {
	if err := httpx.DecodeJSON(r, form); err != nil {
		httpx.WriteError(w, err)
		return
	}
	h.record(w, r, form)
}

func (h handlers) handleCareers(w http.ResponseWriter, r *http.Request) {
	form, err := parseCareerApplication(w, r)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	h.record(w, r, form)
}

func (h handlers) record(w http.ResponseWriter, r *http.Request, form siteleads.Form) {
	receipt, err := h.service.record(httpx.RequestContext(r), form)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusCreated, receipt)
}

func parseCareerApplication(w http.ResponseWriter, r *http.Request) (*siteleads.CareerApplication, error) {
	r.Body = http.MaxBytesReader(w, r.Body, siteleads.MaxResumeBytes+multipartOverhead)
	if err := r.ParseMultipartForm(multipartOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, apperrors.Invalid("please check the highlighted fields", map[string]string{
				"resume": "file must be at most 5 MB",
			})
		}
		return nil, apperrors.E(apperrors.KindInvalidInput, "invalid multipart form")
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	form := &siteleads.CareerApplication{
		Name:        r.FormValue("name"),
		Email:       r.FormValue("email"),
		Phone:       r.FormValue("phone"),
		JobTitle:    r.FormValue("job_title"),
		CoverLetter: r.FormValue("cover_letter"),
	}
	file, header, err := r.FormFile("resume")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return form, nil
	case err != nil:
		return nil, apperrors.E(apperrors.KindInvalidInput, "invalid resume upload")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, siteleads.MaxResumeBytes+1))
	if err != nil {
		return nil, apperrors.E(apperrors.KindInvalidInput, "invalid resume upload")
	}
	form.Resume = siteleads.NewResume(header.Filename, data)
	return form, nil
}
