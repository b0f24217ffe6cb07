package public

import (
	"net/http"

	"github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/httpx"
)

type handlers struct{}

func newHandlers() handlers { return handlers{} }

func (handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (handlers) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSONError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}
