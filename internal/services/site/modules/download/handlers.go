package download

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Godwin-Baiju/aissol-test/internal/platform/logging"
	"go.uber.org/zap"
)

type handlers struct {
	brochure brochure
	logger   *zap.Logger
}

func newHandlers(b brochure, logger *zap.Logger) handlers {
	return handlers{brochure: b, logger: logging.OrNop(logger)}
}

func (h handlers) handleBrochure(w http.ResponseWriter, r *http.Request) {
	f, err := h.brochure.open()
	if err != nil {
		if errors.Is(err, errBrochureMissing) {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}
		h.logger.Error("brochure download failed", zap.Error(err))
		http.Error(w, "Error downloading file", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	header := w.Header()
	header.Set("Content-Type", f.contentType)
	header.Set("Content-Disposition", "attachment; filename="+strconv.Quote(f.name))
	header.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	header.Set("Pragma", "no-cache")
	header.Set("Expires", "0")
	// A zero modtime keeps validators off a no-store response.
	http.ServeContent(w, r, f.name, time.Time{}, f)
}
