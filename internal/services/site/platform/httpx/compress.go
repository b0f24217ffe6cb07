package httpx

import (
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
)

// Compress brotli-encodes JSON and text responses for clients that accept br.
func Compress(level int) Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Accept-Encoding")
			if r.Method == http.MethodHead || !acceptsBrotli(r.Header.Get("Accept-Encoding")) {
				next.ServeHTTP(w, r)
				return
			}
			cw := &compressWriter{ResponseWriter: w, level: level}
			defer cw.close()
			next.ServeHTTP(cw, r)
		})
	}
}

func acceptsBrotli(header string) bool {
	for _, part := range strings.Split(header, ",") {
		coding, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if !strings.EqualFold(strings.TrimSpace(coding), "br") {
			continue
		}
		return strings.ReplaceAll(strings.TrimSpace(params), " ", "") != "q=0"
	}
	return false
}

func compressible(contentType string) bool {
	contentType = strings.ToLower(contentType)
	return strings.HasPrefix(contentType, "application/json") || strings.HasPrefix(contentType, "text/")
}

// compressWriter decides on the first header write whether to encode.
type compressWriter struct {
	http.ResponseWriter
	level       int
	encoder     *brotli.Writer
	wroteHeader bool
}

func (w *compressWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	header := w.Header()
	if status != http.StatusNoContent && status != http.StatusNotModified &&
		header.Get("Content-Encoding") == "" && compressible(header.Get("Content-Type")) {
		header.Del("Content-Length")
		header.Set("Content-Encoding", "br")
		w.encoder = brotli.NewWriterLevel(w.ResponseWriter, w.level)
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *compressWriter) Write(p []byte) (int, error) {
	if !w.wroteHeader {
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", http.DetectContentType(p))
		}
		w.WriteHeader(http.StatusOK)
	}
	if w.encoder != nil {
		return w.encoder.Write(p)
	}
	return w.ResponseWriter.Write(p)
}

func (w *compressWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *compressWriter) close() {
	if w.encoder != nil {
		_ = w.encoder.Close()
	}
}
