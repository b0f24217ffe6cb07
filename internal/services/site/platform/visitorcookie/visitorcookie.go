// Package visitorcookie centralizes the anonymous visitor cookie behavior.
package visitorcookie

import (
	"net/http"
	"strings"

	"github.com/Godwin-Baiju/aissol-test/internal/platform/id"
	"github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/requestmeta"
)

// Name is the canonical visitor cookie name.
const Name = "aissol_visitor"

// MaxAge keeps the visitor id for one year.
const MaxAge = 365 * 24 * 60 * 60

// Read returns the visitor id when the cookie holds a well-formed value.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if !id.Valid(value) {
		return "", false
	}
	return value, true
}

// Ensure returns the current visitor id, issuing a new cookie when absent.
func Ensure(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) (string, error) {
	if visitorID, ok := Read(r); ok {
		return visitorID, nil
	}
	visitorID, err := id.NewID()
	if err != nil {
		return "", err
	}
	Write(w, r, visitorID, policy)
	return visitorID, nil
}

// Write sets the visitor cookie for the current request context.
func Write(w http.ResponseWriter, r *http.Request, visitorID string, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    strings.TrimSpace(visitorID),
		Path:     "/",
		MaxAge:   MaxAge,
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, policy),
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the visitor cookie.
func Clear(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, policy),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
