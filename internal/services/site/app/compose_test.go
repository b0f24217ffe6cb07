package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	module "github.com/Godwin-Baiju/aissol-test/internal/services/site/module"
)

type stubModule struct {
	id    string
	mount module.Mount
	err   error
}

func (m stubModule) ID() string { return m.id }

func (m stubModule) Mount(module.Dependencies) (module.Mount, error) {
	return m.mount, m.err
}

func statusHandler(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
}

func TestComposeRejectsInvalidModules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modules []module.Module
	}{
		{name: "nil module", modules: []module.Module{nil}},
		{name: "mount error", modules: []module.Module{stubModule{id: "broken", err: errors.New("boom")}}},
		{name: "empty prefix", modules: []module.Module{stubModule{id: "empty", mount: module.Mount{Prefix: " ", Handler: statusHandler(http.StatusOK)}}}},
		{name: "nil handler", modules: []module.Module{stubModule{id: "nohandler", mount: module.Mount{Prefix: "/x/"}}}},
		{name: "duplicate prefix", modules: []module.Module{
			stubModule{id: "one", mount: module.Mount{Prefix: "/one/", Handler: statusHandler(http.StatusOK)}},
			stubModule{id: "two", mount: module.Mount{Prefix: "one", Handler: statusHandler(http.StatusOK)}},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Composer{}).Compose(ComposeInput{Modules: tc.modules}); err == nil {
				t.Fatal("expected compose error")
			}
		})
	}
}

func TestComposeServesPrefixWithAndWithoutSlash(t *testing.T) {
	t.Parallel()

	h, err := Composer{}.Compose(ComposeInput{Modules: []module.Module{
		stubModule{id: "root", mount: module.Mount{Prefix: "/", Handler: statusHandler(http.StatusNotFound)}},
		stubModule{id: "enquiry", mount: module.Mount{Prefix: "/api/enquiry/", Handler: statusHandler(http.StatusNoContent)}},
	}})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	tests := []struct {
		path string
		want int
	}{
		{path: "/api/enquiry", want: http.StatusNoContent},
		{path: "/api/enquiry/items", want: http.StatusNoContent},
		{path: "/elsewhere", want: http.StatusNotFound},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if rr.Code != tc.want {
			t.Fatalf("GET %s status = %d, want %d", tc.path, rr.Code, tc.want)
		}
	}
}
