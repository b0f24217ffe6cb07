package requestmeta

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsHTTPSWithPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		req    func() *http.Request
		policy SchemePolicy
		want   bool
	}{
		{
			name: "plain http",
			req:  func() *http.Request { return httptest.NewRequest(http.MethodGet, "/", nil) },
			want: false,
		},
		{
			name: "tls connection",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.TLS = &tls.ConnectionState{}
				return req
			},
			want: true,
		},
		{
			name: "untrusted forwarded proto is ignored",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.Header.Set("X-Forwarded-Proto", "https")
				return req
			},
			want: false,
		},
		{
			name: "trusted forwarded proto is used",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.Header.Set("X-Forwarded-Proto", "https")
				return req
			},
			policy: SchemePolicy{TrustForwardedProto: true},
			want:   true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsHTTPSWithPolicy(tc.req(), tc.policy); got != tc.want {
				t.Fatalf("IsHTTPSWithPolicy() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsHTTPSNilRequest(t *testing.T) {
	t.Parallel()

	if IsHTTPS(nil) {
		t.Fatal("IsHTTPS(nil) = true, want false")
	}
}
