package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func corsResponse(t *testing.T, allowed []string, method, origin string) *httptest.ResponseRecorder {
	t.Helper()

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest(method, "/league/314", nil)
	req.Header.Set("Origin", origin)
	rec := httptest.NewRecorder()
	CORS(allowed, next).ServeHTTP(rec, req)
	return rec
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	rec := corsResponse(t, []string{"http://localhost:3000"}, http.MethodGet, "http://localhost:3000")

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Fatalf("expected credentials allowed, got %q", got)
	}
}

func TestCORS_WildcardSubdomain(t *testing.T) {
	allowed := []string{"http://localhost:3000", "https://*.vercel.app"}

	tests := []struct {
		origin string
		want   string
	}{
		{origin: "https://fpl-mini.vercel.app", want: "https://fpl-mini.vercel.app"},
		{origin: "https://preview.fpl-mini.vercel.app", want: "https://preview.fpl-mini.vercel.app"},
		{origin: "https://.vercel.app", want: ""},
		{origin: "http://fpl-mini.vercel.app", want: ""},
		{origin: "https://evil.com/x.vercel.app", want: ""},
		{origin: "https://vercel.app.evil.com", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			rec := corsResponse(t, allowed, http.MethodGet, tt.origin)
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
				t.Fatalf("origin %q: Access-Control-Allow-Origin=%q want=%q", tt.origin, got, tt.want)
			}
		})
	}
}

func TestCORS_OptionsPreflight(t *testing.T) {
	rec := corsResponse(t, []string{"*"}, http.MethodOptions, "https://fpl-mini.vercel.app")

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
	}
}

func TestCORS_DisallowsUnconfiguredOrigin(t *testing.T) {
	rec := corsResponse(t, []string{"https://allowed.example.com"}, http.MethodGet, "https://not-allowed.example.com")

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected empty Access-Control-Allow-Origin, got %q", got)
	}
}
