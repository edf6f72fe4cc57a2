package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/evyataryagoni/whoami/internal/models"
)

func TestTextView(t *testing.T) {
	tests := []struct {
		name         string
		ip           string
		cacheSecs    int
		wantStatus   int
		wantBody     string
		wantCacheHdr string
	}{
		{"ip no cache", "1.2.3.4", 0, http.StatusOK, "1.2.3.4\n", "no-cache"},
		{"ip cached", "1.2.3.4", 60, http.StatusOK, "1.2.3.4\n", "max-age=60"},
		{"negative cache", "1.2.3.4", -1, http.StatusOK, "1.2.3.4\n", "no-cache"},
		{"missing ip", "", 0, http.StatusNotFound, "IP not found\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			textView(rec, tt.ip, tt.cacheSecs)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if rec.Body.String() != tt.wantBody {
				t.Errorf("expected body %q, got %q", tt.wantBody, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != "text/plain;charset=utf-8" {
				t.Errorf("unexpected Content-Type: %s", ct)
			}
			if cc := rec.Header().Get("Cache-Control"); cc != tt.wantCacheHdr {
				t.Errorf("expected Cache-Control %q, got %q", tt.wantCacheHdr, cc)
			}
		})
	}
}

func TestJSONView(t *testing.T) {
	rec := httptest.NewRecorder()

	jsonView(rec, &models.IPView{IP: "1.2.3.4"}, 0)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	want := "{\n  \"IP\": \"1.2.3.4\"\n}"
	if rec.Body.String() != want {
		t.Errorf("expected body %q, got %q", want, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json;charset=utf-8" {
		t.Errorf("unexpected Content-Type: %s", ct)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "no-cache" {
		t.Errorf("expected no-cache, got %q", cc)
	}
}

func TestJSONView_Cached(t *testing.T) {
	rec := httptest.NewRecorder()

	jsonView(rec, &models.IPView{IP: "1.2.3.4"}, 300)

	if cc := rec.Header().Get("Cache-Control"); cc != "max-age=300" {
		t.Errorf("expected max-age=300, got %q", cc)
	}
}

func TestJSONView_NilPayload(t *testing.T) {
	rec := httptest.NewRecorder()

	jsonView(rec, nil, 0)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
	if rec.Body.String() != "Invalid data\n" {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/plain;charset=utf-8" {
		t.Errorf("unexpected Content-Type: %s", ct)
	}
}

func TestErrorView(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		message  string
		asJSON   bool
		wantBody string
		wantCT   string
	}{
		{"json", http.StatusNotFound, "invalid url", true, `{"error":"invalid url"}`, "application/json;charset=utf-8"},
		{"text", http.StatusInternalServerError, "boom", false, "boom", "text/plain;charset=utf-8"},
		{"json keeps html", http.StatusBadRequest, "<a&b>", true, `{"error":"<a&b>"}`, "application/json;charset=utf-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			errorView(rec, tt.status, tt.message, tt.asJSON)

			if rec.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, rec.Code)
			}
			if rec.Body.String() != tt.wantBody {
				t.Errorf("expected body %q, got %q", tt.wantBody, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != tt.wantCT {
				t.Errorf("expected Content-Type %q, got %q", tt.wantCT, ct)
			}
			if cc := rec.Header().Get("Cache-Control"); cc != "no-cache" {
				t.Errorf("expected no-cache, got %q", cc)
			}
		})
	}
}
