package clientinfo

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name        string
		headers     map[string]string
		wantIP      string
		wantCountry string
	}{
		{"both headers", map[string]string{"CF-Connecting-IP": "1.2.3.4", "CF-IPCountry": "DE"}, "1.2.3.4", "DE"},
		{"no headers", nil, "127.0.0.1", "XX"},
		{"ip only", map[string]string{"CF-Connecting-IP": "2001:db8::1"}, "2001:db8::1", "XX"},
		{"country only", map[string]string{"CF-IPCountry": "FR"}, "127.0.0.1", "FR"},
		{"empty values fall back", map[string]string{"CF-Connecting-IP": "", "CF-IPCountry": ""}, "127.0.0.1", "XX"},
		{"value is not validated", map[string]string{"CF-Connecting-IP": "not-an-ip"}, "not-an-ip", "XX"},
		{"lower-case header names", map[string]string{"cf-connecting-ip": "5.6.7.8", "cf-ipcountry": "NL"}, "5.6.7.8", "NL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			obs := NewResolver().Resolve(req)

			if obs.IP != tt.wantIP {
				t.Errorf("expected IP %q, got %q", tt.wantIP, obs.IP)
			}
			if obs.Country != tt.wantCountry {
				t.Errorf("expected country %q, got %q", tt.wantCountry, obs.Country)
			}
		})
	}
}

func TestResolver_HeaderPriority(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "10.0.0.1")
	req.Header.Set("True-Client-IP", "10.0.0.2")

	r := NewResolver(WithIPHeaders("CF-Connecting-IP", "True-Client-IP", "X-Real-IP"))

	if ip := r.Resolve(req).IP; ip != "10.0.0.2" {
		t.Errorf("expected first present header to win, got %q", ip)
	}
}

func TestResolver_CustomCountryHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("CF-IPCountry", "DE")
	req.Header.Set("X-Country", "US")

	r := NewResolver(WithCountryHeader("X-Country"))

	if c := r.Resolve(req).Country; c != "US" {
		t.Errorf("expected US, got %q", c)
	}
}

func TestResolver_EmptyDefaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	obs := NewResolver(WithDefaults("", "")).Resolve(req)

	if obs.IP != "" || obs.Country != "" {
		t.Errorf("expected empty observation, got %+v", obs)
	}
}
