// Package clientinfo resolves who is calling from headers set by a trusted
// edge proxy. Nothing is parsed or validated: header values are taken as-is.
package clientinfo

import (
	"net/http"

	"github.com/evyataryagoni/whoami/internal/models"
)

// Cloudflare headers and the fallbacks used when they are missing
const (
	HeaderConnectingIP = "CF-Connecting-IP"
	HeaderIPCountry    = "CF-IPCountry"
	DefaultIP          = "127.0.0.1"
	DefaultCountry     = "XX"
)

// Resolver extracts the client IP and country from request headers
type Resolver struct {
	ipHeaders      []string
	countryHeader  string
	defaultIP      string
	defaultCountry string
}

// Option customizes a Resolver
type Option func(r *Resolver)

// WithIPHeaders sets the headers tried, in order, for the client IP
func WithIPHeaders(headers ...string) Option {
	return func(r *Resolver) {
		r.ipHeaders = headers
	}
}

// WithCountryHeader sets the header carrying the country code
func WithCountryHeader(header string) Option {
	return func(r *Resolver) {
		r.countryHeader = header
	}
}

// WithDefaults sets the values used when no header is present
// Empty defaults leave the field empty so callers can reject the request
func WithDefaults(ip, country string) Option {
	return func(r *Resolver) {
		r.defaultIP = ip
		r.defaultCountry = country
	}
}

// NewResolver creates a Resolver for Cloudflare headers unless overridden
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		ipHeaders:      []string{HeaderConnectingIP},
		countryHeader:  HeaderIPCountry,
		defaultIP:      DefaultIP,
		defaultCountry: DefaultCountry,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the observation for req
func (r *Resolver) Resolve(req *http.Request) models.Observation {
	return models.Observation{
		IP:      r.ip(req),
		Country: firstNonEmpty(req.Header.Get(r.countryHeader), r.defaultCountry),
	}
}

func (r *Resolver) ip(req *http.Request) string {
	for _, header := range r.ipHeaders {
		if ip := req.Header.Get(header); ip != "" {
			return ip
		}
	}
	return r.defaultIP
}

func firstNonEmpty(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
