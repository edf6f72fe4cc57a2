package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/evyataryagoni/whoami/internal/models"
)

const (
	contentTypeText = "text/plain;charset=utf-8"
	contentTypeJSON = "application/json;charset=utf-8"
)

// textView writes the IP followed by a newline
// An empty ip yields 404 "IP not found"
func textView(w http.ResponseWriter, ip string, cacheSecs int) {
	if ip == "" {
		w.Header().Set("Content-Type", contentTypeText)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("IP not found\n"))
		return
	}

	w.Header().Set("Content-Type", contentTypeText)
	w.Header().Set("Cache-Control", cacheControl(cacheSecs))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(ip + "\n"))
}

// jsonView writes v indented by two spaces
// A nil payload yields 400 "Invalid data"
func jsonView(w http.ResponseWriter, v *models.IPView, cacheSecs int) {
	if v == nil {
		w.Header().Set("Content-Type", contentTypeText)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Invalid data\n"))
		return
	}

	body, err := encodeJSON(v, "  ")
	if err != nil {
		errorView(w, http.StatusInternalServerError, "failed to encode response", true)
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.Header().Set("Cache-Control", cacheControl(cacheSecs))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// errorView writes message as {"error": message} or as plain text
func errorView(w http.ResponseWriter, status int, message string, asJSON bool) {
	body := []byte(message)
	contentType := contentTypeText

	if asJSON {
		encoded, err := encodeJSON(models.ErrorResponse{Error: message}, "")
		if err == nil {
			body = encoded
			contentType = contentTypeJSON
		}
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(status)
	w.Write(body)
}

// cacheControl returns max-age=<secs> for positive values and no-cache otherwise
func cacheControl(cacheSecs int) string {
	if cacheSecs > 0 {
		return "max-age=" + strconv.Itoa(cacheSecs)
	}
	return "no-cache"
}

// encodeJSON marshals v without HTML escaping and without a trailing newline
func encodeJSON(v interface{}, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
