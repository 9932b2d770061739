package middleware

import (
	"encoding/json"
	"net/http"
)

// reject ends the request with the same {"error","message"} body the API
// handlers produce.
func reject(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{ //nolint:errcheck // client may be gone
		"error":   code,
		"message": message,
	})
}
