// Package api holds the JSON response helpers shared by all handlers. Every
// failure body carries a human-readable message field; internal error detail
// never reaches the client.
package api

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Message writes a {"message": ...} body with the given status code.
func Message(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"message": msg})
}

// InvalidInput writes a 400 with per-field validation detail.
func InvalidInput(w http.ResponseWriter, fields map[string]string) {
	WriteJSON(w, http.StatusBadRequest, map[string]interface{}{
		"message": "Invalid input",
		"errors":  fields,
	})
}
