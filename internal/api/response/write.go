package response

import (
	"encoding/json"
	"net/http"
)

const contentTypeJSON = "application/json; charset=utf-8"

// JSON writes data as the response body. A nil data writes the status with
// an empty body.
func JSON(w http.ResponseWriter, status int, data any) {
	if data == nil {
		Empty(w, status)
		return
	}
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Empty writes a status with no body, e.g. a CORS preflight answer
func Empty(w http.ResponseWriter, status int) {
	w.Header().Del("Content-Type")
	w.WriteHeader(status)
}

// NoContent writes a 204 No Content response
func NoContent(w http.ResponseWriter) {
	Empty(w, http.StatusNoContent)
}
