package handler

import (
	"encoding/json"
	"net/http"
)

// HandleHealthz reports liveness. It answers 200 with a small JSON body
// naming the service so probes can tell who responded.
func HandleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "bookclub",
	})
}
