package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"saferide/internal/service"
)

// envelope is the JSON shape for mutation responses
type envelope struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("Failed to encode response: %v", err)
		}
	}
}

// respondResult maps a service result to the envelope: 200 on success,
// 400 on a business-rule failure
func respondResult(w http.ResponseWriter, result service.Result) {
	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}
	respondJSON(w, status, envelope{Success: result.Success, Errors: result.Errors})
}

// respondError writes a JSON error envelope, logging the underlying
// error server-side so the client only sees userMsg
func respondError(w http.ResponseWriter, status int, userMsg string, err error) {
	if err != nil {
		log.Printf("%s: %v", userMsg, err)
	}
	respondJSON(w, status, envelope{Success: false, Errors: []string{userMsg}})
}

// decodeJSON parses a request body into dst, rejecting unknown fields
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
