package httputil

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every non-2xx reply. Field and Message are set
// for a rejected stored document, Issues for a rejected request payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
	Issues  any    `json:"issues,omitempty"`
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, ErrorResponse{Error: message})
}

// RespondWithValidation writes a 400 describing why the payload was refused.
func RespondWithValidation(w http.ResponseWriter, resp ErrorResponse) {
	if resp.Error == "" {
		resp.Error = "validation failed"
	}
	RespondWithJSON(w, http.StatusBadRequest, resp)
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
