package http

import (
	"encoding/json"
	"log"
	"net/http"
)

type apiResponse struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

type apiError struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// RespondSuccess writes the uniform success envelope.
func RespondSuccess(w http.ResponseWriter, code int, data interface{}, message string) {
	response := &apiResponse{
		StatusCode: code,
		Data:       data,
		Message:    message,
		Success:    true,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// RespondError writes the uniform error envelope with the matching
// HTTP status.
func RespondError(w http.ResponseWriter, code int, message string) {
	response := &apiError{
		Status:  false,
		Message: message,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
