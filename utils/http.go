// Package utils holds the JSON response helpers shared by all handlers.
package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
)

// ResponseResource is the object returned in an error case
type ResponseResource struct {
	Message string `json:"message"`
}

// WriteJSONWithStatus writes the interface as a json string with the supplied status.
func WriteJSONWithStatus(w http.ResponseWriter, r *http.Request, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		log.ErrorR(r, fmt.Errorf("error writing response: [%v]", err))
	}
}

// WriteErrorMessage writes a message-only error body with the supplied status
func WriteErrorMessage(w http.ResponseWriter, r *http.Request, message string, status int) {
	WriteJSONWithStatus(w, r, &ResponseResource{Message: message}, status)
}
