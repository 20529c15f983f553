package params

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/reqvalidator/pkg/validator"
)

// Error codes written in the "error" member of failure responses.
const (
	CodeBadRequest       = "bad_request"
	CodeValidationFailed = "validation_failed"
	CodeInternal         = "internal_error"
)

// ErrorResponse is the JSON body written for rejected requests.
type ErrorResponse struct {
	Error    string              `json:"error"`
	Message  string              `json:"message,omitempty"`
	Details  map[string][]string `json:"details,omitempty"`
	Messages []string            `json:"messages,omitempty"`
}

func validationResponse(errs validator.ValidationErrors) ErrorResponse {
	return ErrorResponse{
		Error:    CodeValidationFailed,
		Details:  errs.Map(),
		Messages: errs.Messages(),
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
