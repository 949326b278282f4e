package fleetsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Errors     []ErrorItem
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("fleetsdk: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}

	msgs := make([]string, 0, len(e.Errors))
	for _, item := range e.Errors {
		msgs = append(msgs, item.Param+": "+item.Msg)
	}
	return fmt.Sprintf("fleetsdk: %d %s", e.StatusCode, strings.Join(msgs, "; "))
}

// Params lists the field names of every error entry.
func (e *APIError) Params() []string {
	out := make([]string, 0, len(e.Errors))
	for _, item := range e.Errors {
		out = append(out, item.Param)
	}
	return out
}

// HasParam reports whether any error entry refers to param.
func (e *APIError) HasParam(param string) bool {
	for _, item := range e.Errors {
		if item.Param == param {
			return true
		}
	}
	return false
}

// parseErrorResponse builds an APIError from a response body. Bodies that
// are not the error envelope still produce an APIError with no entries.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var envelope ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.Errors = envelope.Errors
	}
	return apiErr
}
