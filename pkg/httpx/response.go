package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorItem is a single entry of the error envelope returned by every
// endpoint: {"errors": [{"value": ..., "msg": ..., "param": ...}]}.
type ErrorItem struct {
	Value any    `json:"value"`
	Msg   string `json:"msg"`
	Param string `json:"param"`
}

// ErrorBody is the error envelope.
type ErrorBody struct {
	Errors []ErrorItem `json:"errors"`
}

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteErrors writes the error envelope with the given items.
func WriteErrors(w http.ResponseWriter, code int, items ...ErrorItem) {
	if items == nil {
		items = []ErrorItem{}
	}
	WriteJSON(w, code, ErrorBody{Errors: items})
}

// WriteError is a shorthand for a single-item error envelope.
func WriteError(w http.ResponseWriter, code int, value any, msg, param string) {
	WriteErrors(w, code, ErrorItem{Value: value, Msg: msg, Param: param})
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// This is commonly required for sensitive responses like tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
