package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/aussiebroadwan/myvehicles/internal/api/validation"
	"github.com/aussiebroadwan/myvehicles/pkg/httpx"
)

var errBodyNotObject = errors.New("request body is not a JSON object")

// decodeInput reads a JSON or urlencoded form body. Form values keep their
// first occurrence. An empty body decodes to an empty Input.
func decodeInput(r *http.Request) (validation.Input, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		in := make(validation.Input, len(r.PostForm))
		for key, values := range r.PostForm {
			if len(values) > 0 {
				in[key] = values[0]
			}
		}
		return in, nil
	}

	var raw any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return validation.Input{}, nil
		}
		return nil, err
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, errBodyNotObject
	}
	return validation.Input(obj), nil
}

// readInput decodes the body or writes the error response and returns false.
func readInput(w http.ResponseWriter, r *http.Request) (validation.Input, bool) {
	in, err := decodeInput(r)
	if err == nil {
		return in, true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		httpx.WriteError(w, http.StatusRequestEntityTooLarge, tooLarge.Limit,
			"O corpo da requisição é muito grande", "body")
		return nil, false
	}

	httpx.WriteError(w, http.StatusBadRequest, "", "O corpo da requisição é inválido", "body")
	return nil, false
}
