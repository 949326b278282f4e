package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/myvehicles/internal/api/service"
	"github.com/aussiebroadwan/myvehicles/internal/api/validation"
	"github.com/aussiebroadwan/myvehicles/pkg/httpx"
	"github.com/aussiebroadwan/myvehicles/pkg/slogx"
)

// writeServiceError maps a service error to the error envelope. value is
// echoed for client faults, failMsg is sent for server faults whose details
// are only logged.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, value any, failMsg string) {
	var verr *service.ValidationError

	switch {
	case errors.As(err, &verr):
		httpx.WriteErrors(w, http.StatusBadRequest, fieldErrors(verr.Errors)...)
	case errors.Is(err, service.ErrInvalidID):
		httpx.WriteError(w, http.StatusBadRequest, value, "O id informado é inválido", "id")
	case errors.Is(err, service.ErrUserNotFound):
		httpx.WriteError(w, http.StatusNotFound, value, "Usuário não encontrado", "id")
	case errors.Is(err, service.ErrVehicleNotFound):
		httpx.WriteError(w, http.StatusNotFound, value, "Veículo não encontrado", "id")
	default:
		slogx.FromContext(r.Context()).Error(failMsg, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "", failMsg, "/")
	}
}

func fieldErrors(errs []validation.FieldError) []httpx.ErrorItem {
	items := make([]httpx.ErrorItem, 0, len(errs))
	for _, fe := range errs {
		items = append(items, httpx.ErrorItem{Value: fe.Value, Msg: fe.Msg, Param: fe.Param})
	}
	return items
}

// nonNil keeps empty collections encoded as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
