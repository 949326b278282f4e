package http

import (
	"net/http"

	"github.com/aussiebroadwan/myvehicles/internal/api/service"
	"github.com/aussiebroadwan/myvehicles/pkg/fleetsdk"
	"github.com/aussiebroadwan/myvehicles/pkg/httpx"
)

// VehiclesHandler serves /api/veiculos.
type VehiclesHandler struct {
	VehicleService *service.VehicleService
}

// HandleList handles GET /api/veiculos/
//
//	@Summary	List vehicles
//	@Tags		Vehicles
//	@Produce	json
//	@Success	200	{array}		fleetsdk.Vehicle
//	@Failure	500	{object}	fleetsdk.ErrorResponse
//	@Router		/api/veiculos/ [get].
func (h *VehiclesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	vs, err := h.VehicleService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "", "Erro ao obter a listagem dos veiculos")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, nonNil(vs))
}

// HandleGet handles GET /api/veiculos/id/{id}
//
//	@Summary	Get vehicle by id
//	@Tags		Vehicles
//	@Produce	json
//	@Param		id	path		string	true	"Vehicle id"
//	@Success	200	{object}	fleetsdk.Vehicle
//	@Failure	400	{object}	fleetsdk.ErrorResponse	"malformed id"
//	@Failure	404	{object}	fleetsdk.ErrorResponse
//	@Router		/api/veiculos/id/{id} [get].
func (h *VehiclesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	v, err := h.VehicleService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, id, "Erro ao obter o veiculo pelo id")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, v)
}

// HandleSearch handles GET /api/veiculos/razao/{razao}
//
//	@Summary		Search vehicles by business name
//	@Description	Case-insensitive substring match on the owning company's name.
//	@Tags			Vehicles
//	@Produce		json
//	@Param			razao	path		string	true	"Business name fragment"
//	@Success		200		{array}		fleetsdk.Vehicle
//	@Failure		500		{object}	fleetsdk.ErrorResponse
//	@Router			/api/veiculos/razao/{razao} [get].
func (h *VehiclesHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	vs, err := h.VehicleService.SearchByBusinessName(r.Context(), r.PathValue("razao"))
	if err != nil {
		writeServiceError(w, r, err, "", "Erro ao obter o veiculo pela razão social")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, nonNil(vs))
}

// HandleCreate handles POST /api/veiculos/
//
//	@Summary	Create vehicle
//	@Tags		Vehicles
//	@Accept		json,x-www-form-urlencoded
//	@Produce	json
//	@Param		request	body		fleetsdk.VehicleRequest	true	"Vehicle"
//	@Success	201		{object}	fleetsdk.InsertResult
//	@Failure	400		{object}	fleetsdk.ErrorResponse	"validation errors"
//	@Failure	500		{object}	fleetsdk.ErrorResponse
//	@Router		/api/veiculos/ [post].
func (h *VehiclesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	in, ok := readInput(w, r)
	if !ok {
		return
	}

	id, err := h.VehicleService.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "", "Erro ao incluir o veiculo")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, fleetsdk.InsertResult{Acknowledged: true, InsertedID: id})
}

// HandleUpdate handles PUT /api/veiculos/
//
//	@Summary		Update vehicle
//	@Description	The vehicle id is read from the body's _id field.
//	@Tags			Vehicles
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Param			request	body		fleetsdk.VehicleRequest	true	"Vehicle with _id"
//	@Success		202		{object}	fleetsdk.UpdateResult
//	@Failure		400		{object}	fleetsdk.ErrorResponse	"validation errors or malformed id"
//	@Failure		500		{object}	fleetsdk.ErrorResponse
//	@Router			/api/veiculos/ [put].
func (h *VehiclesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	in, ok := readInput(w, r)
	if !ok {
		return
	}
	id := in.Text(service.IDField)

	res, err := h.VehicleService.Update(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, id, "Erro ao alterar o veiculo")
		return
	}
	httpx.WriteJSON(w, http.StatusAccepted, fleetsdk.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.Matched,
		ModifiedCount: res.Modified,
	})
}

// HandleDelete handles DELETE /api/veiculos/{id}
//
//	@Summary	Delete vehicle
//	@Tags		Vehicles
//	@Produce	json
//	@Param		id	path		string	true	"Vehicle id"
//	@Success	202	{object}	fleetsdk.DeleteResult
//	@Failure	400	{object}	fleetsdk.ErrorResponse	"malformed id"
//	@Failure	500	{object}	fleetsdk.ErrorResponse
//	@Router		/api/veiculos/{id} [delete].
func (h *VehiclesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	n, err := h.VehicleService.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, id, "Erro ao excluir o veiculo")
		return
	}
	httpx.WriteJSON(w, http.StatusAccepted, fleetsdk.DeleteResult{Acknowledged: true, DeletedCount: n})
}
