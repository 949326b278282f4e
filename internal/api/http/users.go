package http

import (
	"net/http"

	"github.com/aussiebroadwan/myvehicles/internal/api/service"
	"github.com/aussiebroadwan/myvehicles/pkg/fleetsdk"
	"github.com/aussiebroadwan/myvehicles/pkg/httpx"
)

// UsersHandler serves /api/usuarios.
type UsersHandler struct {
	UserService *service.UserService
}

// HandleList handles GET /api/usuarios/
//
//	@Summary		List users
//	@Description	Returns every user ordered by name. Password hashes are never returned.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{array}		fleetsdk.User
//	@Failure		500	{object}	fleetsdk.ErrorResponse
//	@Router			/api/usuarios/ [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "", "Erro ao obter a listagem dos usuários")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, nonNil(users))
}

// HandleGet handles GET /api/usuarios/id/{id}
//
//	@Summary	Get user by id
//	@Tags		Users
//	@Produce	json
//	@Param		id	path		string	true	"User id"
//	@Success	200	{object}	fleetsdk.User
//	@Failure	400	{object}	fleetsdk.ErrorResponse	"malformed id"
//	@Failure	404	{object}	fleetsdk.ErrorResponse
//	@Router		/api/usuarios/id/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	u, err := h.UserService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, id, "Erro ao obter o usuário pelo id")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}

// HandleSearch handles GET /api/usuarios/nome/{filtro}
//
//	@Summary		Search users
//	@Description	Case-insensitive substring match on name or email, at most 10 results ordered by name.
//	@Tags			Users
//	@Produce		json
//	@Param			filtro	path		string	true	"Text to look for"
//	@Success		200		{array}		fleetsdk.User
//	@Failure		500		{object}	fleetsdk.ErrorResponse
//	@Router			/api/usuarios/nome/{filtro} [get].
func (h *UsersHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.Search(r.Context(), r.PathValue("filtro"))
	if err != nil {
		writeServiceError(w, r, err, "", "Erro ao obter o usuário pelo nome")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, nonNil(users))
}

// HandleCreate handles POST /api/usuarios/
//
//	@Summary	Register user
//	@Tags		Users
//	@Accept		json,x-www-form-urlencoded
//	@Produce	json
//	@Param		request	body		fleetsdk.UserRequest	true	"User"
//	@Success	201		{object}	fleetsdk.InsertResult
//	@Failure	400		{object}	fleetsdk.ErrorResponse	"validation errors"
//	@Failure	500		{object}	fleetsdk.ErrorResponse
//	@Router		/api/usuarios/ [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	in, ok := readInput(w, r)
	if !ok {
		return
	}

	id, err := h.UserService.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "", "Erro ao incluir o usuário")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, fleetsdk.InsertResult{Acknowledged: true, InsertedID: id})
}

// HandleUpdate handles PUT /api/usuarios/{id}
//
//	@Summary		Update user
//	@Description	Replaces the user's fields. The user's own email is not reported as taken.
//	@Tags			Users
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Param			id		path		string					true	"User id"
//	@Param			request	body		fleetsdk.UserRequest	true	"User"
//	@Success		202		{object}	fleetsdk.UpdateResult
//	@Failure		400		{object}	fleetsdk.ErrorResponse	"validation errors or malformed id"
//	@Failure		500		{object}	fleetsdk.ErrorResponse
//	@Router			/api/usuarios/{id} [put].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	in, ok := readInput(w, r)
	if !ok {
		return
	}

	res, err := h.UserService.Update(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, r, err, id, "Erro ao alterar o usuário")
		return
	}
	httpx.WriteJSON(w, http.StatusAccepted, fleetsdk.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.Matched,
		ModifiedCount: res.Modified,
	})
}

// HandleDelete handles DELETE /api/usuarios/{id}
//
//	@Summary	Delete user
//	@Tags		Users
//	@Produce	json
//	@Param		id	path		string	true	"User id"
//	@Success	202	{object}	fleetsdk.DeleteResult
//	@Failure	400	{object}	fleetsdk.ErrorResponse	"malformed id"
//	@Failure	500	{object}	fleetsdk.ErrorResponse
//	@Router		/api/usuarios/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	n, err := h.UserService.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, id, "Erro ao excluir o usuário")
		return
	}
	httpx.WriteJSON(w, http.StatusAccepted, fleetsdk.DeleteResult{Acknowledged: true, DeletedCount: n})
}
