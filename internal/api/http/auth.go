package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/myvehicles/internal/api/metrics"
	"github.com/aussiebroadwan/myvehicles/internal/api/service"
	"github.com/aussiebroadwan/myvehicles/pkg/fleetsdk"
	"github.com/aussiebroadwan/myvehicles/pkg/httpx"
	"github.com/aussiebroadwan/myvehicles/pkg/slogx"
)

// AuthHandler serves login and token reissue.
type AuthHandler struct {
	TokenService *service.TokenService
}

// HandleLogin handles POST /api/usuarios/login
//
//	@Summary		Login
//	@Description	Verifies email and password and returns a signed access token.
//	@Tags			Auth
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Param			request	body		fleetsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	fleetsdk.TokenResponse
//	@Failure		400		{object}	fleetsdk.ErrorResponse	"validation errors"
//	@Failure		403		{object}	fleetsdk.ErrorResponse	"wrong password"
//	@Failure		404		{object}	fleetsdk.ErrorResponse	"unknown email"
//	@Failure		429		{object}	fleetsdk.ErrorResponse
//	@Failure		500		{object}	fleetsdk.ErrorResponse
//	@Router			/api/usuarios/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	in, ok := readInput(w, r)
	if !ok {
		metrics.RecordLogin(metrics.LoginInvalid)
		return
	}

	token, err := h.TokenService.Login(ctx, in)

	var verr *service.ValidationError
	switch {
	case err == nil:
		metrics.RecordLogin(metrics.LoginSucceeded)
		httpx.WriteJSON(w, http.StatusOK, fleetsdk.TokenResponse{AccessToken: token})
	case errors.As(err, &verr):
		metrics.RecordLogin(metrics.LoginInvalid)
		httpx.WriteErrors(w, http.StatusBadRequest, fieldErrors(verr.Errors)...)
	case errors.Is(err, service.ErrUserNotFound):
		metrics.RecordLogin(metrics.LoginUnknownEmail)
		httpx.WriteError(w, http.StatusNotFound, in.String("email"),
			"Não há nenhum usuário cadastrado com o email informado", "email")
	case errors.Is(err, service.ErrWrongPassword):
		metrics.RecordLogin(metrics.LoginWrongPassword)
		log.Info("login rejected", "reason", "wrong password")
		httpx.WriteError(w, http.StatusForbidden, "", "A senha informada está incorreta", "senha")
	default:
		metrics.RecordLogin(metrics.LoginError)
		log.Error("login failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "", "Erro ao gerar o token", "token")
	}
}

// HandleToken handles GET /api/usuarios/token
//
//	@Summary		Reissue token
//	@Description	Issues a fresh access token for the authenticated user.
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string	true	"Bearer token"
//	@Success		200				{object}	fleetsdk.TokenResponse
//	@Failure		401				{object}	fleetsdk.ErrorResponse
//	@Failure		429				{object}	fleetsdk.ErrorResponse
//	@Failure		500				{object}	fleetsdk.ErrorResponse
//	@Router			/api/usuarios/token [get].
func (h *AuthHandler) HandleToken(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "", "Token de acesso inválido ou expirado", "token")
		return
	}

	token, err := h.TokenService.Issue(userID)
	if err != nil {
		slogx.FromContext(r.Context()).Error("token reissue failed", "error", err, "user_id", userID)
		httpx.WriteError(w, http.StatusInternalServerError, "", "Erro ao gerar o token", "token")
		return
	}

	metrics.RecordTokenReissue()
	httpx.WriteJSON(w, http.StatusOK, fleetsdk.TokenResponse{AccessToken: token})
}
