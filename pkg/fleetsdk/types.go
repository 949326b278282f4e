package fleetsdk

import "github.com/aussiebroadwan/myvehicles/pkg/httpx"

// ============================================================================
// System
// ============================================================================

// InfoResponse is returned by GET /api.
type InfoResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// HealthResponse is returned by /livez and /readyz. Checks is only set by
// /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks is the status of each dependency checked by /readyz.
type HealthChecks struct {
	Database string `json:"database"`
}

// ErrorResponse is the error envelope of every failed request.
type ErrorResponse = httpx.ErrorBody

// ErrorItem is one entry of ErrorResponse.
type ErrorItem = httpx.ErrorItem

// ============================================================================
// Auth
// ============================================================================

// LoginRequest is the body of POST /api/usuarios/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// TokenResponse carries a signed access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// ============================================================================
// Users
// ============================================================================

// User is a stored user as returned by the read endpoints. The password
// hash is never sent.
type User struct {
	ID     string `json:"_id"`
	Name   string `json:"nome"`
	Email  string `json:"email"`
	Active bool   `json:"ativo"`
	Role   string `json:"tipo"`
	Avatar string `json:"avatar"`
}

// UserRequest is the body of user create and update. Zero optional fields
// are omitted so the server applies its defaults.
type UserRequest struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
	Active   *bool  `json:"ativo,omitempty"`
	Role     string `json:"tipo,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// ============================================================================
// Vehicles
// ============================================================================

type Vehicle struct {
	ID           string `json:"_id"`
	Brand        string `json:"marca"`
	Model        string `json:"modelo"`
	Color        string `json:"cor"`
	Plate        string `json:"placa"`
	Renavam      string `json:"renavam"`
	BusinessName string `json:"razao_social,omitempty"`
}

// VehicleRequest is the body of vehicle create and update. Update requires
// ID, create ignores it.
type VehicleRequest struct {
	ID           string `json:"_id,omitempty"`
	Brand        string `json:"marca"`
	Model        string `json:"modelo"`
	Color        string `json:"cor"`
	Plate        string `json:"placa"`
	Renavam      string `json:"renavam"`
	BusinessName string `json:"razao_social,omitempty"`
}

// ============================================================================
// Write results
// ============================================================================

// InsertResult is returned by create endpoints with status 201.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult is returned by update endpoints with status 202.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult is returned by delete endpoints with status 202.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
