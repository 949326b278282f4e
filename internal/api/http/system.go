package http

import (
	"context"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/aussiebroadwan/myvehicles/internal/api/metrics"
	"github.com/aussiebroadwan/myvehicles/pkg/fleetsdk"
	"github.com/aussiebroadwan/myvehicles/pkg/httpx"
)

// APIVersion is reported by GET /api.
const APIVersion = "1.0.1"

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// InfoHandler godoc
//
//	@Summary	API banner
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	fleetsdk.InfoResponse
//	@Router		/api [get].
func InfoHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, fleetsdk.InfoResponse{
			Message: "API MyVehicles rodando!",
			Version: APIVersion,
		})
	}
}

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness check returning status, uptime and version. Always 200 while the process runs.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	fleetsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, fleetsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness check pinging the database.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	fleetsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	fleetsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &fleetsdk.HealthChecks{Database: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		err := db.Ping(r.Context())
		metrics.SetDependencyHealth("database", err == nil)
		if err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, fleetsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}

// FallbackHandler serves files from staticDir, when it exists, and answers
// everything else with the route-not-found error.
func FallbackHandler(staticDir string) http.Handler {
	var root http.FileSystem
	if fi, err := os.Stat(staticDir); staticDir != "" && err == nil && fi.IsDir() {
		root = http.Dir(staticDir)
	}

	var files http.Handler
	if root != nil {
		files = http.FileServer(root)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if files != nil && (r.Method == http.MethodGet || r.Method == http.MethodHead) && servable(root, r.URL.Path) {
			files.ServeHTTP(w, r)
			return
		}
		NotFound(w, r)
	})
}

// NotFound writes the 404 envelope for an unknown route.
func NotFound(w http.ResponseWriter, r *http.Request) {
	uri := r.URL.RequestURI()
	httpx.WriteError(w, http.StatusNotFound, uri, "Rota "+uri+" não existe", "routes")
}

// servable reports whether name is a file, or a directory with an index.
func servable(root http.FileSystem, name string) bool {
	name = path.Clean("/" + name)

	f, err := root.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return false
	}
	if !fi.IsDir() {
		return true
	}
	return servable(root, path.Join(name, "index.html"))
}
