package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/myvehicles/internal/api/metrics"
	"github.com/aussiebroadwan/myvehicles/internal/api/service"
	"github.com/aussiebroadwan/myvehicles/pkg/httpx"
	"github.com/aussiebroadwan/myvehicles/pkg/jwtx"
	"github.com/aussiebroadwan/myvehicles/pkg/slogx"

	_ "github.com/aussiebroadwan/myvehicles/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Limits are the rate limit profiles applied per route group.
type Limits struct {
	Login  httpx.RateLimitConfig
	Token  httpx.RateLimitConfig
	Write  httpx.RateLimitConfig
	Read   httpx.RateLimitConfig
	Health httpx.RateLimitConfig
}

// DefaultLimits returns the httpx profiles with RATELIMIT_* overrides applied.
func DefaultLimits() Limits {
	return Limits{
		Login:  httpx.LoginLimit.FromEnv("login"),
		Token:  httpx.WriteLimit.FromEnv("token"),
		Write:  httpx.WriteLimit.FromEnv("write"),
		Read:   httpx.ReadLimit.FromEnv("read"),
		Health: httpx.HealthLimit.FromEnv("health"),
	}
}

// Options configures the global middleware chain.
type Options struct {
	AllowedOrigins []string
	MaxBodyBytes   int64
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	db           Pinger

	UserService    *service.UserService
	VehicleService *service.VehicleService
	TokenService   *service.TokenService

	// StaticDir is served at / when it exists.
	StaticDir string
	Limits    Limits
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	db Pinger,
	logger *slog.Logger,
	opts Options,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		db:           db,
		Limits:       DefaultLimits(),
	}

	// metrics.Middleware must stay last so it wraps the mux and sees r.Pattern.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(opts.AllowedOrigins),
		httpx.BodyLimit(opts.MaxBodyBytes),
		metrics.Middleware,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerAuth()
	r.registerVehicles()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
	r.Mux.Handle("/", FallbackHandler(r.StaticDir))
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title						MyVehicles API
//	@version					1.0.1
//	@description				CRUD over users and vehicles with password login issuing HS256 bearer tokens.
//	@description
//	@description				Errors always use the envelope {"errors": [{"value", "msg", "param"}]}.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/myvehicles
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:4000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// handle registers h for every pattern.
func (r *Router) handle(h http.Handler, patterns ...string) {
	for _, p := range patterns {
		r.Mux.Handle(p, h)
	}
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	read := httpx.RateLimitByIP(r.Limits.Read)
	write := httpx.RateLimitByIP(r.Limits.Write)

	r.handle(httpx.Chain(http.HandlerFunc(h.HandleList), read),
		"GET /api/usuarios", "GET /api/usuarios/{$}")
	r.handle(httpx.Chain(http.HandlerFunc(h.HandleGet), read),
		"GET /api/usuarios/id/{id}")
	r.handle(httpx.Chain(http.HandlerFunc(h.HandleSearch), read),
		"GET /api/usuarios/nome/{filtro}")

	r.handle(httpx.Chain(http.HandlerFunc(h.HandleCreate), write),
		"POST /api/usuarios", "POST /api/usuarios/{$}")
	r.handle(httpx.Chain(http.HandlerFunc(h.HandleUpdate), write),
		"PUT /api/usuarios/{id}")
	r.handle(httpx.Chain(http.HandlerFunc(h.HandleDelete), write),
		"DELETE /api/usuarios/{id}")
}

func (r *Router) registerAuth() {
	h := &AuthHandler{TokenService: r.TokenService}

	// POST /login - strict rate limit by IP (brute force prevention)
	r.handle(httpx.Chain(http.HandlerFunc(h.HandleLogin),
		httpx.RateLimitByIP(r.Limits.Login),
	), "POST /api/usuarios/login")

	// GET /token - authenticated, limited per user
	r.handle(httpx.Chain(http.HandlerFunc(h.HandleToken),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(r.Limits.Token),
	), "GET /api/usuarios/token")
}

func (r *Router) registerVehicles() {
	h := &VehiclesHandler{VehicleService: r.VehicleService}

	read := httpx.RateLimitByIP(r.Limits.Read)
	write := httpx.RateLimitByIP(r.Limits.Write)

	r.handle(httpx.Chain(http.HandlerFunc(h.HandleList), read),
		"GET /api/veiculos", "GET /api/veiculos/{$}")
	r.handle(httpx.Chain(http.HandlerFunc(h.HandleGet), read),
		"GET /api/veiculos/id/{id}")
	r.handle(httpx.Chain(http.HandlerFunc(h.HandleSearch), read),
		"GET /api/veiculos/razao/{razao}")

	r.handle(httpx.Chain(http.HandlerFunc(h.HandleCreate), write),
		"POST /api/veiculos", "POST /api/veiculos/{$}")
	r.handle(httpx.Chain(http.HandlerFunc(h.HandleUpdate), write),
		"PUT /api/veiculos", "PUT /api/veiculos/{$}")
	r.handle(httpx.Chain(http.HandlerFunc(h.HandleDelete), write),
		"DELETE /api/veiculos/{id}")
}

func (r *Router) registerSystem() {
	r.handle(InfoHandler(), "GET /api", "GET /api/{$}")

	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	health := httpx.RateLimitByIP(r.Limits.Health)
	r.handle(httpx.Chain(LivezHandler(r.startTime, r.buildVersion), health), "GET /livez")
	r.handle(httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.db), health), "GET /readyz")

	r.handle(metrics.Handler(), "GET /metrics")
}
