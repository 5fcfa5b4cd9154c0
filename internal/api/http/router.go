package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/officemate/backend/internal/api/service"
	"github.com/officemate/backend/internal/api/store"
	"github.com/officemate/backend/pkg/httpx"
	"github.com/officemate/backend/pkg/jwtx"
	"github.com/officemate/backend/pkg/slogx"

	_ "github.com/officemate/backend/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeyCache
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	// RequiredScope gates the protected endpoints when set. Empty means the
	// identity provider issues no custom scopes and aud/token_use checks are
	// the whole story.
	RequiredScope string

	UserService         *service.UserService
	BusinessService     *service.BusinessService
	AppointmentService  *service.AppointmentService
	RSVPService         *service.RSVPService
	WorkingHoursService *service.WorkingHoursService
}

func NewRouter(
	keys *jwtx.KeyCache,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerBusinesses()
	r.registerAppointments()
	r.registerWorkingHours()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			OfficeMate API
//	@version		0.1.0
//	@description	Scheduling backend for small service businesses: appointments,
//	@description	RSVP links for invitees, business profiles and working hours.
//	@description
//	@description				Protected endpoints expect a Cognito-issued RS256 access token.
//
//	@host						localhost:8080
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

// secured wraps a protected handler with the standard chain: token
// verification, the configured scope gate, then a per-user rate limit.
func (r *Router) secured(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	mws := []httpx.Middleware{httpx.AuthnMiddleware(r.verifier)}
	if r.RequiredScope != "" {
		mws = append(mws, httpx.RequireAllScopes(r.RequiredScope))
	}
	mws = append(mws, httpx.RateLimitByUser(limit))
	return httpx.Chain(h, mws...)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	r.Mux.Handle("GET /v1/users/me",
		r.secured(http.HandlerFunc(h.HandleMe), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/users/bootstrap",
		r.secured(http.HandlerFunc(h.HandleBootstrap), httpx.ModerateLimit))
}

func (r *Router) registerBusinesses() {
	h := &BusinessesHandler{BusinessService: r.BusinessService}

	r.Mux.Handle("POST /v1/businesses",
		r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/businesses",
		r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
}

func (r *Router) registerAppointments() {
	h := &AppointmentsHandler{AppointmentService: r.AppointmentService}

	r.Mux.Handle("POST /v1/appointments",
		r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/appointments",
		r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))

	// Public endpoint reached from email links. The RSVP token in the query
	// string is the only credential, so the IP limit stays strict.
	rsvpHandler := &RSVPHandler{RSVPService: r.RSVPService}
	r.Mux.Handle("GET /v1/appointments/rsvp",
		httpx.Chain(rsvpHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerWorkingHours() {
	h := &WorkingHoursHandler{WorkingHoursService: r.WorkingHoursService}

	r.Mux.Handle("GET /v1/working-hours/me",
		r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/working-hours/me",
		r.secured(http.HandlerFunc(h.HandleSave), httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
