package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tsimard/playerdex/internal/api/apierr"
	"github.com/tsimard/playerdex/internal/api/handler"
	"github.com/tsimard/playerdex/internal/api/middleware"
	"github.com/tsimard/playerdex/internal/api/response"
	"github.com/tsimard/playerdex/internal/services/auth"
	"github.com/tsimard/playerdex/internal/services/player"
)

// DefaultVersion is the API version segment, embedded in generated links
const DefaultVersion = "v2"

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	AuthService   *auth.Service
	PlayerService *player.Service
	Version       string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	version := cfg.Version
	if version == "" {
		version = DefaultVersion
	}

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFoundHandler)

	// Create handlers
	accountHandler := handler.NewAccountHandler(cfg.AuthService)
	playerHandler := handler.NewPlayerHandler(cfg.PlayerService, version)

	// Create middleware
	authed := middleware.Auth(cfg.AuthService)
	editor := func(h http.Handler) http.Handler {
		return authed(middleware.RequireEditor(h))
	}
	acceptsJSON := middleware.Accepts("application/json")
	acceptsPDF := middleware.Accepts("application/pdf")

	// API subrouter with common middleware
	api := r.PathPrefix("/" + version).Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))
	api.Use(middleware.Scheme)

	// Session routes
	api.Handle("/login", acceptsJSON(http.HandlerFunc(accountHandler.Login))).Methods(http.MethodPost)
	api.Handle("/login", authed(http.HandlerFunc(accountHandler.Logout))).Methods(http.MethodDelete)
	api.Handle("/login", authed(acceptsJSON(http.HandlerFunc(accountHandler.WhoAmI)))).Methods(http.MethodGet)

	// Account routes
	api.Handle("/register", acceptsJSON(http.HandlerFunc(accountHandler.Register))).Methods(http.MethodPost)
	api.Handle("/register", authed(http.HandlerFunc(accountHandler.Deactivate))).Methods(http.MethodDelete)
	api.Handle("/register", authed(http.HandlerFunc(accountHandler.ChangePassword))).Methods(http.MethodPatch)

	// Player collection routes; reads need any session, writes the EDITOR role
	api.Handle("/players", authed(acceptsJSON(http.HandlerFunc(playerHandler.List)))).Methods(http.MethodGet)
	api.Handle("/players", editor(http.HandlerFunc(playerHandler.Create))).Methods(http.MethodPost)
	api.Handle("/players.pdf", authed(acceptsPDF(http.HandlerFunc(playerHandler.ListPDF)))).Methods(http.MethodGet)

	// Player record routes. The id pattern is digits-only so the image route's
	// extension is never swallowed by the record route.
	api.Handle("/players/{id:[0-9]+}", authed(acceptsJSON(http.HandlerFunc(playerHandler.Get)))).Methods(http.MethodGet)
	api.Handle("/players/{id:[0-9]+}", editor(http.HandlerFunc(playerHandler.Replace))).Methods(http.MethodPost)
	api.Handle("/players/{id:[0-9]+}", editor(http.HandlerFunc(playerHandler.Delete))).Methods(http.MethodDelete)
	api.Handle("/players/{id:[0-9]+}.{format}", authed(http.HandlerFunc(playerHandler.Image))).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Status{Status: "ok"})
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	apierr.WriteError(w, apierr.NewNotFoundError())
}
