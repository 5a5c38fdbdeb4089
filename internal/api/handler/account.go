package handler

import (
	"net/http"

	"github.com/tsimard/playerdex/internal/api/middleware"
	"github.com/tsimard/playerdex/internal/api/request"
	"github.com/tsimard/playerdex/internal/api/response"
	"github.com/tsimard/playerdex/internal/services/auth"
)

// AccountHandler handles the login and account lifecycle endpoints
type AccountHandler struct {
	authService *auth.Service
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(authService *auth.Service) *AccountHandler {
	return &AccountHandler{
		authService: authService,
	}
}

// Login handles POST /v2/login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	creds, err := request.Credentials(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	session, err := h.authService.Login(r.Context(), creds.Username, creds.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	setSessionCookie(w, session.Token)
	response.JSON(w, http.StatusOK, response.AuthFromSession(session))
}

// Logout handles DELETE /v2/login
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(r.Context(), middleware.GetToken(r.Context())); err != nil {
		WriteError(w, err)
		return
	}

	clearSessionCookie(w)
	response.JSON(w, http.StatusOK, response.Status{Status: "logged out"})
}

// WhoAmI handles GET /v2/login
func (h *AccountHandler) WhoAmI(w http.ResponseWriter, r *http.Request) {
	claims := middleware.MustGetClaims(r.Context())
	response.JSON(w, http.StatusOK, claims)
}

// Register handles POST /v2/register
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	creds, err := request.Credentials(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.authService.Register(r.Context(), creds.Username, creds.Password); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Status{Status: "registered"})
}

// Deactivate handles DELETE /v2/register. The account is soft-deleted and the
// session invalidated.
func (h *AccountHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims := middleware.MustGetClaims(ctx)

	if err := h.authService.Deactivate(ctx, middleware.GetToken(ctx), claims); err != nil {
		WriteError(w, err)
		return
	}

	clearSessionCookie(w)
	response.JSON(w, http.StatusOK, response.Status{Status: "account deactivated"})
}

// ChangePassword handles PATCH /v2/register. Changing the password ends the
// current session.
func (h *AccountHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	change, err := request.PasswordChange(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	ctx := r.Context()
	claims := middleware.MustGetClaims(ctx)

	if err := h.authService.ChangePassword(ctx, middleware.GetToken(ctx), claims, change.Password); err != nil {
		WriteError(w, err)
		return
	}

	clearSessionCookie(w)
	response.JSON(w, http.StatusOK, response.Status{Status: "password changed"})
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
