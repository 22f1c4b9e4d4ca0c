package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/household-tasks/internal/adapters/http/dto"
	"github.com/jsamuelsen11/household-tasks/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/household-tasks/internal/domain/user"
	"github.com/jsamuelsen11/household-tasks/internal/ports"
)

// CookieSettings controls the session cookie attributes.
type CookieSettings struct {
	// Secure restricts the cookie to HTTPS.
	Secure bool
}

// AuthHandler handles registration, login, logout and the current-user
// endpoint. A successful register or login starts a server-side session
// and hands its token to the client in an HttpOnly cookie.
type AuthHandler struct {
	auth     ports.AuthService
	sessions ports.SessionStore
	cookie   CookieSettings
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth ports.AuthService, sessions ports.SessionStore, cookie CookieSettings) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, cookie: cookie}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, err := h.auth.Register(r.Context(), req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if !h.startSession(w, r, u) {
		return
	}
	writeJSON(w, http.StatusCreated, dto.ToUserEnvelope(u))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, err := h.auth.Login(r.Context(), req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if !h.startSession(w, r, u) {
		return
	}
	writeJSON(w, http.StatusOK, dto.ToUserEnvelope(u))
}

// Logout handles POST /api/auth/logout. It succeeds with or without an
// active session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if s, ok := middleware.SessionFromContext(r.Context()); ok {
		h.sessions.Delete(r.Context(), s.Token)
	}
	h.clearCookie(w)
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Logged out successfully"})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.auth.CurrentUser(r.Context(), actorID(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToUserEnvelope(u))
}

// startSession replaces any session the request arrived with by a fresh
// one for u and sets the cookie.
func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, u *user.User) bool {
	if old, ok := middleware.SessionFromContext(r.Context()); ok {
		h.sessions.Delete(r.Context(), old.Token)
	}

	s, err := h.sessions.Create(r.Context(), u.ID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    s.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return true
}

func (h *AuthHandler) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
