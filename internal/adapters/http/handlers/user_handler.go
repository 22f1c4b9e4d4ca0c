package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/household-tasks/internal/adapters/http/dto"
	"github.com/jsamuelsen11/household-tasks/internal/domain/user"
	"github.com/jsamuelsen11/household-tasks/internal/ports"
)

// UserHandler handles user directory and preference endpoints.
type UserHandler struct {
	users ports.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// ListMaids handles GET /api/users/maids.
func (h *UserHandler) ListMaids(w http.ResponseWriter, r *http.Request) {
	maids, err := h.users.ListMaids(r.Context(), actorID(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToUserListResponse(maids))
}

// UpdateLanguage handles PATCH /api/users/language.
func (h *UserHandler) UpdateLanguage(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateLanguageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, err := h.users.UpdateLanguage(r.Context(), actorID(r), user.Language(req.Language))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.LanguageResponse{Language: string(u.Language)})
}
