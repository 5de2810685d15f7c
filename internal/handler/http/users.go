package http

import (
	"net/http"

	"github.com/MKhiriev/go-calorie-keeper/internal/utils"
)

func (h *Handler) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, "*Handler.getCurrentUser", ErrNoUserInContext)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// deleteCurrentUser removes the caller's account; its meals go with it.
func (h *Handler) deleteCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteCurrentUser", err)
		return
	}

	if err = h.services.AuthService.DeleteUser(r.Context(), userID); err != nil {
		writeError(w, r, "*Handler.deleteCurrentUser", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
