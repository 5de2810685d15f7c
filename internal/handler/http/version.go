package http

import (
	"net/http"

	"github.com/MKhiriev/go-calorie-keeper/internal/app"
	"github.com/MKhiriev/go-calorie-keeper/internal/utils"
	"github.com/MKhiriev/go-calorie-keeper/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: app.MsgStatusOK}, http.StatusOK)
}

// dbCheck reports database reachability. The driver error stays in the logs.
func (h *Handler) dbCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.CheckDB(r.Context()); err != nil {
		utils.WriteJSON(w, models.DBCheckResponse{DB: app.MsgStatusError}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.DBCheckResponse{DB: app.MsgStatusOK}, http.StatusOK)
}
