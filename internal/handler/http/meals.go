package http

import (
	"net/http"

	"github.com/MKhiriev/go-calorie-keeper/internal/app"
	"github.com/MKhiriev/go-calorie-keeper/internal/utils"
	"github.com/MKhiriev/go-calorie-keeper/models"
)

// dateFilterParam is the query parameter selecting one calendar day.
const dateFilterParam = "date_filter"

func (h *Handler) createMeal(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.createMeal", err)
		return
	}

	var payload models.MealCreate
	if err = decodeJSON(r, &payload); err != nil {
		writeError(w, r, "*Handler.createMeal", err)
		return
	}

	meal, err := h.services.MealService.CreateMeal(r.Context(), userID, payload)
	if err != nil {
		writeError(w, r, "*Handler.createMeal", err)
		return
	}

	utils.WriteJSON(w, meal, http.StatusOK)
}

func (h *Handler) listMeals(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.listMeals", err)
		return
	}

	meals, err := h.services.MealService.ListMeals(r.Context(), userID, r.URL.Query().Get(dateFilterParam))
	if err != nil {
		writeError(w, r, "*Handler.listMeals", err)
		return
	}

	utils.WriteJSON(w, meals, http.StatusOK)
}

func (h *Handler) getMeal(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.getMeal", err)
		return
	}

	mealID, err := mealIDFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.getMeal", err)
		return
	}

	meal, err := h.services.MealService.GetMeal(r.Context(), userID, mealID)
	if err != nil {
		writeError(w, r, "*Handler.getMeal", err)
		return
	}

	utils.WriteJSON(w, meal, http.StatusOK)
}

func (h *Handler) updateMeal(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.updateMeal", err)
		return
	}

	mealID, err := mealIDFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.updateMeal", err)
		return
	}

	var patch models.MealPatch
	if err = decodeJSON(r, &patch); err != nil {
		writeError(w, r, "*Handler.updateMeal", err)
		return
	}

	meal, err := h.services.MealService.UpdateMeal(r.Context(), userID, mealID, patch)
	if err != nil {
		writeError(w, r, "*Handler.updateMeal", err)
		return
	}

	utils.WriteJSON(w, meal, http.StatusOK)
}

func (h *Handler) deleteMeal(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteMeal", err)
		return
	}

	mealID, err := mealIDFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteMeal", err)
		return
	}

	if err = h.services.MealService.DeleteMeal(r.Context(), userID, mealID); err != nil {
		writeError(w, r, "*Handler.deleteMeal", err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgMealDeleted}, http.StatusOK)
}

func (h *Handler) dailyStats(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.dailyStats", err)
		return
	}

	stats, err := h.services.MealService.DailyStats(r.Context(), userID, r.URL.Query().Get(dateFilterParam))
	if err != nil {
		writeError(w, r, "*Handler.dailyStats", err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
