package handler

import (
	"net/http"

	"github.com/itemsim/server/internal/equipment"
	"github.com/itemsim/server/internal/logger"
	"github.com/itemsim/server/internal/metrics"
	"github.com/itemsim/server/internal/middleware"
)

// EquipRequest names the item to equip or unequip
type EquipRequest struct {
	ItemCode int `json:"item_code" validate:"required,min=1"`
}

// StatsResponse reports the character's stats after an equipment change
type StatsResponse struct {
	Health int `json:"health"`
	Power  int `json:"power"`
}

// HandleEquip handles POST /api/characters/{characterID}/equipment
func HandleEquip(svc equipment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserIDFromContext(r.Context())

		characterID, ok := characterIDParam(w, r)
		if !ok {
			return
		}

		var req EquipRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		stats, err := svc.Equip(r.Context(), characterID, userID, req.ItemCode)
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgEquipFailed, "error", err)
			respondServiceError(w, err)
			return
		}

		metrics.ItemsEquipped.Inc()
		respondJSON(w, http.StatusOK, StatsResponse{Health: stats.Health, Power: stats.Power})
	}
}

// HandleUnequip handles DELETE /api/characters/{characterID}/equipment/{itemCode}
func HandleUnequip(svc equipment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserIDFromContext(r.Context())

		characterID, ok := characterIDParam(w, r)
		if !ok {
			return
		}
		itemCode, ok := itemCodeParam(w, r)
		if !ok {
			return
		}

		stats, err := svc.Unequip(r.Context(), characterID, userID, itemCode)
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgUnequipFailed, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, StatsResponse{Health: stats.Health, Power: stats.Power})
	}
}
