package handler

import (
	"net/http"

	"github.com/itemsim/server/internal/character"
	"github.com/itemsim/server/internal/domain"
	"github.com/itemsim/server/internal/logger"
	"github.com/itemsim/server/internal/middleware"
)

// CreateCharacterRequest is the character creation payload
type CreateCharacterRequest struct {
	Name string `json:"name" validate:"required,max=30"`
}

// CreateCharacterResponse returns the new character with its starting stats
type CreateCharacterResponse struct {
	CharacterID int64  `json:"character_id"`
	Name        string `json:"name"`
	Health      int    `json:"health"`
	Power       int    `json:"power"`
	Money       int    `json:"money"`
}

// GrantMoneyRequest is the money-grant payload. Amount defaults when omitted.
type GrantMoneyRequest struct {
	Amount *int `json:"amount" validate:"omitempty,min=1"`
}

// MoneyResponse reports a character's balance after a currency change
type MoneyResponse struct {
	Money int `json:"money"`
}

// HandleCreateCharacter handles POST /api/characters
func HandleCreateCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserIDFromContext(r.Context())

		var req CreateCharacterRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		created, err := svc.Create(r.Context(), userID, req.Name)
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgCreateCharacterFailed, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, CreateCharacterResponse{
			CharacterID: created.ID,
			Name:        created.Name,
			Health:      created.Health,
			Power:       created.Power,
			Money:       created.Money,
		})
	}
}

// HandleDeleteCharacter handles DELETE /api/characters/{characterID}
func HandleDeleteCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserIDFromContext(r.Context())

		characterID, ok := characterIDParam(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), characterID, userID); err != nil {
			logger.FromContext(r.Context()).Error(LogMsgDeleteCharacterFailed, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCharacterDeleted})
	}
}

// HandleGetCharacter handles GET /api/characters/{characterID}. The route
// takes optional auth: owners get their money balance included, everyone
// else gets the public view.
func HandleGetCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewerID, _ := middleware.UserIDFromContext(r.Context())

		characterID, ok := characterIDParam(w, r)
		if !ok {
			return
		}

		view, err := svc.Get(r.Context(), characterID, viewerID)
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgGetCharacterFailed, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, view)
	}
}

// HandleListInventory handles GET /api/characters/{characterID}/inventory
func HandleListInventory(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserIDFromContext(r.Context())

		characterID, ok := characterIDParam(w, r)
		if !ok {
			return
		}

		items, err := svc.ListInventory(r.Context(), characterID, userID)
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgListInventoryFailed, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string][]domain.InventoryItemView{"items": items})
	}
}

// HandleListEquipment handles GET /api/characters/{characterID}/equipment.
// Equipment is public, no auth required.
func HandleListEquipment(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		characterID, ok := characterIDParam(w, r)
		if !ok {
			return
		}

		items, err := svc.ListEquipment(r.Context(), characterID)
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgListEquipmentFailed, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string][]domain.EquippedItemView{"items": items})
	}
}

// HandleGrantMoney handles POST /api/characters/{characterID}/money
func HandleGrantMoney(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserIDFromContext(r.Context())

		characterID, ok := characterIDParam(w, r)
		if !ok {
			return
		}

		// The body is optional: a body-less grant uses the default amount.
		var req GrantMoneyRequest
		if !decodeOptionalAndValidate(w, r, &req) {
			return
		}

		amount := domain.DefaultMoneyGrant
		if req.Amount != nil {
			amount = *req.Amount
		}

		balance, err := svc.GrantMoney(r.Context(), characterID, userID, amount)
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgGrantMoneyFailed, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, MoneyResponse{Money: balance})
	}
}
