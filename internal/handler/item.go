package handler

import (
	"net/http"

	"github.com/itemsim/server/internal/domain"
	"github.com/itemsim/server/internal/item"
	"github.com/itemsim/server/internal/logger"
)

// CreateItemRequest is the catalog item creation payload
type CreateItemRequest struct {
	ItemCode  int             `json:"item_code" validate:"required,min=1"`
	ItemName  string          `json:"item_name" validate:"required,max=50"`
	ItemStat  domain.ItemStat `json:"item_stat"`
	ItemPrice int             `json:"item_price" validate:"min=0"`
}

// UpdateItemRequest changes an item's name and/or stats. Price is immutable
// and is not accepted here.
type UpdateItemRequest struct {
	ItemName *string          `json:"item_name" validate:"omitempty,max=50"`
	ItemStat *domain.ItemStat `json:"item_stat"`
}

// HandleCreateItem handles POST /api/items
func HandleCreateItem(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateItemRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		err := svc.Create(r.Context(), domain.Item{
			Code:  req.ItemCode,
			Name:  req.ItemName,
			Stat:  req.ItemStat,
			Price: req.ItemPrice,
		})
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgCreateItemFailed, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, SuccessResponse{Message: MsgItemCreated})
	}
}

// HandleUpdateItem handles PATCH /api/items/{itemCode}
func HandleUpdateItem(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemCode, ok := itemCodeParam(w, r)
		if !ok {
			return
		}

		var req UpdateItemRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		updated, err := svc.Update(r.Context(), itemCode, req.ItemName, req.ItemStat)
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgUpdateItemFailed, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, updated)
	}
}

// HandleListItems handles GET /api/items
func HandleListItems(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgListItemsFailed, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string][]domain.ItemListing{"items": items})
	}
}

// HandleGetItem handles GET /api/items/{itemCode}
func HandleGetItem(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemCode, ok := itemCodeParam(w, r)
		if !ok {
			return
		}

		found, err := svc.Get(r.Context(), itemCode)
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgGetItemFailed, "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, found)
	}
}
