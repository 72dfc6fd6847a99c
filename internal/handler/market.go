package handler

import (
	"net/http"

	"github.com/itemsim/server/internal/domain"
	"github.com/itemsim/server/internal/logger"
	"github.com/itemsim/server/internal/market"
	"github.com/itemsim/server/internal/metrics"
	"github.com/itemsim/server/internal/middleware"
)

// TradeRequest is a buy or sell batch. Duplicate item codes and non-positive
// counts are rejected by the service.
type TradeRequest struct {
	Items []TradeRequestLine `json:"items" validate:"required,min=1,dive"`
}

// TradeRequestLine is one item/count pair in a batch. Count shares its upper
// bound with the service-side check.
type TradeRequestLine struct {
	ItemCode int `json:"item_code" validate:"required,min=1"`
	Count    int `json:"count" validate:"required,min=1,max=10000"`
}

func (req TradeRequest) lines() []domain.TradeLine {
	lines := make([]domain.TradeLine, len(req.Items))
	for i, item := range req.Items {
		lines[i] = domain.TradeLine{ItemCode: item.ItemCode, Count: item.Count}
	}
	return lines
}

func (req TradeRequest) totalCount() int {
	total := 0
	for _, item := range req.Items {
		total += item.Count
	}
	return total
}

// HandleBuy handles POST /api/characters/{characterID}/purchases
func HandleBuy(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserIDFromContext(r.Context())

		characterID, ok := characterIDParam(w, r)
		if !ok {
			return
		}

		var req TradeRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		balance, err := svc.Buy(r.Context(), characterID, userID, req.lines())
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgBuyFailed, "error", err)
			respondServiceError(w, err)
			return
		}

		metrics.ItemsBought.Add(float64(req.totalCount()))
		respondJSON(w, http.StatusOK, MoneyResponse{Money: balance})
	}
}

// HandleSell handles POST /api/characters/{characterID}/sales
func HandleSell(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserIDFromContext(r.Context())

		characterID, ok := characterIDParam(w, r)
		if !ok {
			return
		}

		var req TradeRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		balance, err := svc.Sell(r.Context(), characterID, userID, req.lines())
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgSellFailed, "error", err)
			respondServiceError(w, err)
			return
		}

		metrics.ItemsSold.Add(float64(req.totalCount()))
		respondJSON(w, http.StatusOK, MoneyResponse{Money: balance})
	}
}
