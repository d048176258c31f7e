package handlers

import (
	"encoding/json"
	"net/http"

	"tokensite/internal/store"
	"tokensite/internal/validator"
)

func (h *Handler) ListPairs(w http.ResponseWriter, r *http.Request) {
	if symbol := r.URL.Query().Get("symbol"); symbol != "" {
		pair, ok := h.pairs.FindPairBySymbol(symbolFromParam(symbol))
		if !ok {
			respondError(w, http.StatusNotFound, "trading pair not found")
			return
		}
		respondJSON(w, http.StatusOK, pair)
		return
	}
	activeOnly := r.URL.Query().Get("active") == "true"
	respondJSON(w, http.StatusOK, h.pairs.ListPairs(activeOnly))
}

func (h *Handler) GetPair(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid pair id")
		return
	}
	pair, ok := h.pairs.GetPair(id)
	if !ok {
		respondError(w, http.StatusNotFound, "trading pair not found")
		return
	}
	respondJSON(w, http.StatusOK, pair)
}

type createPairRequest struct {
	BaseAsset      string  `json:"base_asset"`
	QuoteAsset     string  `json:"quote_asset"`
	PairSymbol     string  `json:"pair_symbol"`
	MinTradeAmount float64 `json:"min_trade_amount"`
	MaxTradeAmount float64 `json:"max_trade_amount"`
	TradingFee     float64 `json:"trading_fee"`
	IsActive       bool    `json:"is_active"`
}

func (h *Handler) CreatePair(w http.ResponseWriter, r *http.Request) {
	var req createPairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validator.ValidatePairSymbol(req.PairSymbol); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.MinTradeAmount < 0 || req.TradingFee < 0 {
		respondError(w, http.StatusBadRequest, "invalid pair parameters")
		return
	}
	if _, exists := h.pairs.FindPairBySymbol(req.PairSymbol); exists {
		respondError(w, http.StatusConflict, "pair symbol already exists")
		return
	}
	pair := h.pairs.CreatePair(store.PairInput{
		BaseAsset:      req.BaseAsset,
		QuoteAsset:     req.QuoteAsset,
		PairSymbol:     req.PairSymbol,
		MinTradeAmount: req.MinTradeAmount,
		MaxTradeAmount: req.MaxTradeAmount,
		TradingFee:     req.TradingFee,
		IsActive:       req.IsActive,
	})
	respondJSON(w, http.StatusCreated, pair)
}

type updatePairRequest struct {
	MinTradeAmount *float64 `json:"min_trade_amount"`
	MaxTradeAmount *float64 `json:"max_trade_amount"`
	TradingFee     *float64 `json:"trading_fee"`
	IsActive       *bool    `json:"is_active"`
}

func (h *Handler) UpdatePair(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid pair id")
		return
	}
	var req updatePairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	pair, ok := h.pairs.UpdatePair(id, store.PairUpdate{
		MinTradeAmount: req.MinTradeAmount,
		MaxTradeAmount: req.MaxTradeAmount,
		TradingFee:     req.TradingFee,
		IsActive:       req.IsActive,
	})
	if !ok {
		respondError(w, http.StatusNotFound, "trading pair not found")
		return
	}
	respondJSON(w, http.StatusOK, pair)
}
