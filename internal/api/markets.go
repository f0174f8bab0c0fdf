package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kiran797979/monad-blitz-hyderabad/internal/arena"
	"github.com/kiran797979/monad-blitz-hyderabad/internal/constants"
	"github.com/kiran797979/monad-blitz-hyderabad/internal/logging"
	"github.com/kiran797979/monad-blitz-hyderabad/internal/service"
)

type createMarketRequest struct {
	FightID uint `json:"fight_id"`
}

type placeBetRequest struct {
	Bettor  string `json:"bettor"`
	AgentID uint   `json:"agent_id"`
	Amount  string `json:"amount"`
}

type resolveMarketRequest struct {
	Winner uint `json:"winner"`
}

type claimBetRequest struct {
	Bettor string `json:"bettor"`
}

var marketStatuses = map[arena.MarketStatus]bool{
	arena.MarketOpen:     true,
	arena.MarketClosed:   true,
	arena.MarketResolved: true,
}

// CreateMarket opens the betting market for a fight. One market per fight.
func (h *ArenaHandler) CreateMarket(c *gin.Context) {
	var req createMarketRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FightID == 0 {
		badRequest(c, constants.ErrInvalidRequest)
		return
	}
	market, err := h.ledger.OpenMarket(req.FightID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFightNotFound):
			respondError(c, http.StatusNotFound, constants.ErrFightNotFound)
		case errors.Is(err, service.ErrMarketExists):
			respondError(c, http.StatusConflict, constants.ErrMarketExists)
		default:
			logging.Error("failed to create market", err, nil)
			respondError(c, http.StatusInternalServerError, constants.ErrFailedSaveMarket)
		}
		return
	}
	respondData(c, http.StatusCreated, market)
}

// ListMarkets returns markets, optionally filtered by status.
func (h *ArenaHandler) ListMarkets(c *gin.Context) {
	status := arena.MarketStatus(c.Query("status"))
	if status != "" && !marketStatuses[status] {
		badRequest(c, constants.ErrInvalidMarketStatus)
		return
	}
	markets, err := h.repo.ListMarkets(status)
	if err != nil {
		logging.Error("failed to list markets", err, nil)
		respondError(c, http.StatusInternalServerError, constants.ErrFailedListMarkets)
		return
	}
	respondData(c, http.StatusOK, markets)
}

// GetMarket returns one market by id.
func (h *ArenaHandler) GetMarket(c *gin.Context) {
	id, ok := parseID(c, "marketID")
	if !ok {
		badRequest(c, constants.ErrInvalidMarketID)
		return
	}
	market, err := h.repo.GetMarketByID(id)
	if err != nil {
		respondError(c, http.StatusNotFound, constants.ErrMarketNotFound)
		return
	}
	respondData(c, http.StatusOK, market)
}

// GetOdds returns the market's implied odds and pool totals. An optional
// stake query parameter adds the payout that stake would project on each side.
func (h *ArenaHandler) GetOdds(c *gin.Context) {
	id, ok := parseID(c, "marketID")
	if !ok {
		badRequest(c, constants.ErrInvalidMarketID)
		return
	}

	var quote *service.OddsQuote
	var err error
	if raw := c.Query("stake"); raw != "" {
		stake, ok := parseAmount(raw)
		if !ok || stake.IsZero() {
			badRequest(c, constants.ErrInvalidBetAmount)
			return
		}
		quote, err = h.ledger.Quote(id, stake)
	} else {
		quote, err = h.ledger.Odds(id)
	}
	if err != nil {
		respondError(c, http.StatusNotFound, constants.ErrMarketNotFound)
		return
	}
	respondData(c, http.StatusOK, quote)
}

// PlaceBet admits a wager against an open market.
func (h *ArenaHandler) PlaceBet(c *gin.Context) {
	id, ok := parseID(c, "marketID")
	if !ok {
		badRequest(c, constants.ErrInvalidMarketID)
		return
	}
	var req placeBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, constants.ErrInvalidRequest)
		return
	}
	if !isWalletAddress(req.Bettor) {
		badRequest(c, constants.ErrInvalidBettor)
		return
	}
	amount, ok := parseAmount(req.Amount)
	if !ok || amount.IsZero() {
		badRequest(c, constants.ErrInvalidBetAmount)
		return
	}

	receipt, err := h.ledger.PlaceBet(id, req.Bettor, req.AgentID, amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMarketNotFound):
			respondError(c, http.StatusNotFound, constants.ErrMarketNotFound)
		case errors.Is(err, service.ErrMarketNotOpen):
			respondError(c, http.StatusConflict, constants.ErrMarketNotOpen)
		case errors.Is(err, service.ErrInvalidMarketAgent):
			badRequest(c, constants.ErrInvalidMarketAgent)
		case errors.Is(err, service.ErrInvalidBetAmount):
			badRequest(c, constants.ErrInvalidBetAmount)
		default:
			logging.Error("failed to place bet", err, logging.Fields{constants.LogFieldMarketID: id})
			respondError(c, http.StatusInternalServerError, constants.ErrFailedPlaceBet)
		}
		return
	}
	respondData(c, http.StatusCreated, receipt)
}

// ListMarketBets returns every bet recorded against a market.
func (h *ArenaHandler) ListMarketBets(c *gin.Context) {
	id, ok := parseID(c, "marketID")
	if !ok {
		badRequest(c, constants.ErrInvalidMarketID)
		return
	}
	if _, err := h.repo.GetMarketByID(id); err != nil {
		respondError(c, http.StatusNotFound, constants.ErrMarketNotFound)
		return
	}
	bets, err := h.repo.ListBetsByMarket(id)
	if err != nil {
		logging.Error("failed to list bets", err, logging.Fields{constants.LogFieldMarketID: id})
		respondError(c, http.StatusInternalServerError, constants.ErrFailedListBets)
		return
	}
	respondData(c, http.StatusOK, bets)
}

// ResolveMarket closes an open market on the fight's outcome.
func (h *ArenaHandler) ResolveMarket(c *gin.Context) {
	id, ok := parseID(c, "marketID")
	if !ok {
		badRequest(c, constants.ErrInvalidMarketID)
		return
	}
	var req resolveMarketRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Winner == 0 {
		badRequest(c, constants.ErrInvalidRequest)
		return
	}

	market, err := h.ledger.ResolveMarket(id, req.Winner)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMarketNotFound):
			respondError(c, http.StatusNotFound, constants.ErrMarketNotFound)
		case errors.Is(err, service.ErrMarketNotOpen):
			respondError(c, http.StatusConflict, constants.ErrMarketNotOpen)
		case errors.Is(err, service.ErrInvalidMarketAgent):
			badRequest(c, constants.ErrInvalidWinner)
		default:
			logging.Error("failed to resolve market", err, logging.Fields{constants.LogFieldMarketID: id})
			respondError(c, http.StatusInternalServerError, constants.ErrFailedSaveMarket)
		}
		return
	}
	respondData(c, http.StatusOK, market)
}

// ClaimBet settles one bet against its resolved market.
func (h *ArenaHandler) ClaimBet(c *gin.Context) {
	id, ok := parseID(c, "betID")
	if !ok {
		badRequest(c, constants.ErrInvalidBetID)
		return
	}
	var req claimBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, constants.ErrInvalidRequest)
		return
	}
	if !isWalletAddress(req.Bettor) {
		badRequest(c, constants.ErrInvalidBettor)
		return
	}

	result, err := h.ledger.ClaimBet(id, req.Bettor)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBetNotFound):
			respondError(c, http.StatusNotFound, constants.ErrBetNotFound)
		case errors.Is(err, service.ErrBettorMismatch):
			respondError(c, http.StatusForbidden, constants.ErrBettorMismatch)
		case errors.Is(err, service.ErrBetAlreadyClaimed):
			respondError(c, http.StatusConflict, constants.ErrBetAlreadyClaimed)
		case errors.Is(err, service.ErrMarketNotResolved):
			respondError(c, http.StatusConflict, constants.ErrMarketNotResolved)
		case errors.Is(err, service.ErrMarketNotFound):
			respondError(c, http.StatusNotFound, constants.ErrMarketNotFound)
		default:
			logging.Error("failed to claim bet", err, logging.Fields{constants.LogFieldBetID: id})
			respondError(c, http.StatusInternalServerError, constants.ErrFailedClaimBet)
		}
		return
	}
	respondData(c, http.StatusOK, result)
}

// ListBettorBets returns every bet placed by one wallet address.
func (h *ArenaHandler) ListBettorBets(c *gin.Context) {
	address := c.Param("address")
	if !isWalletAddress(address) {
		badRequest(c, constants.ErrInvalidBettor)
		return
	}
	bets, err := h.repo.ListBetsByBettor(address)
	if err != nil {
		logging.Error("failed to list bettor bets", err, nil)
		respondError(c, http.StatusInternalServerError, constants.ErrFailedListBets)
		return
	}
	respondData(c, http.StatusOK, bets)
}
