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

type createFightRequest struct {
	AgentA      uint   `json:"agent_a"`
	AgentB      uint   `json:"agent_b"`
	StakeAmount string `json:"stake_amount"`
}

var fightStatuses = map[arena.FightStatus]bool{
	arena.FightPending:    true,
	arena.FightInProgress: true,
	arena.FightCompleted:  true,
	arena.FightCancelled:  true,
}

// CreateFight schedules a pending fight between two distinct active agents.
func (h *ArenaHandler) CreateFight(c *gin.Context) {
	var req createFightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, constants.ErrInvalidRequest)
		return
	}
	if req.AgentA == 0 || req.AgentB == 0 {
		badRequest(c, constants.ErrInvalidAgentID)
		return
	}
	if req.AgentA == req.AgentB {
		badRequest(c, constants.ErrAgentsMustDiffer)
		return
	}
	stake, ok := parseAmount(req.StakeAmount)
	if !ok {
		badRequest(c, constants.ErrInvalidStakeAmount)
		return
	}

	agentA, errA := h.repo.GetAgentByID(req.AgentA)
	agentB, errB := h.repo.GetAgentByID(req.AgentB)
	if errA != nil || errB != nil {
		respondError(c, http.StatusNotFound, constants.ErrAgentNotFound)
		return
	}
	if !agentA.IsActive || !agentB.IsActive {
		badRequest(c, constants.ErrAgentsMustBeActive)
		return
	}

	fight := &arena.Fight{
		AgentAID:    req.AgentA,
		AgentBID:    req.AgentB,
		StakeAmount: stake,
		Status:      arena.FightPending,
	}
	if err := h.repo.CreateFight(fight); err != nil {
		logging.Error("failed to create fight", err, nil)
		respondError(c, http.StatusInternalServerError, constants.ErrFailedSaveFight)
		return
	}
	respondData(c, http.StatusCreated, fight)
}

// ListFights returns fights, optionally filtered by status.
func (h *ArenaHandler) ListFights(c *gin.Context) {
	status := arena.FightStatus(c.Query("status"))
	if status != "" && !fightStatuses[status] {
		badRequest(c, constants.ErrInvalidFightStatus)
		return
	}
	fights, err := h.repo.ListFights(status)
	if err != nil {
		logging.Error("failed to list fights", err, nil)
		respondError(c, http.StatusInternalServerError, constants.ErrFailedListFights)
		return
	}
	respondData(c, http.StatusOK, fights)
}

// GetFight returns one fight by id.
func (h *ArenaHandler) GetFight(c *gin.Context) {
	id, ok := parseID(c, "fightID")
	if !ok {
		badRequest(c, constants.ErrInvalidFightID)
		return
	}
	fight, err := h.repo.GetFightByID(id)
	if err != nil {
		respondError(c, http.StatusNotFound, constants.ErrFightNotFound)
		return
	}
	respondData(c, http.StatusOK, fight)
}

// ResolveFight runs the resolution coordinator for a pending fight.
func (h *ArenaHandler) ResolveFight(c *gin.Context) {
	id, ok := parseID(c, "fightID")
	if !ok {
		badRequest(c, constants.ErrInvalidFightID)
		return
	}

	verdict, err := service.ResolveFight(c.Request.Context(), h.repo, h.adj, h.rng, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFightNotFound):
			respondError(c, http.StatusNotFound, constants.ErrFightNotFound)
		case errors.Is(err, service.ErrFightNotPending):
			respondError(c, http.StatusConflict, constants.ErrFightNotPending)
		default:
			logging.Error("fight resolution failed", err, logging.Fields{constants.LogFieldFightID: id})
			respondError(c, http.StatusInternalServerError, constants.ErrFightResolution)
		}
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"winner":     verdict.WinnerID,
		"loser":      verdict.LoserID,
		"reasoning":  verdict.Narrative,
		"battle_log": verdict.BattleLog,
	})
}
