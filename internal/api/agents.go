package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/kiran797979/monad-blitz-hyderabad/internal/arena"
	"github.com/kiran797979/monad-blitz-hyderabad/internal/constants"
	"github.com/kiran797979/monad-blitz-hyderabad/internal/logging"
)

type createAgentRequest struct {
	Name        string `json:"name"`
	Owner       string `json:"owner"`
	MetadataURI string `json:"metadata_uri"`
}

// CreateAgent registers a new agent. Agents start active with a zeroed record.
func (h *ArenaHandler) CreateAgent(c *gin.Context) {
	var req createAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, constants.ErrInvalidRequest)
		return
	}
	if len(req.Name) == 0 || len(req.Name) > 32 {
		badRequest(c, constants.ErrAgentNameLength)
		return
	}
	if !isWalletAddress(req.Owner) {
		badRequest(c, constants.ErrInvalidOwner)
		return
	}

	agent := &arena.Agent{
		Name:         req.Name,
		Owner:        req.Owner,
		MetadataURI:  req.MetadataURI,
		StakedAmount: decimal.Zero,
		IsActive:     true,
	}
	if err := h.repo.CreateAgent(agent); err != nil {
		logging.Error("failed to create agent", err, nil)
		respondError(c, http.StatusInternalServerError, constants.ErrFailedSaveAgent)
		return
	}
	respondData(c, http.StatusCreated, agent)
}

// ListAgents returns all registered agents, newest first.
func (h *ArenaHandler) ListAgents(c *gin.Context) {
	agents, err := h.repo.ListAgents()
	if err != nil {
		logging.Error("failed to list agents", err, nil)
		respondError(c, http.StatusInternalServerError, constants.ErrFailedListAgents)
		return
	}
	respondData(c, http.StatusOK, agents)
}

// GetAgent returns one agent by id.
func (h *ArenaHandler) GetAgent(c *gin.Context) {
	id, ok := parseID(c, "agentID")
	if !ok {
		badRequest(c, constants.ErrInvalidAgentID)
		return
	}
	agent, err := h.repo.GetAgentByID(id)
	if err != nil {
		respondError(c, http.StatusNotFound, constants.ErrAgentNotFound)
		return
	}
	respondData(c, http.StatusOK, agent)
}

// GetAgentStats returns an agent together with its win rate percentage.
func (h *ArenaHandler) GetAgentStats(c *gin.Context) {
	id, ok := parseID(c, "agentID")
	if !ok {
		badRequest(c, constants.ErrInvalidAgentID)
		return
	}
	agent, err := h.repo.GetAgentByID(id)
	if err != nil {
		respondError(c, http.StatusNotFound, constants.ErrAgentNotFound)
		return
	}
	respondData(c, http.StatusOK, gin.H{
		"agent":    agent,
		"profile":  arena.DeriveProfile(agent),
		"win_rate": fmt.Sprintf("%.2f", agent.WinRate()),
	})
}

// ListLeaderboard returns the top agents ordered by wins.
func (h *ArenaHandler) ListLeaderboard(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	agents, err := h.repo.GetTopAgents(limit)
	if err != nil {
		logging.Error("failed to list leaderboard", err, nil)
		respondError(c, http.StatusInternalServerError, constants.ErrFailedListAgents)
		return
	}
	respondData(c, http.StatusOK, agents)
}
