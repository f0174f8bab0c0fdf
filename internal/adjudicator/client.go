package adjudicator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/kiran797979/monad-blitz-hyderabad/internal/arena"
	"github.com/kiran797979/monad-blitz-hyderabad/internal/constants"
	"github.com/kiran797979/monad-blitz-hyderabad/internal/logging"
)

// ErrUnavailable is the single failure mode this package exposes. Missing
// configuration, transport errors, timeouts, rate limits and malformed or
// inconsistent verdicts all collapse to it so the coordinator can fall back
// to the local simulator.
var ErrUnavailable = errors.New("adjudicator unavailable")

// Client asks an OpenRouter-hosted model to adjudicate a fight between two
// agents based on their public records.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// New builds a client. An empty apiKey is allowed and makes every call report
// ErrUnavailable. The timeout bounds the whole HTTP exchange.
func New(apiKey, model string, timeout time.Duration) *Client {
	if model == "" {
		model = constants.OpenRouterDefaultModel
	}
	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    constants.OpenRouterBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type rawVerdict struct {
	WinnerID  uint     `json:"winnerId"`
	Reasoning string   `json:"reasoning"`
	BattleLog []string `json:"battleLog"`
}

// Adjudicate returns an external verdict for the fight, or ErrUnavailable.
// The returned winner is guaranteed to be one of the two supplied agent ids.
func (c *Client) Adjudicate(ctx context.Context, a, b *arena.Agent) (*arena.Verdict, error) {
	if c.apiKey == "" {
		logging.Warn("adjudicator not configured, using stats-based combat", nil, nil)
		return nil, ErrUnavailable
	}

	payload := map[string]interface{}{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt(a, b)},
			{"role": "user", "content": fmt.Sprintf("Simulate a battle between %s and %s.", a.Name, b.Name)},
		},
		"max_tokens":  constants.AdjudicatorMaxTokens,
		"temperature": constants.AdjudicatorTemperature,
	}
	body, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+constants.OpenRouterChatPath, strings.NewReader(string(body)))
	if err != nil {
		return nil, ErrUnavailable
	}
	req.Header.Set(constants.HeaderAuthorization, constants.BearerPrefix+c.apiKey)
	req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	req.Header.Set(constants.HeaderReferer, constants.OpenRouterRefererValue)
	req.Header.Set(constants.HeaderTitle, constants.OpenRouterTitleValue)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Warn("adjudicator request failed", err, logging.Fields{constants.LogFieldModel: c.model})
		return nil, ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		logging.Warn("adjudicator rate limited", nil, logging.Fields{constants.LogFieldModel: c.model})
		return nil, ErrUnavailable
	}
	if resp.StatusCode != http.StatusOK {
		logging.Warn("adjudicator returned error status", nil, logging.Fields{constants.LogFieldStatus: resp.StatusCode})
		return nil, ErrUnavailable
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		logging.Warn("failed to decode adjudicator response", err, nil)
		return nil, ErrUnavailable
	}
	if len(out.Choices) == 0 {
		return nil, ErrUnavailable
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		logging.Warn("empty adjudicator response", nil, nil)
		return nil, ErrUnavailable
	}

	var rv rawVerdict
	if err := json.Unmarshal([]byte(content), &rv); err != nil {
		logging.Warn("malformed adjudicator verdict", err, nil)
		return nil, ErrUnavailable
	}
	// Trust nothing: the winner must be one of the two known agents.
	if rv.WinnerID != a.ID && rv.WinnerID != b.ID {
		logging.Warn("adjudicator named an unknown winner", nil, logging.Fields{constants.LogFieldAgentID: rv.WinnerID})
		return nil, ErrUnavailable
	}

	loserID := a.ID
	if rv.WinnerID == a.ID {
		loserID = b.ID
	}
	reasoning := rv.Reasoning
	if reasoning == "" {
		reasoning = "Battle resolved by AI"
	}
	battleLog := rv.BattleLog
	if len(battleLog) == 0 {
		battleLog = []string{"Battle concluded."}
	}

	return &arena.Verdict{
		WinnerID:  rv.WinnerID,
		LoserID:   loserID,
		Narrative: "🤖 AI Decision:\n" + reasoning,
		BattleLog: battleLog,
	}, nil
}

func systemPrompt(a, b *arena.Agent) string {
	return fmt.Sprintf(`You are an AI battle simulator. Determine the winner between two AI agents based on their stats.

Agent A: %s (ID: %d) - Wins: %d, Losses: %d, Total Battles: %d
Agent B: %s (ID: %d) - Wins: %d, Losses: %d, Total Battles: %d

Respond with a JSON object describing the battle:
{
  "winnerId": <agent A or B id>,
  "reasoning": "<brief explanation of why this agent won>",
  "battleLog": ["<round 1 description>", "<round 2 description>", ...]
}

Keep battleLog to 5-10 lines maximum. Be creative but concise.`,
		a.Name, a.ID, a.Wins, a.Losses, a.TotalBattles,
		b.Name, b.ID, b.Wins, b.Losses, b.TotalBattles)
}
