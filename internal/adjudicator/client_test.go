package adjudicator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kiran797979/monad-blitz-hyderabad/internal/arena"
)

var (
	agentA = &arena.Agent{ID: 1, Name: "Alpha", Wins: 3, Losses: 1, TotalBattles: 4}
	agentB = &arena.Agent{ID: 2, Name: "Beta", Wins: 1, Losses: 2, TotalBattles: 3}
)

// chatServer returns a test server speaking the chat-completions shape with
// the given inner content, and a client pointed at it.
func chatServer(t *testing.T, status int, content string) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("missing bearer token, got %q", got)
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)

	c := New("test-key", "test-model", 2*time.Second)
	c.baseURL = srv.URL
	return srv, c
}

func TestAdjudicate_ParsesVerdict(t *testing.T) {
	verdict := `{"winnerId": 2, "reasoning": "Beta outmaneuvered Alpha", "battleLog": ["Beta feints.", "Beta strikes."]}`
	_, c := chatServer(t, http.StatusOK, verdict)

	v, err := c.Adjudicate(context.Background(), agentA, agentB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.WinnerID != 2 || v.LoserID != 1 {
		t.Fatalf("unexpected verdict: %+v", v)
	}
	if !strings.Contains(v.Narrative, "Beta outmaneuvered Alpha") {
		t.Fatalf("reasoning lost: %q", v.Narrative)
	}
	if len(v.BattleLog) != 2 {
		t.Fatalf("battle log lost: %v", v.BattleLog)
	}
}

func TestAdjudicate_DefaultsEmptyFields(t *testing.T) {
	_, c := chatServer(t, http.StatusOK, `{"winnerId": 1}`)

	v, err := c.Adjudicate(context.Background(), agentA, agentB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Narrative == "" || len(v.BattleLog) == 0 {
		t.Fatalf("expected defaulted narrative and battle log, got %+v", v)
	}
}

func TestAdjudicate_UnknownWinnerUnavailable(t *testing.T) {
	_, c := chatServer(t, http.StatusOK, `{"winnerId": 42, "reasoning": "nobody you know"}`)

	if _, err := c.Adjudicate(context.Background(), agentA, agentB); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestAdjudicate_MalformedContentUnavailable(t *testing.T) {
	_, c := chatServer(t, http.StatusOK, "the model rambled instead of emitting JSON")

	if _, err := c.Adjudicate(context.Background(), agentA, agentB); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestAdjudicate_RateLimitUnavailable(t *testing.T) {
	_, c := chatServer(t, http.StatusTooManyRequests, "")

	if _, err := c.Adjudicate(context.Background(), agentA, agentB); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestAdjudicate_ServerErrorUnavailable(t *testing.T) {
	_, c := chatServer(t, http.StatusInternalServerError, "")

	if _, err := c.Adjudicate(context.Background(), agentA, agentB); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestAdjudicate_MissingKeyUnavailable(t *testing.T) {
	c := New("", "test-model", time.Second)

	if _, err := c.Adjudicate(context.Background(), agentA, agentB); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestAdjudicate_TransportFailureUnavailable(t *testing.T) {
	c := New("test-key", "test-model", time.Second)
	c.baseURL = "http://127.0.0.1:1"

	if _, err := c.Adjudicate(context.Background(), agentA, agentB); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
