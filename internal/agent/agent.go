// Package agent orchestrates anderson's chat pipeline: augmentation,
// message assembly, the remote completion call, and the history/worklog
// bookkeeping around it.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/MikeSquared-Agency/anderson/internal/archive"
	"github.com/MikeSquared-Agency/anderson/internal/chat"
	"github.com/MikeSquared-Agency/anderson/internal/fetch"
	"github.com/MikeSquared-Agency/anderson/internal/gateway"
	"github.com/MikeSquared-Agency/anderson/internal/hermes"
	"github.com/MikeSquared-Agency/anderson/internal/history"
	"github.com/MikeSquared-Agency/anderson/internal/worklog"
)

// systemPrompt is synthesized fresh on every request and never stored.
const systemPrompt = "You are Anderson, a professional AI assistant agent with a secure workspace. You have persistent memory of this conversation. Keep your responses concise."

// Agent owns the process-wide conversation session. All reads and
// read-modify-writes of the history go through its mutex; the remote call
// itself happens outside the lock so a slow completion does not block
// history reads.
type Agent struct {
	llm       *gateway.Client
	augmenter *fetch.Augmenter
	store     *history.Store
	worklog   *worklog.Logger
	hermes    *hermes.Client // optional
	archive   *archive.Store // optional
	logger    *slog.Logger

	mu      sync.Mutex
	history []chat.Turn
}

// New builds the agent and loads the persisted history. The hermes and
// archive collaborators may be nil; anderson runs standalone without them.
func New(llm *gateway.Client, aug *fetch.Augmenter, store *history.Store, wl *worklog.Logger, h *hermes.Client, ar *archive.Store, logger *slog.Logger) *Agent {
	return &Agent{
		llm:       llm,
		augmenter: aug,
		store:     store,
		worklog:   wl,
		hermes:    h,
		archive:   ar,
		logger:    logger,
		history:   store.Load(),
	}
}

// History returns a copy of the current conversation history.
func (a *Agent) History() []chat.Turn {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.history == nil {
		return []chat.Turn{}
	}
	return slices.Clone(a.history)
}

// Handle runs one prompt through the full pipeline and returns the
// assistant's reply. On a failed completion the history is left untouched.
func (a *Agent) Handle(ctx context.Context, prompt string) (string, error) {
	a.worklog.Append("User: " + prompt)

	fetched := a.augmenter.Augment(ctx, prompt)

	a.mu.Lock()
	messages := make([]gateway.Message, 0, len(a.history)+2)
	messages = append(messages, gateway.Message{Role: chat.RoleSystem, Content: systemPrompt})
	for _, turn := range a.history {
		messages = append(messages, gateway.Message{Role: turn.Role, Content: turn.Content})
	}
	a.mu.Unlock()
	messages = append(messages, gateway.Message{Role: chat.RoleUser, Content: prompt + fetched})

	reply, err := a.llm.Complete(ctx, messages)
	if err != nil {
		a.worklog.Append("Error: " + err.Error())
		a.logger.Error("completion failed", "error", err)
		return "", err
	}

	// Commit the exchange. The stored turns carry what the user typed and
	// what the model replied; the fetched context stays out of history.
	a.mu.Lock()
	a.history = append(a.history, chat.Turn{Role: chat.RoleUser, Content: prompt})
	a.history = append(a.history, chat.Turn{Role: chat.RoleAssistant, Content: reply})
	a.history = chat.Trim(a.history)
	persisted := slices.Clone(a.history)
	a.mu.Unlock()

	if err := a.store.Save(persisted); err != nil {
		a.logger.Warn("failed to persist history", "error", err)
	}
	a.worklog.Append("Agent: " + reply)

	a.recordExchange(ctx, prompt, reply)

	return reply, nil
}

// recordExchange feeds the optional swarm integrations. Both are
// best-effort; failures are logged and the reply is served regardless.
func (a *Agent) recordExchange(ctx context.Context, prompt, reply string) {
	if a.hermes == nil && a.archive == nil {
		return
	}

	exchangeID := uuid.New()

	if a.archive != nil {
		if err := a.archive.WriteExchange(ctx, exchangeID, a.llm.Model(), prompt, reply); err != nil {
			a.logger.Error("failed to archive exchange", "exchange_id", exchangeID, "error", err)
		}
	}

	if a.hermes != nil {
		evt := hermes.TurnCompleted{
			ExchangeID: exchangeID.String(),
			Model:      a.llm.Model(),
			PromptLen:  len(prompt),
			ReplyLen:   len(reply),
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
		}
		if err := a.hermes.Publish(hermes.SubjectTurnCompleted, evt); err != nil {
			a.logger.Error("failed to publish turn event", "exchange_id", exchangeID, "error", err)
		}
	}
}

// Announce publishes the agent's registration to the swarm, if hermes is
// configured.
func (a *Agent) Announce(port int) {
	if a.hermes == nil {
		return
	}
	if err := a.hermes.Publish(hermes.SubjectRegistered, map[string]any{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"port":      port,
		"model":     a.llm.Model(),
	}); err != nil {
		a.logger.Warn("failed to publish registration", "error", err)
	}
}

// StartSession writes the boot line to the worklog.
func (a *Agent) StartSession() {
	a.worklog.Append(fmt.Sprintf("Anderson session started (%d turns restored).", len(a.History())))
}
