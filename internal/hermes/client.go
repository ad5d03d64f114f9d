// Package hermes publishes anderson's swarm events over NATS. Anderson is
// an event source only; it subscribes to nothing.
package hermes

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// SubjectTurnCompleted carries one event per successful chat exchange.
const SubjectTurnCompleted = "swarm.anderson.turn.completed"

// SubjectRegistered announces the agent to the swarm at startup.
const SubjectRegistered = "swarm.agent.anderson.registered"

// TurnCompleted is the payload for SubjectTurnCompleted. Prompt and reply
// bodies stay out of the event; downstream consumers that need content read
// the archive instead.
type TurnCompleted struct {
	ExchangeID string `json:"exchange_id"`
	Model      string `json:"model"`
	PromptLen  int    `json:"prompt_len"`
	ReplyLen   int    `json:"reply_len"`
	Timestamp  string `json:"timestamp"`
}

type Client struct {
	conn   *nats.Conn
	logger *slog.Logger
}

func NewClient(url, token string, logger *slog.Logger) (*Client, error) {
	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Client{conn: nc, logger: logger}, nil
}

func (c *Client) Publish(subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return c.conn.Publish(subject, payload)
}

func (c *Client) Close() {
	c.conn.Close()
}
