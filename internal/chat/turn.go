// Package chat defines the conversation data model shared across anderson.
package chat

// Turn is one message in the conversation, tagged with its speaker role.
// Turns are immutable once created; ordering within a history is
// chronological.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Speaker roles. System turns are synthesized per request and never stored.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// MaxHistory is the cap on stored turns (10 user/assistant exchanges).
const MaxHistory = 20

// Trim returns history reduced to the most recent MaxHistory turns.
// Older turns are discarded; no summarization happens.
func Trim(history []Turn) []Turn {
	if len(history) > MaxHistory {
		return history[len(history)-MaxHistory:]
	}
	return history
}
