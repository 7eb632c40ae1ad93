package agency

import (
	"context"
	"github.com/d0rc/news-agent/engines"
)

// Completer is the LLM behind the planner.
type Completer interface {
	RunChatCompletion(ctx context.Context, messages []*engines.Message, stopTokens []string) (*engines.Message, error)
}

type AgentSettings struct {
	MaxSteps             int
	MaxObservationTokens int
	Prompt               string
}

type Step struct {
	Thought     string `json:"thought,omitempty"`
	Action      string `json:"action,omitempty"`
	ActionInput string `json:"action-input,omitempty"`
	Observation string `json:"observation,omitempty"`
}

type AgentResult struct {
	Answer string  `json:"answer"`
	Steps  []*Step `json:"steps"`
}

type agentResponse struct {
	thought     string
	action      string
	actionInput string
	finalAnswer string
}
