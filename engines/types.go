package engines

import (
	"crypto/sha512"
	"github.com/google/uuid"
)

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleSystem    ChatRole = "system"
	ChatRoleAssistant ChatRole = "assistant"
)

type Message struct {
	ID      *string  `json:"id,omitempty"`
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

func NewMessage(role ChatRole, content string) *Message {
	id := GenerateMessageId(content)
	return &Message{
		ID:      &id,
		Content: content,
		Role:    role,
	}
}

func GenerateMessageId(body string) string {
	return uuid.NewHash(sha512.New(), uuid.Nil, []byte(body), 5).String()
}

// RemoteInferenceEngine is an OpenAI compatible chat completions endpoint.
type RemoteInferenceEngine struct {
	EndpointUrl string
	Model       string
	ApiKey      string
	Temperature float32
	MaxTokens   int
}

type ChatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []ChatCompletionMessage `json:"messages"`
	MaxTokens   int                     `json:"max_tokens,omitempty"`
	Temperature float32                 `json:"temperature"`
	N           int                     `json:"n"`
	Stream      bool                    `json:"stream"`
	Stop        []string                `json:"stop,omitempty"`
}
