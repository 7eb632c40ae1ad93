package engines

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"io"
	"net/http"
	"strings"
)

type ChatClient struct {
	engine *RemoteInferenceEngine
	client *http.Client
	lg     zerolog.Logger
}

func NewChatClient(lg zerolog.Logger, engine *RemoteInferenceEngine, client *http.Client) *ChatClient {
	if client == nil {
		client = http.DefaultClient
	}

	return &ChatClient{
		engine: engine,
		client: client,
		lg:     lg.With().Str("endpoint", engine.EndpointUrl).Logger(),
	}
}

// RunChatCompletion makes a single chat completion call, there are no retries.
func (c *ChatClient) RunChatCompletion(ctx context.Context, messages []*Message, stopTokens []string) (*Message, error) {
	request := &ChatCompletionRequest{
		Model:       c.engine.Model,
		Messages:    makeChatCompletionMessages(messages),
		MaxTokens:   c.engine.MaxTokens,
		Temperature: c.engine.Temperature,
		N:           1,
		Stream:      false,
		Stop:        stopTokens,
	}

	commandBuffer, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("error marshaling command: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/chat/completions", strings.TrimSuffix(c.engine.EndpointUrl, "/")),
		bytes.NewBuffer(commandBuffer))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.engine.ApiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.engine.ApiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.lg.Error().Err(err).Msg("error in chat completion request")
		return nil, err
	}

	result, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		c.lg.Error().Err(err).Msg("error reading response")
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("http code is %d, err: %v", resp.StatusCode, string(result))
		c.lg.Error().Err(err).Msg("err in chat completion")
		return nil, err
	}

	content := gjson.GetBytes(result, "choices.0.message.content")
	if !content.Exists() {
		return nil, fmt.Errorf("no choices in response: %s", string(result))
	}

	role := gjson.GetBytes(result, "choices.0.message.role").String()
	if role == "" {
		role = string(ChatRoleAssistant)
	}

	msg := NewMessage(ChatRole(role), content.String())
	return msg, nil
}

func makeChatCompletionMessages(messages []*Message) []ChatCompletionMessage {
	result := make([]ChatCompletionMessage, 0, len(messages))

	for _, msg := range messages {
		if msg == nil {
			continue
		}
		result = append(result, ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	return result
}
