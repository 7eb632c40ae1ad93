package engines

// ChatPrompt is the conversation sent to the chat completions endpoint.
type ChatPrompt struct {
	messages []*Message
}

func NewChatPrompt() *ChatPrompt {
	return &ChatPrompt{
		messages: make([]*Message, 0),
	}
}

func (p *ChatPrompt) AddSystem(systemMessage string) *ChatPrompt {
	return p.AddMessage(NewMessage(ChatRoleSystem, systemMessage))
}

func (p *ChatPrompt) AddUser(userMessage string) *ChatPrompt {
	return p.AddMessage(NewMessage(ChatRoleUser, userMessage))
}

func (p *ChatPrompt) AddAssistant(assistantMessage string) *ChatPrompt {
	return p.AddMessage(NewMessage(ChatRoleAssistant, assistantMessage))
}

func (p *ChatPrompt) AddMessage(msg *Message) *ChatPrompt {
	p.messages = append(p.messages, msg)
	return p
}

// Messages returns a copy, later additions to the prompt do not show up in it.
func (p *ChatPrompt) Messages() []*Message {
	return append([]*Message{}, p.messages...)
}
