package agency

import (
	"context"
	"fmt"
	agent_tools "github.com/d0rc/news-agent/agent-tools"
	"github.com/d0rc/news-agent/engines"
	"github.com/d0rc/news-agent/settings"
	"github.com/d0rc/news-agent/tools"
	"github.com/d0rc/news-agent/utils"
	pongo2 "github.com/flosch/pongo2/v6"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"strings"
)

// NewsAgent is a ReAct loop: the model picks a tool, the tool result goes
// back to the model as an observation, until a final answer is given.
// Everything runs sequentially, a failed completion ends the run.
type NewsAgent struct {
	completer Completer
	tools     []agent_tools.AgentTool
	journals  []settings.Journal
	config    AgentSettings
	lg        zerolog.Logger
}

func NewNewsAgent(lg zerolog.Logger, completer Completer, agentTools []agent_tools.AgentTool,
	journals []settings.Journal, agentSettings AgentSettings) *NewsAgent {
	if agentSettings.MaxSteps <= 0 {
		agentSettings.MaxSteps = DefaultMaxSteps
	}
	if agentSettings.Prompt == "" {
		agentSettings.Prompt = DefaultNewsPrompt
	}

	return &NewsAgent{
		completer: completer,
		tools:     agentTools,
		journals:  journals,
		config:    agentSettings,
		lg:        lg,
	}
}

func (agent *NewsAgent) SystemPrompt(query string) (string, error) {
	tpl, err := pongo2.FromString(agent.config.Prompt)
	if err != nil {
		return "", fmt.Errorf("error parsing agent's prompt: %v", err)
	}

	contextString, err := tpl.Execute(pongo2.Context{
		"journals": settings.JournalsText(agent.journals),
		"tools":    agent_tools.GetContextDescription(agent.tools),
		"query":    query,
	})
	if err != nil {
		return "", fmt.Errorf("error executing agent's prompt: %v", err)
	}

	return fmt.Sprintf("%s\nRespond always in JSON format:\n```json\n%s\n```\n", contextString, responseFormat), nil
}

func (agent *NewsAgent) Run(ctx context.Context, query string) (*AgentResult, error) {
	lg := agent.lg.With().Str("run", uuid.NewString()).Logger()

	systemPrompt, err := agent.SystemPrompt(query)
	if err != nil {
		return nil, err
	}

	history := engines.NewChatPrompt().
		AddSystem(systemPrompt).
		AddUser(query)
	result := &AgentResult{Steps: make([]*Step, 0)}

	for stepNo := 1; stepNo <= agent.config.MaxSteps; stepNo++ {
		reply, err := agent.completer.RunChatCompletion(ctx, history.Messages(), nil)
		if err != nil {
			return result, fmt.Errorf("error running completion on step %d: %v", stepNo, err)
		}
		history.AddAssistant(reply.Content)

		response, err := parseAgentResponse(reply.Content)
		if err != nil {
			lg.Warn().Err(err).Int("step", stepNo).Msg("unparsable agent response")
			result.Steps = append(result.Steps, &Step{Observation: ParsingErrorObservation})
			history.AddUser(observation(ParsingErrorObservation))
			continue
		}

		if response.finalAnswer != "" {
			lg.Info().Int("step", stepNo).Msg("final answer received")
			result.Answer = response.finalAnswer
			return result, nil
		}

		step := &Step{
			Thought:     response.thought,
			Action:      response.action,
			ActionInput: response.actionInput,
		}
		step.Observation = agent.runTool(ctx, lg, stepNo, step)
		result.Steps = append(result.Steps, step)
		history.AddUser(observation(step.Observation))
	}

	return result, fmt.Errorf("no final answer after %d steps", agent.config.MaxSteps)
}

func (agent *NewsAgent) runTool(ctx context.Context, lg zerolog.Logger, stepNo int, step *Step) string {
	tool := agent_tools.FindTool(agent.tools, step.Action)
	if tool == nil {
		lg.Warn().Int("step", stepNo).Str("action", step.Action).Msg("unknown tool requested")
		return fmt.Sprintf("Unknown tool %q. %s", step.Action,
			strings.TrimSpace(agent_tools.GetContextDescription(agent.tools)))
	}

	lg.Info().Int("step", stepNo).
		Str("tool", tool.Name()).
		Str("input", step.ActionInput).
		Msgf("thought: %s", step.Thought)

	toolResult, truncated := utils.TruncateTokensGPT2(tool.Run(ctx, step.ActionInput), agent.config.MaxObservationTokens)
	if truncated {
		lg.Debug().Int("step", stepNo).
			Int("max-tokens", agent.config.MaxObservationTokens).
			Msg("observation truncated")
	}

	return toolResult
}

func observation(text string) string {
	return "Observation:\n" + text
}

func parseAgentResponse(content string) (*agentResponse, error) {
	response := &agentResponse{}
	err := tools.ParseJSON(content, func(s string) error {
		parsed := gjson.Parse(s)
		if !parsed.IsObject() {
			return fmt.Errorf("not a json object")
		}

		finalAnswer := parsed.Get("final-answer")
		action := parsed.Get("action")
		if strings.TrimSpace(finalAnswer.String()) == "" && strings.TrimSpace(action.String()) == "" {
			return fmt.Errorf("neither action nor final-answer given")
		}

		response.thought = parsed.Get("thought").String()
		response.action = strings.TrimSpace(action.String())
		response.actionInput = actionInput(parsed.Get("action-input"))
		response.finalAnswer = finalAnswer.String()
		if finalAnswer.IsObject() || finalAnswer.IsArray() {
			response.finalAnswer = finalAnswer.Raw
		}

		return nil
	})

	return response, err
}

// models tend to send {"url": "..."} even when asked for a plain string
func actionInput(value gjson.Result) string {
	if value.IsObject() {
		if u := value.Get("url"); u.Exists() {
			return u.String()
		}
		return value.Raw
	}

	return value.String()
}
