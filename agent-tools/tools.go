package agent_tools

import (
	"bytes"
	"context"
	"encoding/json"
	news_tools "github.com/d0rc/news-agent/news-tools"
	"github.com/rs/zerolog"
	"strings"
)

/*

   Available tools:

   FetchNews - Fetches top 5 articles from an RSS feed given a URL. Input: URL as a string;

   ScrapePageContent - Scrapes and returns the content of a webpage. Input: URL as a string;

   ScrapeLinks - Scrapes and returns up to 5 links from a given webpage. Input: URL as a string.

*/

// AgentTool is a named operation the planner can call with a single
// string argument. Run never fails: problems are described in the
// returned observation.
type AgentTool interface {
	Name() string
	ContextDescription() string
	Run(ctx context.Context, input string) string
}

func NewsTools(fetcher *news_tools.Fetcher, lg zerolog.Logger) []AgentTool {
	return []AgentTool{
		&FetchNews{fetcher: fetcher, lg: lg},
		&ScrapePageContent{fetcher: fetcher, lg: lg},
		&ScrapeLinks{fetcher: fetcher, lg: lg},
	}
}

func GetToolsSelection(tools []AgentTool, exclude []string) []AgentTool {
	resultingTools := make([]AgentTool, 0)

	for _, tool := range tools {
		if !contains(exclude, tool.Name()) {
			resultingTools = append(resultingTools, tool)
		}
	}

	return resultingTools
}

func FindTool(tools []AgentTool, name string) AgentTool {
	name = strings.TrimSpace(name)
	for _, tool := range tools {
		if strings.EqualFold(tool.Name(), name) {
			return tool
		}
	}

	return nil
}

func GetContextDescription(tools []AgentTool) string {
	result := strings.Builder{}
	result.WriteString("Available tools:\n")
	for idx, tool := range tools {
		result.WriteString(tool.Name())
		result.WriteString(" - ")
		result.WriteString(tool.ContextDescription())
		if idx < len(tools)-1 {
			result.WriteString(";\n")
		} else {
			result.WriteString(".\n")
		}
	}
	result.WriteString("\n")

	return result.String()
}

func renderLinks(links []string) string {
	if links == nil {
		links = []string{}
	}

	// links carry query strings, & has to reach the planner as is
	buf := &bytes.Buffer{}
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(links); err != nil {
		return "[]"
	}

	return strings.TrimSuffix(buf.String(), "\n")
}

func logFailure(lg zerolog.Logger, tool string, input string, err error) {
	lg.Warn().Err(err).
		Str("tool", tool).
		Str("kind", string(news_tools.KindOf(err))).
		Msgf("tool call failed, input: %s", input)
}

func contains(exclude []string, name string) bool {
	contained := false
	for _, item := range exclude {
		if item == name {
			contained = true
			break
		}
	}

	return contained
}
