package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/d0rc/news-agent/agency"
	agent_tools "github.com/d0rc/news-agent/agent-tools"
	"github.com/d0rc/news-agent/engines"
	news_tools "github.com/d0rc/news-agent/news-tools"
	"github.com/d0rc/news-agent/settings"
	"github.com/d0rc/news-agent/utils"
	"github.com/logrusorgru/aurora"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"io"
	"net/http"
	"os"
	"os/signal"
)

// the agent gets a request in plain words, finds the right feed, reads the
// articles and summarizes them; the only things it can do on the web are
// the three news tools

var configPath = flag.String("config", "", "path to the YAML configuration file, built-in defaults if empty")
var dotEnvPath = flag.String("dotenv", ".env", "dotenv file to look for the API key in")
var query = flag.String("query", "Fetch the latest business articles from the BBC", "request for the agent")
var listFeeds = flag.Bool("list-feeds", false, "print known journals and feeds and exit")
var toolName = flag.String("tool", "", "run a single tool without the LLM: FetchNews, ScrapePageContent or ScrapeLinks")
var toolInput = flag.String("input", "", "input for -tool")
var verbose = flag.Bool("verbose", false, "debug logging")

func main() {
	flag.Parse()
	lg, au := utils.ConsoleInit("news-agent", *verbose)

	config, err := settings.ProcessConfigurationFile(*configPath)
	if err != nil {
		lg.Fatal().Err(err).Msg("error loading configuration")
	}

	if *listFeeds {
		printJournals(os.Stdout, config.Journals)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fetcher := news_tools.NewFetcher(lg,
		news_tools.WithHttpClient(&http.Client{Timeout: config.FetcherTimeOut()}),
		news_tools.WithUserAgent(config.Fetcher.UserAgent),
		news_tools.WithPageFormat(news_tools.PageFormat(config.Fetcher.PageFormat)))
	newsTools := agent_tools.GetToolsSelection(agent_tools.NewsTools(fetcher, lg), config.Agent.ExcludeTools)

	if *toolName != "" {
		tool := agent_tools.FindTool(newsTools, *toolName)
		if tool == nil {
			lg.Fatal().Msgf("unknown tool: %s", *toolName)
		}
		fmt.Println(tool.Run(ctx, *toolInput))
		return
	}

	config.LoadApiKey(*dotEnvPath)
	if config.Compute.ApiKey == "" {
		lg.Warn().Msgf("no API key configured, set compute.api-key or %s", settings.ApiKeyEnv)
	}

	code := runAgent(ctx, lg, au, config, newsTools)
	stop()
	os.Exit(code)
}

func runAgent(ctx context.Context, lg zerolog.Logger, au aurora.Aurora, config *settings.ConfigurationFile, newsTools []agent_tools.AgentTool) int {
	chatClient := engines.NewChatClient(lg, &engines.RemoteInferenceEngine{
		EndpointUrl: config.Compute.Endpoint,
		Model:       config.Compute.Model,
		ApiKey:      config.Compute.ApiKey,
		Temperature: config.Compute.Temperature,
		MaxTokens:   config.Compute.MaxTokens,
	}, nil)

	agent := agency.NewNewsAgent(lg, chatClient, newsTools, config.Journals, agency.AgentSettings{
		MaxSteps:             config.Agent.MaxSteps,
		MaxObservationTokens: config.Agent.MaxObservationTokens,
		Prompt:               config.Agent.Prompt,
	})

	fmt.Printf("Invoking agent with input: %s\n", au.BrightWhite(*query))
	result, err := agent.Run(ctx, *query)
	if err != nil {
		lg.Error().Err(err).Msg("error during execution")
		return 1
	}

	fmt.Printf("\n%s\n%s\n", au.BrightGreen("FINAL RESPONSE:"), result.Answer)
	return 0
}

func printJournals(out io.Writer, journals []settings.Journal) {
	tw := tablewriter.NewWriter(out)
	tw.SetHeader([]string{"Journal", "Category", "Feed"})
	for _, journal := range journals {
		for _, feed := range journal.Feeds {
			tw.Append([]string{journal.Name, feed.Category, feed.Url})
		}
	}
	tw.Render()
}
