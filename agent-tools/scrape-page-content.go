package agent_tools

import (
	"context"
	news_tools "github.com/d0rc/news-agent/news-tools"
	"github.com/rs/zerolog"
)

type ScrapePageContent struct {
	fetcher *news_tools.Fetcher
	lg      zerolog.Logger
}

func (s *ScrapePageContent) Name() string {
	return "ScrapePageContent"
}

func (s *ScrapePageContent) ContextDescription() string {
	return "Scrapes and returns the content of a webpage. Input: URL as a string"
}

func (s *ScrapePageContent) Run(ctx context.Context, input string) string {
	text, err := s.fetcher.ScrapePageContent(ctx, input)
	if err != nil {
		logFailure(s.lg, s.Name(), input, err)
		return err.Error()
	}

	return text
}
