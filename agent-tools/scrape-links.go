package agent_tools

import (
	"context"
	news_tools "github.com/d0rc/news-agent/news-tools"
	"github.com/rs/zerolog"
)

type ScrapeLinks struct {
	fetcher *news_tools.Fetcher
	lg      zerolog.Logger
}

func (s *ScrapeLinks) Name() string {
	return "ScrapeLinks"
}

func (s *ScrapeLinks) ContextDescription() string {
	return "Scrapes and returns up to 5 links from a given webpage. Input: URL as a string"
}

// Run reports every failure as an empty list, the reason only goes to the log.
func (s *ScrapeLinks) Run(ctx context.Context, input string) string {
	links, err := s.fetcher.ScrapeLinks(ctx, input)
	if err != nil {
		logFailure(s.lg, s.Name(), input, err)
		return "[]"
	}

	return renderLinks(links)
}
