package agent_tools

import (
	"context"
	news_tools "github.com/d0rc/news-agent/news-tools"
	"github.com/rs/zerolog"
)

type FetchNews struct {
	fetcher *news_tools.Fetcher
	lg      zerolog.Logger
}

func (f *FetchNews) Name() string {
	return "FetchNews"
}

func (f *FetchNews) ContextDescription() string {
	return "Fetches top 5 articles from an RSS feed given a URL. Input: URL as a string"
}

// Run returns the links as a JSON list, or the failure description.
func (f *FetchNews) Run(ctx context.Context, input string) string {
	articles, err := f.fetcher.FetchNews(ctx, input)
	if err != nil {
		logFailure(f.lg, f.Name(), input, err)
		return err.Error()
	}

	return renderLinks(articles)
}
