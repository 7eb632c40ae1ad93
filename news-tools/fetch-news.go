package news_tools

import (
	"context"
	"errors"
	"fmt"
	"github.com/mmcdole/gofeed"
	"net/url"
)

// FetchNews returns links of the first MaxArticles entries of the feed,
// in feed order. Entries without a link are reported as NoLink.
func (f *Fetcher) FetchNews(ctx context.Context, rawUrl string) ([]string, error) {
	feedUrl, err := NormalizeURL(rawUrl)
	if err != nil {
		return nil, err
	}

	fp := gofeed.NewParser()
	fp.Client = f.client
	fp.UserAgent = f.userAgent

	feed, err := fp.ParseURLWithContext(feedUrl, ctx)
	if err != nil {
		f.lg.Warn().Err(err).Msgf("error parsing feed: %s", feedUrl)
		return nil, feedError(feedUrl, err)
	}

	if len(feed.Items) == 0 {
		return nil, &ToolError{Kind: FK_EmptyResult, Url: feedUrl}
	}

	limit := MaxArticles
	if len(feed.Items) < limit {
		limit = len(feed.Items)
	}

	articles := make([]string, 0, limit)
	for _, item := range feed.Items[:limit] {
		if item == nil || item.Link == "" {
			articles = append(articles, NoLink)
			continue
		}
		articles = append(articles, item.Link)
	}

	return articles, nil
}

// an unreadable feed looks like an empty one to the planner, the kind
// underneath keeps the real reason
func feedError(feedUrl string, err error) error {
	te := &ToolError{
		Kind:    FK_Parse,
		Url:     feedUrl,
		Err:     err,
		Message: fmt.Sprintf("No entries found for URL: %s (%v)", feedUrl, err),
	}

	var httpErr gofeed.HTTPError
	var urlErr *url.Error
	switch {
	case errors.As(err, &httpErr):
		te.Kind = FK_HttpStatus
		te.StatusCode = httpErr.StatusCode
		te.Message = fmt.Sprintf("No entries found for URL: %s (status %d)", feedUrl, httpErr.StatusCode)
	case errors.As(err, &urlErr), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		te.Kind = FK_Transport
	}

	return te
}
