package news_tools

import (
	"context"
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/logrusorgru/aurora"
	"github.com/rs/zerolog"
	"io"
	"net/http"
	"time"
)

const DefaultUserAgent = "Mozilla/5.0"
const MaxArticles = 5
const MaxLinks = 5
const NoLink = "No Link"

type PageFormat string

const (
	PF_Text     PageFormat = "text"
	PF_Markdown PageFormat = "markdown"
	PF_Readable PageFormat = "readable"
)

// Fetcher backs the news tools. It keeps no state between calls, so
// a single instance can be shared by any number of callers.
type Fetcher struct {
	client     *http.Client
	userAgent  string
	pageFormat PageFormat
	lg         zerolog.Logger
}

type FetcherOption func(f *Fetcher)

func WithHttpClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.client = client
	}
}

func WithUserAgent(userAgent string) FetcherOption {
	return func(f *Fetcher) {
		if userAgent != "" {
			f.userAgent = userAgent
		}
	}
}

func WithPageFormat(format PageFormat) FetcherOption {
	return func(f *Fetcher) {
		if format != "" {
			f.pageFormat = format
		}
	}
}

func NewFetcher(lg zerolog.Logger, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client:     http.DefaultClient,
		userAgent:  DefaultUserAgent,
		pageFormat: PF_Text,
		lg:         lg,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// download issues a single GET, no retries. Transport problems come back
// as FK_Transport, the status code is left to the caller to judge.
func (f *Fetcher) download(ctx context.Context, u string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, nil, &ToolError{Kind: FK_Transport, Url: u, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)

	ts := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return 0, nil, &ToolError{Kind: FK_Transport, Url: u, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &ToolError{Kind: FK_Transport, Url: u,
			Err: fmt.Errorf("error reading body: %v", err)}
	}

	f.lg.Info().Msgf("Downloaded %s [%d, %s] in %s",
		aurora.Cyan(noLongerThen(u, 45)),
		resp.StatusCode,
		humanize.Bytes(uint64(len(body))),
		aurora.BrightCyan(time.Since(ts)))

	return resp.StatusCode, body, nil
}

func noLongerThen(u string, i int) string {
	if len(u) > i {
		return u[:i] + "..."
	}

	return u
}
