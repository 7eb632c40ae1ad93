package news_tools

import (
	"context"
	"fmt"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"strings"
	"testing"
)

func anchorsPage(hrefs ...string) string {
	sb := strings.Builder{}
	sb.WriteString("<html><body>")
	for _, href := range hrefs {
		sb.WriteString(fmt.Sprintf(`<a href="%s">link</a>`, href))
	}
	sb.WriteString("</body></html>")

	return sb.String()
}

func TestScrapeLinksFiltersAndRewrites(t *testing.T) {
	page := anchorsPage("/a", "https://other.com/b", "https://example.com/c", "javascript:void(0)", "#frag")
	fetcher, _ := newTestFetcher(t, servePage(http.StatusOK, page))

	links, err := fetcher.ScrapeLinks(context.Background(), "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/a", "https://example.com/c"}, links)
}

func TestScrapeLinksCapsAtFive(t *testing.T) {
	page := anchorsPage("/1", "/2", "mailto:desk@example.com", "/3", "/4", "/5", "/6", "/7")
	fetcher, _ := newTestFetcher(t, servePage(http.StatusOK, page))

	links, err := fetcher.ScrapeLinks(context.Background(), "https://example.com/news")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://example.com/1",
		"https://example.com/2",
		"https://example.com/3",
		"https://example.com/4",
		"https://example.com/5",
	}, links)
}

func TestScrapeLinksIncludesLinkTagsInDocumentOrder(t *testing.T) {
	page := `<html><head><link rel="alternate" href="/feed.xml"><link rel="stylesheet"></head>
<body><a>no href</a><a href="">empty</a><a href="http://example.com/plain">plain</a></body></html>`
	fetcher, _ := newTestFetcher(t, servePage(http.StatusOK, page))

	links, err := fetcher.ScrapeLinks(context.Background(), "https://example.com/")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/feed.xml", "http://example.com/plain"}, links)
}

func TestScrapeLinksSchemeRelativeQuirk(t *testing.T) {
	fetcher, _ := newTestFetcher(t, servePage(http.StatusOK, anchorsPage("//cdn.other.com/x")))

	links, err := fetcher.ScrapeLinks(context.Background(), "https://example.com/")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com//cdn.other.com/x"}, links)
}

func TestScrapeLinksNon200(t *testing.T) {
	fetcher, _ := newTestFetcher(t, servePage(http.StatusInternalServerError, anchorsPage("/a")))

	links, err := fetcher.ScrapeLinks(context.Background(), "https://example.com")
	require.Error(t, err)
	assert.Empty(t, links)
	assert.Equal(t, FK_HttpStatus, KindOf(err))
}

func TestScrapeLinksUnreachable(t *testing.T) {
	fetcher := NewFetcher(zerolog.Nop())

	var links []string
	var err error
	assert.NotPanics(t, func() {
		links, err = fetcher.ScrapeLinks(context.Background(), unreachableURL(t))
	})
	assert.Empty(t, links)
	assert.Equal(t, FK_Transport, KindOf(err))
}

func TestDomainOf(t *testing.T) {
	domain, err := domainOf("https://www.theguardian.com/world/rss")
	require.NoError(t, err)
	assert.Equal(t, "www.theguardian.com", domain)

	_, err = domainOf("example.com")
	require.Error(t, err)
	assert.Equal(t, FK_Validation, KindOf(err))
}
