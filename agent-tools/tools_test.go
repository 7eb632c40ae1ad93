package agent_tools

import (
	"context"
	news_tools "github.com/d0rc/news-agent/news-tools"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testTools(t *testing.T, handler http.HandlerFunc) ([]AgentTool, string) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	fetcher := news_tools.NewFetcher(zerolog.Nop(), news_tools.WithHttpClient(server.Client()))
	return NewsTools(fetcher, zerolog.Nop()), server.URL
}

func TestToolsEnumeration(t *testing.T) {
	tools, _ := testTools(t, http.NotFound)

	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name())
		assert.NotEmpty(t, tool.ContextDescription())
	}
	assert.Equal(t, []string{"FetchNews", "ScrapePageContent", "ScrapeLinks"}, names)

	selection := GetToolsSelection(tools, []string{"ScrapeLinks"})
	assert.Len(t, selection, 2)
	assert.Nil(t, FindTool(selection, "ScrapeLinks"))
	assert.NotNil(t, FindTool(tools, " scrapelinks "))

	description := GetContextDescription(tools)
	assert.True(t, strings.HasPrefix(description, "Available tools:\nFetchNews - Fetches top 5 articles"))
	assert.Contains(t, description, "ScrapePageContent - Scrapes and returns the content of a webpage. Input: URL as a string;\n")
	assert.True(t, strings.HasSuffix(description, "Input: URL as a string.\n\n"))
}

func TestFailuresAtToolBoundary(t *testing.T) {
	tools, serverUrl := testTools(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	ctx := context.Background()

	assert.Equal(t, "Invalid URL: notaurl", FindTool(tools, "FetchNews").Run(ctx, "not a url"))

	pageResult := FindTool(tools, "ScrapePageContent").Run(ctx, serverUrl+"/missing")
	assert.Equal(t, "Failed to retrieve URL: "+serverUrl+"/missing (status 404)", pageResult)

	assert.Equal(t, "[]", FindTool(tools, "ScrapeLinks").Run(ctx, serverUrl+"/missing"))
	assert.Equal(t, "[]", FindTool(tools, "ScrapeLinks").Run(ctx, "no-scheme"))
}

func TestScrapeLinksRendersJSONList(t *testing.T) {
	tools, serverUrl := testTools(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><a href="/a">a</a><a href="/b">b</a></body></html>`))
	})

	result := FindTool(tools, "ScrapeLinks").Run(context.Background(), serverUrl)
	host := strings.TrimPrefix(serverUrl, "http://")
	require.Equal(t, `["https://`+host+`/a","https://`+host+`/b"]`, result)
}

func TestLinksKeepQueryStrings(t *testing.T) {
	tools, serverUrl := testTools(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><a href="/news/1?at_medium=RSS&amp;at_campaign=rss">1</a></body></html>`))
	})

	result := FindTool(tools, "ScrapeLinks").Run(context.Background(), serverUrl)
	host := strings.TrimPrefix(serverUrl, "http://")
	assert.Equal(t, `["https://`+host+`/news/1?at_medium=RSS&at_campaign=rss"]`, result)
	assert.NotContains(t, result, `\u0026`)

	assert.Equal(t, `["https://www.bbc.co.uk/news/1?at_medium=RSS&at_campaign=rss","No Link"]`,
		renderLinks([]string{"https://www.bbc.co.uk/news/1?at_medium=RSS&at_campaign=rss", news_tools.NoLink}))
	assert.Equal(t, "[]", renderLinks(nil))
}

func TestScrapePageContentRendersText(t *testing.T) {
	tools, serverUrl := testTools(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>hello</p></body></html>`))
	})

	assert.Equal(t, "hello", FindTool(tools, "ScrapePageContent").Run(context.Background(), serverUrl))
}
