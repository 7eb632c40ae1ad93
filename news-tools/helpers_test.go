package news_tools

import (
	"github.com/rs/zerolog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

// redirectTransport sends every request to the test server, whatever host
// it was addressed to, and remembers what it has seen.
type redirectTransport struct {
	target *url.URL
	lock   sync.Mutex
	seen   []*http.Request
}

func (rt *redirectTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rt.lock.Lock()
	rt.seen = append(rt.seen, req)
	rt.lock.Unlock()

	redirected := req.Clone(req.Context())
	redirected.URL.Scheme = rt.target.Scheme
	redirected.URL.Host = rt.target.Host
	redirected.Host = rt.target.Host

	return http.DefaultTransport.RoundTrip(redirected)
}

func (rt *redirectTransport) lastRequest() *http.Request {
	rt.lock.Lock()
	defer rt.lock.Unlock()

	if len(rt.seen) == 0 {
		return nil
	}
	return rt.seen[len(rt.seen)-1]
}

func newTestFetcher(t *testing.T, handler http.HandlerFunc, opts ...FetcherOption) (*Fetcher, *redirectTransport) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	target, err := url.Parse(server.URL)
	if err != nil {
		t.Fatalf("error parsing test server url: %v", err)
	}

	rt := &redirectTransport{target: target}
	opts = append([]FetcherOption{WithHttpClient(&http.Client{Transport: rt})}, opts...)

	return NewFetcher(zerolog.Nop(), opts...), rt
}

// unreachableURL points to a server which is already gone
func unreachableURL(t *testing.T) string {
	t.Helper()

	server := httptest.NewServer(http.NotFoundHandler())
	u := server.URL
	server.Close()

	return u
}
