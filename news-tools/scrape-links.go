package news_tools

import (
	"bytes"
	"context"
	"fmt"
	"github.com/PuerkitoBio/goquery"
	"net/http"
	"strings"
)

var ignoredLinkPrefixes = []string{"javascript:", "#", "mailto:"}

// ScrapeLinks returns up to MaxLinks links of the page that stay on the
// same domain, relative ones rewritten to absolute.
//
// The domain is the third "/" separated segment of pageUrl, so pageUrl is
// expected to look like scheme://host/...; anything shorter is rejected
// with FK_Validation. Scheme-relative hrefs ("//cdn.host/x") start with
// "/" and get the page domain prepended like any other relative link.
func (f *Fetcher) ScrapeLinks(ctx context.Context, pageUrl string) ([]string, error) {
	statusCode, body, err := f.download(ctx, pageUrl)
	if err != nil {
		return nil, err
	}

	if statusCode != http.StatusOK {
		return nil, &ToolError{Kind: FK_HttpStatus, Url: pageUrl, StatusCode: statusCode}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &ToolError{Kind: FK_Parse, Url: pageUrl, Err: err}
	}

	domain, err := domainOf(pageUrl)
	if err != nil {
		return nil, err
	}

	links := make([]string, 0, MaxLinks)
	doc.Find("a[href], link[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		link, _ := s.Attr("href")
		if link == "" || hasAnyPrefix(link, ignoredLinkPrefixes) {
			return true
		}

		if strings.HasPrefix(link, "/") || strings.Contains(link, domain) {
			if !strings.HasPrefix(link, "http") {
				link = fmt.Sprintf("https://%s%s", domain, link)
			}
			links = append(links, link)
		}

		return len(links) < MaxLinks
	})

	return links, nil
}

func domainOf(pageUrl string) (string, error) {
	segments := strings.Split(pageUrl, "/")
	if len(segments) < 3 {
		return "", &ToolError{Kind: FK_Validation, Url: pageUrl,
			Err: fmt.Errorf("cannot find domain in %q", pageUrl)}
	}

	return segments[2], nil
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}

	return false
}
