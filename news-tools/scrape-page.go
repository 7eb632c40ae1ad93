package news_tools

import (
	"bytes"
	"context"
	"fmt"
	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
	"net/http"
	"net/url"
	"strings"
)

// text of these elements is not a part of the visible page
var skippedElements = map[string]struct{}{
	"script":   {},
	"style":    {},
	"template": {},
}

// ScrapePageContent downloads the page and returns its text. The url is
// taken as is, no normalization happens here.
func (f *Fetcher) ScrapePageContent(ctx context.Context, pageUrl string) (string, error) {
	statusCode, body, err := f.download(ctx, pageUrl)
	if err != nil {
		return "", err
	}

	if statusCode != http.StatusOK {
		return "", &ToolError{Kind: FK_HttpStatus, Url: pageUrl, StatusCode: statusCode}
	}

	var text string
	switch f.pageFormat {
	case PF_Markdown:
		text, err = renderMarkdown(string(body))
	case PF_Readable:
		text, err = readableText(body, pageUrl)
	default:
		text, err = ExtractText(body)
	}
	if err != nil {
		return "", &ToolError{Kind: FK_Parse, Url: pageUrl, Err: err}
	}

	return text, nil
}

// ExtractText flattens an HTML document into its text nodes, one per line.
func ExtractText(rawHtml []byte) (string, error) {
	// with scripting on, noscript content would come back as one raw
	// text node, markup included
	root, err := html.ParseWithOptions(bytes.NewReader(rawHtml), html.ParseOptionEnableScripting(false))
	if err != nil {
		return "", fmt.Errorf("error parsing html: %v", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	texts := make([]string, 0)
	var collect func(s *goquery.Selection)
	collect = func(s *goquery.Selection) {
		s.Contents().Each(func(_ int, node *goquery.Selection) {
			name := goquery.NodeName(node)
			if name == "#text" {
				texts = append(texts, node.Nodes[0].Data)
				return
			}
			if _, skip := skippedElements[name]; skip || strings.HasPrefix(name, "#") {
				return
			}
			collect(node)
		})
	}
	collect(doc.Selection)

	return strings.Join(texts, "\n"), nil
}

func ignoreDataUrls(content string, selec *goquery.Selection, opt *md.Options) *string {
	src, _ := selec.Attr("src")
	if strings.HasPrefix(src, "data:") {
		emptyString := ""
		return &emptyString
	}

	return nil
}

func renderMarkdown(rawData string) (string, error) {
	convertor := md.NewConverter("", true, nil)
	convertor.AddRules(md.Rule{
		Filter:      []string{"img"},
		Replacement: ignoreDataUrls,
	})

	return convertor.ConvertString(rawData)
}

func readableText(rawHtml []byte, pageUrl string) (string, error) {
	parsedUrl, err := url.Parse(pageUrl)
	if err != nil {
		parsedUrl = nil
	}

	article, err := readability.FromReader(bytes.NewReader(rawHtml), parsedUrl)
	if err != nil {
		return "", fmt.Errorf("error extracting article: %v", err)
	}

	return article.TextContent, nil
}
