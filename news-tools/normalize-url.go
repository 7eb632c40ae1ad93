package news_tools

import (
	"regexp"
	"strings"
)

var nonPrintableASCII = regexp.MustCompile(`[^\x20-\x7E]`)
var whitespaces = regexp.MustCompile(`\s+`)

// optional scheme, dot separated labels ending with a 2-6 letters TLD, optional path
var hostLikeURL = regexp.MustCompile(`^(https?://)?(([A-Za-z0-9-]+\.)+[A-Za-z]{2,6})(/[A-Za-z0-9._~:/?#@!$&'()*+,;=-]*)?$`)

// NormalizeURL cleans up a URL coming from the planner and makes sure it looks
// like a host with an optional path. Scheme defaults to https.
func NormalizeURL(raw string) (string, error) {
	u := strings.TrimSpace(raw)
	u = strings.Trim(u, `"`)
	u = strings.Trim(u, `'`)
	u = nonPrintableASCII.ReplaceAllString(u, "")
	u = whitespaces.ReplaceAllString(u, "")

	if !hostLikeURL.MatchString(u) {
		return "", &ToolError{Kind: FK_Validation, Url: u}
	}

	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		u = "https://" + u
	}

	return u, nil
}
