package myoji

import (
	"fmt"
	"net/url"
	"strings"

	"namedic/pkg/errors"
)

const (
	// BaseURL is the base URL of the surname directory site
	BaseURL = "https://myoji.namedic.jp"

	// YomiListPath is the path prefix of the per-reading listing pages
	YomiListPath = "/sei/yomi_list/"
)

// YomiListURL constructs the listing URL for a reading prefix. Page 1 has
// no page parameter; later pages carry ?page=<n>.
func YomiListURL(baseURL, symbol string, page int) string {
	u := fmt.Sprintf("%s%s%s", strings.TrimSuffix(baseURL, "/"), YomiListPath, url.PathEscape(symbol))
	if page >= 2 {
		u = fmt.Sprintf("%s?page=%d", u, page)
	}
	return u
}

// InferPrefix extracts the reading prefix from a listing URL. It is the
// counterpart of YomiListURL: anything that is not a listing page fails with
// a context error so the caller can report it without attempting collection.
func InferPrefix(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.New(errors.ErrorTypeContext, "cannot parse %q as a URL: %v", rawURL, err)
	}

	if !strings.HasPrefix(u.Path, YomiListPath) {
		return "", errors.New(errors.ErrorTypeContext, "%q is not a reading listing URL (expected path under %s)", rawURL, YomiListPath)
	}

	symbol := strings.TrimPrefix(u.Path, YomiListPath)
	symbol = strings.TrimSuffix(symbol, "/")
	if symbol == "" || strings.Contains(symbol, "/") {
		return "", errors.New(errors.ErrorTypeContext, "%q does not name a single reading prefix", rawURL)
	}

	return symbol, nil
}
