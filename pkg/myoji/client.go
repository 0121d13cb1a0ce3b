package myoji

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"namedic/pkg/errors"
	"namedic/pkg/logger"
	"namedic/pkg/retry"
)

// Client fetches listing pages from the directory site.
type Client struct {
	httpClient *http.Client
	headers    map[string]string
	retryCfg   *retry.Config
	logger     logger.Logger
}

// NewClient creates a site client with the given timeout. Retries are
// disabled unless a retry configuration is set via SetRetryConfig.
func NewClient(timeout time.Duration, userAgent string, log logger.Logger) *Client {
	if log == nil {
		log = logger.GetLogger()
	}
	if userAgent == "" {
		userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36"
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		headers: map[string]string{
			"User-Agent":      userAgent,
			"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
			"Accept-Language": "ja,en-US;q=0.9,en;q=0.8",
		},
		logger: log,
	}
}

// SetRetryConfig enables bounded retry of transient fetch failures. This is
// an opt-in reliability enhancement; the stock behavior is one attempt.
func (c *Client) SetRetryConfig(cfg *retry.Config) {
	c.retryCfg = cfg
}

// SetHeader sets a custom request header.
func (c *Client) SetHeader(key, value string) {
	c.headers[key] = value
}

// GetHTML fetches a page and returns its body as text. Failures come back
// as typed errors so callers can distinguish transport faults from bad
// responses.
func (c *Client) GetHTML(url string) (string, error) {
	if c.retryCfg != nil && c.retryCfg.MaxAttempts > 1 {
		return retry.DoWithResult(func() (string, error) {
			return c.getHTML(url)
		}, c.retryCfg)
	}
	return c.getHTML(url)
}

func (c *Client) getHTML(url string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", errors.New(errors.ErrorTypeUnknown, "failed to create request: %v", err)
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	c.logger.DebugWithFields("sending HTTP request", map[string]interface{}{
		"method": req.Method,
		"url":    url,
	})

	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.ErrorWithFields("HTTP request failed", map[string]interface{}{
			"url":      url,
			"error":    err.Error(),
			"duration": duration,
		})
		return "", errors.New(errors.ErrorTypeNetwork, "network error: %v", err)
	}
	defer resp.Body.Close()

	c.logger.DebugWithFields("HTTP request completed", map[string]interface{}{
		"url":      url,
		"status":   resp.StatusCode,
		"duration": duration,
	})

	if resp.StatusCode != http.StatusOK {
		return "", statusError(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.New(errors.ErrorTypeNetwork, "failed to read response body: %v", err)
	}

	return string(body), nil
}

func statusError(code int) error {
	msg := fmt.Sprintf("server returned status %d", code)
	switch {
	case code == http.StatusNotFound:
		return errors.NewHTTP(errors.ErrorTypeNotFound, code, "%s", msg)
	case code >= 500 || code == http.StatusTooManyRequests:
		return errors.NewHTTP(errors.ErrorTypeServerError, code, "%s", msg)
	default:
		return errors.NewHTTP(errors.ErrorTypeNetwork, code, "%s", msg)
	}
}
