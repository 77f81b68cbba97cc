package juvenes

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// MenuFetcher retrieves one day's menu. *Client implements it; the app layer
// accepts any implementation.
type MenuFetcher interface {
	FetchMenu(ctx context.Context, query MenuQuery) (*Menu, error)
}

// Ensure Client implements MenuFetcher at compile time.
var _ MenuFetcher = (*Client)(nil)

// DefaultServiceURL is the GetMenuByWeekday endpoint.
const DefaultServiceURL = "http://www.juvenes.fi/DesktopModules/Talents.LunchMenu/LunchMenuServices.asmx/GetMenuByWeekday"

const defaultUserAgent = "ruoka/0.1"

// Client talks to the lunch menu service.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
}

// NewClient builds a Client for serviceURL. A zero timeout disables the
// request deadline.
func NewClient(serviceURL string, timeout time.Duration) (*Client, error) {
	endpoint, err := parseEndpoint(serviceURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		endpoint: endpoint,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchMenu performs a single GET for query and unwraps the payload. A nil
// menu with a nil error means the service has nothing for that day.
func (c *Client) FetchMenu(ctx context.Context, query MenuQuery) (*Menu, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.MenuURL(query), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("menu service returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return Unwrap(body)
}

// MenuURL returns the request URL for query.
func (c *Client) MenuURL(query MenuQuery) string {
	values := url.Values{}
	values.Set("KitchenId", strconv.Itoa(query.KitchenID))
	values.Set("MenuTypeId", strconv.Itoa(query.MenuTypeID))
	values.Set("Week", strconv.Itoa(query.Week))
	values.Set("Weekday", strconv.Itoa(query.Weekday))
	// the service expects the code in single quotes
	values.Set("lang", "'"+strings.TrimSpace(query.Language)+"'")
	values.Set("format", "json")

	u := *c.endpoint
	u.RawQuery = values.Encode()
	return u.String()
}

func parseEndpoint(serviceURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(serviceURL)
	if trimmed == "" {
		trimmed = DefaultServiceURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse service_url %q: %w", serviceURL, err)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
