package content

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"clubsite/config"
	"clubsite/monitoring"
	"clubsite/status"
	"clubsite/utils"
)

// Client queries the hosted content source over its HTTP query API. All
// reads go through the circuit breaker and, when configured, a redis
// read-through cache of the raw query results.
type Client struct {
	projectID  string
	dataset    string
	apiVersion string
	token      string
	useCDN     bool

	// baseURL overrides the derived API endpoint (local emulators, tests).
	baseURL string

	http    *http.Client
	breaker *utils.CircuitBreaker
	cache   queryCache
}

// queryCache is the slice of utils.Cache the client needs.
type queryCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte)
}

func NewClient(cfg *config.Config, cache *utils.Cache) *Client {
	return &Client{
		projectID:  cfg.ContentProjectID,
		dataset:    cfg.ContentDataset,
		apiVersion: cfg.ContentAPIVersion,
		token:      cfg.ContentToken,
		useCDN:     cfg.ContentUseCDN,
		baseURL:    cfg.ContentBaseURL,
		http:       newHTTPClient(),
		breaker:    utils.NewCircuitBreaker("content"),
		cache:      cache,
	}
}

// newHTTPClient configures connection-level timeouts only. Query calls carry
// no overall deadline: a slow content source keeps the caller in a loading
// state rather than producing spurious failures.
func newHTTPClient() *http.Client {
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 60 * time.Second}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Transport: tr}
}

func (c *Client) endpoint() string {
	if c.baseURL != "" {
		return fmt.Sprintf("%s/v%s/data/query/%s", c.baseURL, c.apiVersion, c.dataset)
	}
	host := fmt.Sprintf("%s.api.sanity.io", c.projectID)
	if c.useCDN {
		host = fmt.Sprintf("%s.apicdn.sanity.io", c.projectID)
	}
	return fmt.Sprintf("https://%s/v%s/data/query/%s", host, c.apiVersion, c.dataset)
}

type queryEnvelope struct {
	Result json.RawMessage `json:"result"`
}

// Query runs a named query against the content source and returns the raw
// result document. name is only used for metrics and cache keys; params are
// bound to $-prefixed variables in the query string.
func (c *Client) Query(ctx context.Context, name, query string, params map[string]any) (json.RawMessage, error) {
	key := cacheKey(name, query, params)

	if data, ok := c.cache.Get(ctx, key); ok {
		monitoring.RecordCacheHit()
		return json.RawMessage(data), nil
	}
	monitoring.RecordCacheMiss()

	start := time.Now()
	result, err := c.breaker.Execute(ctx, func() (any, error) {
		return c.fetch(ctx, query, params)
	})
	if err != nil {
		monitoring.RecordContentQuery(name, "error", time.Since(start))
		return nil, fmt.Errorf("%w: %s: %v", status.ErrContentUnavailable, name, err)
	}
	monitoring.RecordContentQuery(name, "ok", time.Since(start))

	raw := result.(json.RawMessage)
	// An envelope without a result yields nil; caching it would turn later
	// hits into empty values that decode differently from a fresh miss.
	if len(raw) > 0 {
		c.cache.Set(ctx, key, raw)
	}
	return raw, nil
}

func (c *Client) fetch(ctx context.Context, query string, params map[string]any) (json.RawMessage, error) {
	values := url.Values{}
	values.Set("query", query)
	for k, v := range params {
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode param %s: %w", k, err)
		}
		values.Set("$"+k, string(encoded))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint()+"?"+values.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("content source returned %d: %s", resp.StatusCode, truncate(body, 200))
	}

	var envelope queryEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode query response: %w", err)
	}
	return envelope.Result, nil
}

// Ping verifies connectivity with a one-document probe query, bypassing the
// cache so a stale entry cannot mask a dead source.
func (c *Client) Ping(ctx context.Context) error {
	start := time.Now()
	_, err := c.breaker.Execute(ctx, func() (any, error) {
		return c.fetch(ctx, QueryProbe, nil)
	})
	if err != nil {
		monitoring.RecordContentQuery("ping", "error", time.Since(start))
		return fmt.Errorf("%w: %v", status.ErrContentUnavailable, err)
	}
	monitoring.RecordContentQuery("ping", "ok", time.Since(start))
	return nil
}

func cacheKey(name, query string, params map[string]any) string {
	h := sha1.New()
	io.WriteString(h, query)
	if len(params) > 0 {
		encoded, _ := json.Marshal(params)
		h.Write(encoded)
	}
	return fmt.Sprintf("content:%s:%s", name, hex.EncodeToString(h.Sum(nil)))
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
