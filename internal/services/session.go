package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotify-backup/internal/shared"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://api.spotify.com/v1/"

	acceptHeader = "application/json; charset=utf-8"
	identityPath = "me"
)

// SessionOpts contains configuration for creating a [Session].
type SessionOpts struct {
	BaseURL    string       // API root, defaults to [DefaultBaseURL]
	Token      string       // Bearer token, required
	HTTPClient *http.Client // Base client whose transport carries the requests (default: http.DefaultClient)
	RateLimit  float64      // Uncached requests per second, 0 disables pacing
	Logger     *log.Logger
}

// Session is a single authenticated channel to the Spotify Web API.
//
// Successful responses are memoized per request path for the lifetime of the Session.
// A Session is not safe for concurrent use.
type Session struct {
	baseURL    *url.URL
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *log.Logger
	cache      map[string]Object
	requests   int
}

// NewSession creates a Session that authenticates every request with the given bearer token.
func NewSession(opts SessionOpts) (*Session, error) {
	if strings.TrimSpace(opts.Token) == "" {
		return nil, fmt.Errorf("%w: bearer token is empty", shared.ErrMissingCredentials)
	}

	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(opts.BaseURL, "/") {
		opts.BaseURL += "/"
	}

	baseURL, err := url.Parse(opts.BaseURL)
	if err != nil || baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("%w: invalid base URL %q", shared.ErrInvalidConfig, opts.BaseURL)
	}

	if opts.RateLimit < 0 {
		return nil, fmt.Errorf("%w: rate limit must not be negative", shared.ErrInvalidConfig)
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	session := &Session{
		baseURL:    baseURL,
		httpClient: bearerClient(opts.HTTPClient, opts.Token),
		logger:     opts.Logger,
		cache:      make(map[string]Object),
	}

	if opts.RateLimit > 0 {
		session.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	}

	return session, nil
}

// bearerClient copies base and wraps its transport so each request carries "Authorization: Bearer <token>".
func bearerClient(base *http.Client, token string) *http.Client {
	client := *base
	client.Transport = &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
		Base:   base.Transport,
	}
	return &client
}

// Get returns the decoded JSON object for path.
//
// Path is resolved against the base URL; absolute URLs (pagination cursors) are used as-is.
// Successful responses are cached by path and later calls return the cached value without a request.
// A non-2xx response is logged and yields an empty [Object] and a nil error, and is not cached.
func (s *Session) Get(ctx context.Context, path string) (Object, error) {
	if obj, ok := s.cache[path]; ok {
		return obj, nil
	}

	target, err := s.baseURL.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid path %q: %v", shared.ErrAPIRequest, path, err)
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)

	s.logger.Infof("Getting %s", target)
	s.requests++

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", shared.ErrAPIRequest, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.Errorf("%d - %s: %s", resp.StatusCode, reasonPhrase(resp), body)
		return Object{}, nil
	}

	var obj Object
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response from %s: %v", shared.ErrAPIRequest, target, err)
	}
	if obj == nil {
		obj = Object{}
	}

	s.cache[path] = obj
	return obj, nil
}

// GetAll fetches path and follows "next" cursors until exhausted, returning every page's items in order.
//
// When key is set the page envelope is the member at key (e.g. "artists" for followed artists).
// A failed page reads as an empty last page, so the result is truncated rather than an error.
func (s *Session) GetAll(ctx context.Context, path, key string) ([]json.RawMessage, error) {
	page, err := s.page(ctx, path, key)
	if err != nil {
		return nil, err
	}

	items := append([]json.RawMessage{}, page.Items()...)
	seen := map[string]bool{path: true}

	for next := page.Next(); next != ""; next = page.Next() {
		if seen[next] {
			s.logger.Warn("pagination cursor repeats, stopping", "next", next)
			break
		}
		seen[next] = true

		if page, err = s.page(ctx, next, key); err != nil {
			return nil, err
		}
		items = append(items, page.Items()...)
	}

	s.logger.Debug("pagination complete", "path", path, "items", len(items))
	return items, nil
}

func (s *Session) page(ctx context.Context, path, key string) (Object, error) {
	obj, err := s.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	if key != "" {
		return obj.Object(key), nil
	}
	return obj, nil
}

// Identity retrieves the authenticated user's profile.
//
// The profile is cached like any other request. A failed request yields an empty [User].
func (s *Session) Identity(ctx context.Context) (*User, error) {
	obj, err := s.Get(ctx, identityPath)
	if err != nil {
		return nil, err
	}

	var user User
	if err := obj.Decode(&user); err != nil {
		return nil, fmt.Errorf("%w: failed to decode user profile: %v", shared.ErrAPIRequest, err)
	}
	return &user, nil
}

// Requests returns the number of HTTP requests issued so far.
func (s *Session) Requests() int {
	return s.requests
}

// CacheSize returns the number of cached responses.
func (s *Session) CacheSize() int {
	return len(s.cache)
}

func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}
