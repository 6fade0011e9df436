package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fivetwenty-io/mollie-client/internal/auth"
	"github.com/fivetwenty-io/mollie-client/internal/constants"
	"github.com/fivetwenty-io/mollie-client/pkg/mollie"
)

const testmodeField = "testmode"

// Client turns mollie.Request values into HTTP calls. It implements
// mollie.Connector.
type Client struct {
	baseURL      *url.URL
	tokenManager auth.TokenManager
	adapter      Adapter
	userAgent    string
	logger       mollie.Logger
	debug        bool
	testmode     bool
	idempotency  bool
	newKey       func() string
	interceptors *mollie.InterceptorChain
	cache        *mollie.CacheManager
	cachePolicy  *mollie.CachingPolicy
}

// Option configures a Client.
type Option func(*Client)

// WithAdapter sets the transport adapter.
func WithAdapter(adapter Adapter) Option {
	return func(c *Client) {
		c.adapter = adapter
	}
}

// WithRetryConfig uses the retrying adapter with the given limits.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.adapter = NewDefaultRetryableAdapter(Options{
			RetryMax:     maxRetries,
			RetryWaitMin: waitMin,
			RetryWaitMax: waitMax,
			Logger:       c.logger,
		})
	}
}

// WithLogger sets the logger.
func WithLogger(logger mollie.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug logs every request and response, and switches on debugging of
// the adapter so errors keep the outgoing request.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTestmode sends testmode=true with every relative request.
func WithTestmode(testmode bool) Option {
	return func(c *Client) {
		c.testmode = testmode
	}
}

// WithIdempotency toggles the Idempotency-Key header.
func WithIdempotency(enabled bool) Option {
	return func(c *Client) {
		c.idempotency = enabled
	}
}

// WithIdempotencyKeyGenerator replaces the uuid generator.
func WithIdempotencyKeyGenerator(generate func() string) Option {
	return func(c *Client) {
		c.newKey = generate
	}
}

// WithInterceptors sets the interceptor chain.
func WithInterceptors(chain *mollie.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// WithCache caches GET responses selected by policy.
func WithCache(manager *mollie.CacheManager, policy *mollie.CachingPolicy) Option {
	return func(c *Client) {
		c.cache = manager
		c.cachePolicy = policy
	}
}

// NewClient creates a connector for baseURL. Without WithAdapter the default
// adapter for this build is used.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	parsed, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
	if err != nil {
		parsed = &url.URL{Scheme: "https", Host: "api.mollie.com", Path: "/v2/"}
	}

	client := &Client{
		baseURL:      parsed,
		tokenManager: tokenManager,
		userAgent:    constants.DefaultUserAgent + "/" + constants.ClientVersion,
		idempotency:  true,
		newKey:       uuid.NewString,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.adapter == nil {
		client.adapter = NewPicker(Options{Logger: client.logger}).defaultAdapter()
	}

	if debuggable, ok := client.adapter.(Debuggable); ok && client.debug {
		debuggable.EnableDebugging()
	}

	if client.cache != nil && client.cachePolicy == nil {
		client.cachePolicy = mollie.DefaultCachingPolicy()
	}

	return client
}

// Adapter returns the transport adapter.
func (c *Client) Adapter() Adapter {
	return c.adapter
}

// BaseURL returns the API root every relative path is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Send implements mollie.Connector. The request is cloned before
// interceptors see it, so the caller's value is never modified. On an API
// error both the response and a *mollie.APIError are returned.
func (c *Client) Send(ctx context.Context, req *mollie.Request) (*mollie.Response, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", mollie.ErrInvalidArgument)
	}

	req = req.Clone()

	err := c.interceptors.ExecuteRequestInterceptors(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("request interceptor: %w", err)
	}

	resp, sendErr := c.send(ctx, req)

	err = c.interceptors.ExecuteResponseInterceptors(ctx, req, resp, sendErr)
	if sendErr != nil {
		return resp, sendErr
	}

	if err != nil {
		return resp, fmt.Errorf("response interceptor: %w", err)
	}

	return resp, nil
}

func (c *Client) send(ctx context.Context, req *mollie.Request) (*mollie.Response, error) {
	cacheKey := c.cacheKey(req)
	if cacheKey != "" {
		body, err := c.cache.Get(ctx, cacheKey)
		if err == nil {
			c.log("Cache hit", map[string]interface{}{"key": cacheKey})

			return mollie.NewResponse(http.StatusOK, http.Header{}, body), nil
		}
	}

	pending, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	c.log("HTTP Request", map[string]interface{}{
		"method": pending.HTTP.Method,
		"url":    pending.HTTP.URL.String(),
	})

	resp, err := c.adapter.SendRequest(ctx, pending)
	if err != nil {
		return nil, err
	}

	c.log("HTTP Response", map[string]interface{}{
		"status": resp.StatusCode,
		"size":   len(resp.Body),
	})

	if resp.Failed() {
		apiErr := mollie.ParseAPIError(resp.StatusCode, resp.Body)
		if IsDebugging(c.adapter) {
			apiErr.Request = pending.HTTP
		}

		return resp, apiErr
	}

	c.store(ctx, req, cacheKey, resp)

	return resp, nil
}

func (c *Client) log(msg string, fields map[string]interface{}) {
	if c.debug && c.logger != nil {
		c.logger.Debug(msg, fields)
	}
}

func (c *Client) cacheKey(req *mollie.Request) string {
	if c.cache == nil || req.Method != http.MethodGet || req.IsAbsolute() {
		return ""
	}

	if !c.cachePolicy.ShouldCache(req.Method, req.Path, http.StatusOK) {
		return ""
	}

	params := make(map[string]string, len(req.Query))
	for key, values := range req.Query {
		params[key] = strings.Join(values, ",")
	}

	return c.cache.GetCacheKey(req.Method, req.Path, params)
}

func (c *Client) store(ctx context.Context, req *mollie.Request, cacheKey string, resp *mollie.Response) {
	if c.cache == nil {
		return
	}

	if req.Method != http.MethodGet {
		c.cache.InvalidatePath(ctx, req.Path)

		return
	}

	if cacheKey == "" || !c.cachePolicy.ShouldCache(req.Method, req.Path, resp.StatusCode) {
		return
	}

	ttl := c.cachePolicy.TTL
	if ttl <= 0 {
		ttl = constants.DefaultCacheTTL
	}

	err := c.cache.SetWithETag(ctx, cacheKey, resp.Body, resp.Headers.Get("ETag"), ttl)
	if err != nil && c.logger != nil {
		c.logger.Warn("caching response failed", map[string]interface{}{"key": cacheKey, "error": err.Error()})
	}
}

func (c *Client) buildRequest(ctx context.Context, req *mollie.Request) (*PendingRequest, error) {
	target, err := c.resolve(req)
	if err != nil {
		return nil, err
	}

	body := req.Body
	extra := url.Values{}

	for key, values := range req.Query {
		for _, value := range values {
			extra.Add(key, value)
		}
	}

	if c.testmode && !req.IsAbsolute() {
		switch req.Method {
		case http.MethodGet, http.MethodDelete:
			extra.Set(testmodeField, constants.BooleanTrue)
		default:
			body, err = withTestmode(body)
			if err != nil {
				return nil, err
			}
		}
	}

	// hrefs from _links are sent verbatim unless parameters are added
	if len(extra) > 0 {
		query := target.Query()
		for key, values := range extra {
			query[key] = values
		}

		target.RawQuery = query.Encode()
	}

	var encoded []byte
	if body != nil {
		encoded, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	err = c.setHeaders(ctx, httpReq, req, encoded != nil)
	if err != nil {
		return nil, err
	}

	return &PendingRequest{Request: req, HTTP: httpReq, Body: encoded}, nil
}

func (c *Client) resolve(req *mollie.Request) (*url.URL, error) {
	if req.IsAbsolute() {
		target, err := url.Parse(req.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: parsing href %q: %w", mollie.ErrInvalidArgument, req.Path, err)
		}

		return target, nil
	}

	relative, err := url.Parse(strings.TrimPrefix(req.Path, "/"))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing path %q: %w", mollie.ErrInvalidArgument, req.Path, err)
	}

	return c.baseURL.ResolveReference(relative), nil
}

func (c *Client) setHeaders(ctx context.Context, httpReq *http.Request, req *mollie.Request, hasBody bool) error {
	httpReq.Header.Set(constants.HeaderAccept, "application/json")
	httpReq.Header.Set(constants.HeaderUserAgent, c.userAgent)

	if hasBody {
		httpReq.Header.Set(constants.HeaderContentType, "application/json")
	}

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return fmt.Errorf("getting token: %w", err)
		}

		httpReq.Header.Set(constants.HeaderAuthorization, "Bearer "+token)
	}

	if c.idempotency && mutates(req.Method) && req.Headers.Get(constants.HeaderIdempotencyKey) == "" {
		httpReq.Header.Set(constants.HeaderIdempotencyKey, c.newKey())
	}

	for key, values := range req.Headers {
		httpReq.Header.Del(key)

		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	return nil
}

func mutates(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

func withTestmode(body interface{}) (interface{}, error) {
	switch payload := body.(type) {
	case nil:
		return mollie.Payload{testmodeField: true}, nil
	case mollie.Payload:
		return withField(payload, testmodeField, true), nil
	case map[string]interface{}:
		return withField(payload, testmodeField, true), nil
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	var fields map[string]interface{}
	if json.Unmarshal(encoded, &fields) != nil || fields == nil {
		return body, nil
	}

	fields[testmodeField] = true

	return fields, nil
}

func withField(fields map[string]interface{}, key string, value interface{}) mollie.Payload {
	copied := make(mollie.Payload, len(fields)+1)
	for k, v := range fields {
		copied[k] = v
	}

	copied[key] = value

	return copied
}
