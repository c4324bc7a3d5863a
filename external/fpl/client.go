package fpl

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fpl-league-api/internal/platform/logging"
	"github.com/riskibarqy/fpl-league-api/internal/platform/resilience"
	"github.com/riskibarqy/fpl-league-api/internal/usecase"
	"github.com/valyala/fasthttp"
)

const (
	DefaultBaseURL   = "https://fantasy.premierleague.com/api"
	DefaultUserAgent = "Mozilla/5.0 (compatible; fpl-league-api/1.0)"

	defaultMaxAttempts    = 2
	defaultConnectTimeout = 5 * time.Second
	defaultReadTimeout    = 10 * time.Second
	defaultWriteTimeout   = 5 * time.Second
	maxResponseBodySize   = 16 << 20
)

var errFPLTransient = crerr.New("fpl transient failure")

type ClientConfig struct {
	BaseURL        string
	UserAgent      string
	Headers        map[string]string
	MaxAttempts    int
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	Jitter         JitterSource
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads the public FPL API over fasthttp. Identical concurrent GETs
// share one upstream round trip.
type Client struct {
	http           *fasthttp.Client
	baseURL        string
	headers        map[string]string
	maxAttempts    int
	backoff        func(attempt int) time.Duration
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.Flight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = defaultMaxAttempts
	}
	connectTimeout := durationOr(cfg.ConnectTimeout, defaultConnectTimeout)

	headers := make(map[string]string, len(cfg.Headers))
	for key, value := range cfg.Headers {
		if key = strings.TrimSpace(key); key != "" {
			headers[key] = strings.TrimSpace(value)
		}
	}

	jitter := cfg.Jitter
	breakerCfg := cfg.CircuitBreaker.Normalize()

	return &Client{
		http: &fasthttp.Client{
			Name:         userAgent,
			ReadTimeout:  durationOr(cfg.ReadTimeout, defaultReadTimeout),
			WriteTimeout: durationOr(cfg.WriteTimeout, defaultWriteTimeout),
			Dial: func(addr string) (net.Conn, error) {
				return fasthttp.DialTimeout(addr, connectTimeout)
			},
			MaxResponseBodySize: maxResponseBodySize,
		},
		baseURL:     baseURL,
		headers:     headers,
		maxAttempts: maxAttempts,
		backoff: func(attempt int) time.Duration {
			return BackoffDelay(attempt, jitter)
		},
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// FetchJSON GETs baseURL+path and decodes the body into target.
func (c *Client) FetchJSON(ctx context.Context, path string, target any) error {
	raw, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrapf(err, "decode fpl payload path=%s", path)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	fullURL := c.baseURL + path

	out, err, shared := c.flight.Do(ctx, fullURL, func() (any, error) {
		return c.guardedRequest(ctx, fullURL)
	})
	if err != nil && shared && isContextError(err) && ctx.Err() == nil {
		// The caller that owned the shared request gave up; try on our own.
		out, err = c.guardedRequest(ctx, fullURL)
	}
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}
	return raw, nil
}

func (c *Client) guardedRequest(ctx context.Context, fullURL string) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "fpl circuit breaker rejected request", "url", fullURL, "state", c.breaker.State())
			return nil, fmt.Errorf("%w: fpl api is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	raw, err := c.executeRequest(ctx, fullURL)
	if c.circuitEnabled {
		switch {
		case err == nil:
			c.breaker.RecordSuccess()
		case crerr.Is(err, errFPLTransient):
			c.breaker.RecordFailure()
		case isContextError(err):
			c.breaker.Release()
		default:
			c.breaker.RecordSuccess()
		}
	}
	return raw, err
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			if err := sleepContext(ctx, c.backoff(attempt-1)); err != nil {
				return nil, err
			}
		}

		raw, err := c.do(ctx, fullURL)
		if err == nil {
			return raw, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		lastErr = err
		c.logger.DebugContext(ctx, "fpl request attempt failed",
			"url", fullURL,
			"attempt", attempt,
			"max_attempts", c.maxAttempts,
			"error", err,
		)
	}

	c.logger.WarnContext(ctx, "fpl request failed", "url", fullURL, "attempts", c.maxAttempts, "error", lastErr)
	return nil, lastErr
}

type roundTrip struct {
	status int
	body   []byte
	err    error
}

// do runs one GET. The fasthttp call owns its request and response objects in
// a goroutine so the caller can return as soon as ctx is done.
func (c *Client) do(ctx context.Context, fullURL string) ([]byte, error) {
	done := make(chan roundTrip, 1)
	go func() {
		req := fasthttp.AcquireRequest()
		resp := fasthttp.AcquireResponse()
		defer fasthttp.ReleaseRequest(req)
		defer fasthttp.ReleaseResponse(resp)

		req.SetRequestURI(fullURL)
		req.Header.SetMethod(fasthttp.MethodGet)
		req.Header.Set("Accept", "application/json")
		for key, value := range c.headers {
			req.Header.Set(key, value)
		}

		var err error
		if deadline, ok := ctx.Deadline(); ok {
			err = c.http.DoDeadline(req, resp, deadline)
		} else {
			err = c.http.Do(req, resp)
		}
		if err != nil {
			done <- roundTrip{err: err}
			return
		}
		done <- roundTrip{
			status: resp.StatusCode(),
			body:   append([]byte(nil), resp.Body()...),
		}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		if res.err != nil {
			return nil, crerr.Mark(&usecase.NetworkError{Op: "GET " + fullURL, Err: res.err}, errFPLTransient)
		}
		if res.status < 200 || res.status > 299 {
			upstream := &usecase.UpstreamError{StatusCode: res.status, Message: abbreviateBody(res.body)}
			if isTransientStatus(res.status) {
				return nil, crerr.Mark(upstream, errFPLTransient)
			}
			return nil, upstream
		}
		return res.body, nil
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func isContextError(err error) bool {
	return stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded)
}

// isTransientStatus reports statuses that count against the circuit breaker.
// Retries do not depend on it.
func isTransientStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func durationOr(value, fallback time.Duration) time.Duration {
	if value > 0 {
		return value
	}
	return fallback
}
