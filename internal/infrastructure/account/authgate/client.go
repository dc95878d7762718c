package authgate

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/draftpool/confidence-pool/internal/domain/user"
	"github.com/draftpool/confidence-pool/internal/platform/cache"
	"github.com/draftpool/confidence-pool/internal/platform/logging"
	"github.com/draftpool/confidence-pool/internal/platform/resilience"
	"github.com/draftpool/confidence-pool/internal/usecase"
)

const defaultIntrospectPath = "/v1/tokens/introspect"

// Client verifies bearer tokens against the auth gate's introspection
// endpoint. Successful verifications are cached by token hash so hot request
// paths do not introspect on every call.
type Client struct {
	httpClient     *http.Client
	introspectURL  string
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	tokenCache     *cache.Store
	logger         *logging.Logger
}

type ClientConfig struct {
	BaseURL        string
	IntrospectPath string
	Timeout        time.Duration
	TokenCacheTTL  time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

func NewClient(cfg ClientConfig) *Client {
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.IntrospectPath == "" {
		cfg.IntrospectPath = defaultIntrospectPath
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	var tokenCache *cache.Store
	if cfg.TokenCacheTTL > 0 {
		tokenCache = cache.NewStore(cfg.TokenCacheTTL)
	}

	return &Client{
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		introspectURL:  buildURL(cfg.BaseURL, cfg.IntrospectPath),
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
		tokenCache:     tokenCache,
		logger:         cfg.Logger,
	}
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active bool   `json:"active"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	cacheKey := hashToken(token)
	if c.tokenCache != nil {
		if cached, ok := c.tokenCache.Get(ctx, cacheKey); ok {
			if principal, ok := cached.(user.Principal); ok {
				return principal, nil
			}
		}
	}

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "auth gate circuit breaker rejected request", "state", c.breaker.State())
			return user.Principal{}, fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, err)
		}
	}

	principal, err := c.introspect(ctx, token)
	if err != nil {
		return user.Principal{}, err
	}

	if c.tokenCache != nil {
		c.tokenCache.Set(ctx, cacheKey, principal)
	}

	return principal, nil
}

func (c *Client) introspect(ctx context.Context, token string) (user.Principal, error) {
	encoded, err := sonic.Marshal(introspectRequest{Token: token})
	if err != nil {
		c.breaker.RecordSuccess()
		return user.Principal{}, fmt.Errorf("marshal introspect request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.introspectURL, bytes.NewReader(encoded))
	if err != nil {
		c.breaker.RecordSuccess()
		return user.Principal{}, fmt.Errorf("create introspect request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.breaker.RecordFailure()
		return user.Principal{}, fmt.Errorf("%w: request auth gate introspection: %v", usecase.ErrDependencyUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		c.breaker.RecordSuccess()
		return user.Principal{}, fmt.Errorf("%w: introspection denied", usecase.ErrUnauthorized)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		c.breaker.RecordFailure()
		return user.Principal{}, fmt.Errorf("read introspect response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.breaker.RecordFailure()
		c.logger.WarnContext(ctx, "auth gate introspection non-200",
			"status_code", resp.StatusCode,
		)
		return user.Principal{}, fmt.Errorf("%w: auth gate introspection failed with status %d", usecase.ErrDependencyUnavailable, resp.StatusCode)
	}
	c.breaker.RecordSuccess()

	var decoded introspectResponse
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		return user.Principal{}, fmt.Errorf("unmarshal introspect response: %w", err)
	}

	if !decoded.Active {
		return user.Principal{}, fmt.Errorf("%w: inactive token", usecase.ErrUnauthorized)
	}
	if strings.TrimSpace(decoded.UserID) == "" {
		return user.Principal{}, fmt.Errorf("invalid introspect response: user_id is empty")
	}

	return user.Principal{
		UserID: decoded.UserID,
		Email:  decoded.Email,
	}, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func buildURL(baseURL, path string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	path = strings.TrimSpace(path)
	if path == "" {
		return baseURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return baseURL + path
}
