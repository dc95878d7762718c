// Package draftwire pulls prospect lists and published mock drafts from the
// DraftWire feed API.
package draftwire

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"
	"github.com/valyala/fasthttp"

	"github.com/draftpool/confidence-pool/internal/domain/mockdraft"
	"github.com/draftpool/confidence-pool/internal/domain/player"
	"github.com/draftpool/confidence-pool/internal/platform/logging"
	"github.com/draftpool/confidence-pool/internal/platform/resilience"
)

const (
	defaultBaseURL       = "https://api.draftwire.example.com/v1"
	defaultTimeout       = 15 * time.Second
	defaultBoardFetchers = 4
)

var errDraftWireTransient = crerr.New("draftwire transient failure")

type ClientConfig struct {
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	BoardFetchers  int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *fasthttp.Client
	baseURL        string
	token          string
	timeout        time.Duration
	maxRetries     int
	boardFetchers  int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	fetchers := cfg.BoardFetchers
	if fetchers <= 0 {
		fetchers = defaultBoardFetchers
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient: &fasthttp.Client{
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxConnsPerHost:     64,
			MaxIdleConnDuration: time.Minute,
		},
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		timeout:        timeout,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		boardFetchers:  fetchers,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type prospectEnvelope struct {
	Prospects []prospectPayload `json:"prospects"`
}

type prospectPayload struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Team     string `json:"team"`
}

type boardListEnvelope struct {
	Boards []boardSummaryPayload `json:"boards"`
}

type boardSummaryPayload struct {
	Sportscaster string    `json:"sportscaster"`
	Version      string    `json:"version"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type boardDetailEnvelope struct {
	Picks []boardPickPayload `json:"picks"`
}

type boardPickPayload struct {
	Position int    `json:"position"`
	PlayerID string `json:"playerId"`
}

// FetchProspects returns the provider's draft-eligible player catalog for one
// draft.
func (c *Client) FetchProspects(ctx context.Context, sportType string, draftYear int) ([]player.Player, error) {
	path := fmt.Sprintf("/%s/%d/prospects", sportType, draftYear)

	var envelope prospectEnvelope
	if err := c.doJSON(ctx, path, &envelope); err != nil {
		return nil, crerr.Wrapf(err, "fetch prospects sport=%s year=%d", sportType, draftYear)
	}

	out := make([]player.Player, 0, len(envelope.Prospects))
	for _, item := range envelope.Prospects {
		if strings.TrimSpace(item.ID) == "" {
			continue
		}
		out = append(out, player.Player{
			ID:        item.ID,
			Name:      item.Name,
			Position:  item.Position,
			Team:      item.Team,
			SportType: sportType,
			DraftYear: draftYear,
		})
	}

	return out, nil
}

// FetchMockDrafts lists the provider's boards for one draft and pulls each
// board's picks over a bounded goroutine pool.
func (c *Client) FetchMockDrafts(ctx context.Context, sportType string, draftYear int) ([]mockdraft.MockDraft, error) {
	listPath := fmt.Sprintf("/%s/%d/mock-drafts", sportType, draftYear)

	var listing boardListEnvelope
	if err := c.doJSON(ctx, listPath, &listing); err != nil {
		return nil, crerr.Wrapf(err, "list mock drafts sport=%s year=%d", sportType, draftYear)
	}
	if len(listing.Boards) == 0 {
		return nil, nil
	}

	fetchers := pool.NewWithResults[mockdraft.MockDraft]().
		WithContext(ctx).
		WithMaxGoroutines(c.boardFetchers)

	for _, summary := range listing.Boards {
		summary := summary
		fetchers.Go(func(ctx context.Context) (mockdraft.MockDraft, error) {
			detailPath := fmt.Sprintf("/%s/%d/mock-drafts/%s/%s", sportType, draftYear, summary.Sportscaster, summary.Version)

			var detail boardDetailEnvelope
			if err := c.doJSON(ctx, detailPath, &detail); err != nil {
				return mockdraft.MockDraft{}, crerr.Wrapf(err, "fetch board %s/%s", summary.Sportscaster, summary.Version)
			}

			picks := make([]mockdraft.Pick, 0, len(detail.Picks))
			for _, p := range detail.Picks {
				picks = append(picks, mockdraft.Pick{Position: p.Position, PlayerID: p.PlayerID})
			}

			return mockdraft.MockDraft{
				Sportscaster: summary.Sportscaster,
				Version:      summary.Version,
				SportType:    sportType,
				DraftYear:    draftYear,
				Picks:        picks,
				UpdatedAt:    summary.UpdatedAt,
			}, nil
		})
	}

	boards, err := fetchers.Wait()
	if err != nil {
		return nil, err
	}

	return boards, nil
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "draftwire circuit breaker rejected request", "state", c.breaker.State(), "path", path)
			return fmt.Errorf("draftwire is temporarily unavailable: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if attempt > 0 {
			backoff := time.Duration(attempt) * 500 * time.Millisecond
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			c.logger.WarnContext(ctx, "retrying draftwire request", "path", path, "attempt", attempt, "error", lastErr)
		}

		body, err := c.executeRequest(path)
		if err == nil {
			c.recordCircuitResult(nil)
			if err := sonic.Unmarshal(body, target); err != nil {
				return crerr.Wrapf(err, "decode draftwire response path=%s", path)
			}
			return nil
		}

		lastErr = err
		c.recordCircuitResult(err)
		if !stderrors.Is(err, errDraftWireTransient) {
			return err
		}
	}

	return lastErr
}

func (c *Client) executeRequest(path string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if c.token != "" {
		req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+c.token)
	}

	if err := c.httpClient.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, fmt.Errorf("%w: request path=%s: %v", errDraftWireTransient, path, err)
	}

	status := resp.StatusCode()
	if status/100 != 2 {
		snippet := truncate(string(resp.Body()), 512)
		if isRetryableStatus(status) {
			return nil, fmt.Errorf("%w: status=%d path=%s body=%s", errDraftWireTransient, status, path, snippet)
		}
		return nil, crerr.Newf("draftwire request failed status=%d path=%s body=%s", status, path, snippet)
	}

	// The response buffer is reused after release.
	return append([]byte(nil), resp.Body()...), nil
}

func (c *Client) recordCircuitResult(err error) {
	if !c.circuitEnabled || c.breaker == nil {
		return
	}
	if err == nil {
		c.breaker.RecordSuccess()
		return
	}
	if stderrors.Is(err, errDraftWireTransient) {
		c.breaker.RecordFailure()
		return
	}
	c.breaker.RecordSuccess()
}

func isRetryableStatus(status int) bool {
	return status == fasthttp.StatusRequestTimeout ||
		status == fasthttp.StatusTooManyRequests ||
		status >= fasthttp.StatusInternalServerError
}

func truncate(value string, max int) string {
	if len(value) <= max {
		return value
	}
	return value[:max] + "...(truncated)"
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
