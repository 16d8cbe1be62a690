package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/avc/reading-billing/internal/domain"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// CatalogOptions параметры HTTP клиента каталога
type CatalogOptions struct {
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// DefaultCatalogOptions возвращает параметры клиента по умолчанию
func DefaultCatalogOptions() CatalogOptions {
	return CatalogOptions{
		Timeout:      10 * time.Second,
		RetryMax:     3,
		RetryWaitMin: 200 * time.Millisecond,
		RetryWaitMax: 2 * time.Second,
	}
}

// HTTPCatalogClient реализует domain.CatalogClient.
// Повторяет запрос при сетевых ошибках и ответах 5xx, 429 отдает вызывающему как RateLimitError.
type HTTPCatalogClient struct {
	baseURL    string
	httpClient *retryablehttp.Client
}

// NewCatalogClient создает новый CatalogClient
func NewCatalogClient(baseURL string, opts CatalogOptions, logger *zap.Logger) *HTTPCatalogClient {
	client := retryablehttp.NewClient()
	client.HTTPClient.Timeout = opts.Timeout
	client.RetryMax = opts.RetryMax
	client.RetryWaitMin = opts.RetryWaitMin
	client.RetryWaitMax = opts.RetryWaitMax
	client.CheckRetry = catalogRetryPolicy
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.Logger = retryLogger{logger: logger.Sugar()}

	return &HTTPCatalogClient{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// GetBookPricing получает тарифы книги
func (c *HTTPCatalogClient) GetBookPricing(ctx context.Context, bookID int64) (*domain.BookPricing, error) {
	url := fmt.Sprintf("%s/api/books/%d/pricing", c.baseURL, bookID)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog client: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var pricing domain.BookPricing
		if err := json.NewDecoder(resp.Body).Decode(&pricing); err != nil {
			return nil, fmt.Errorf("catalog client: failed to decode response: %w", err)
		}
		if pricing.BookID == 0 {
			pricing.BookID = bookID
		}
		return &pricing, nil

	case http.StatusNotFound:
		return nil, domain.ErrPricingNotAvailable

	case http.StatusTooManyRequests:
		retryAfter := resp.Header.Get("Retry-After")
		seconds, _ := strconv.Atoi(retryAfter)
		return nil, NewRateLimitError(time.Duration(seconds) * time.Second)

	default:
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, fmt.Errorf("%w: status code %d", ErrCatalogUnavailable, resp.StatusCode)
		}
		return nil, fmt.Errorf("catalog client: unexpected status code: %d", resp.StatusCode)
	}
}

func catalogRetryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if resp != nil && resp.StatusCode == http.StatusTooManyRequests {
		return false, nil
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// retryLogger направляет логи retryablehttp в zap
type retryLogger struct {
	logger *zap.SugaredLogger
}

func (l retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, keysAndValues...)
}

func (l retryLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Infow(msg, keysAndValues...)
}

func (l retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warnw(msg, keysAndValues...)
}
