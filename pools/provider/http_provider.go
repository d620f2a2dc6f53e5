package provider

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/log"
	"github.com/riverdex/sor/sorutil/retry"
	"github.com/riverdex/sor/sorutil/sorhttp"
)

const (
	chainIDPlaceholder   = "{chainId}"
	blockNumberQueryName = "blockNumber"
)

type httpPoolsProvider struct {
	urlTemplate string
	client      *http.Client
	limiter     *rate.Limiter
	retryConfig domain.RetryConfig
	logger      log.Logger
}

var _ domain.PoolsProvider = &httpPoolsProvider{}

// NewHTTPPoolsProvider returns a provider fetching pools from an HTTP API.
// {chainId} in urlTemplate is replaced by the requested chain.
// Every call is retried per retryConfig and rate limited to requestsPerSecond.
func NewHTTPPoolsProvider(urlTemplate string, client *http.Client, requestsPerSecond float64, retryConfig domain.RetryConfig, logger log.Logger) domain.PoolsProvider {
	if client == nil {
		client = &http.Client{}
	}

	return &httpPoolsProvider{
		urlTemplate: urlTemplate,
		client:      client,
		limiter:     sorhttp.NewRateLimiter(requestsPerSecond),
		retryConfig: retryConfig,
		logger:      logger,
	}
}

// GetPools implements domain.PoolsProvider.
func (p *httpPoolsProvider) GetPools(ctx context.Context, chainID domain.ChainID, blockNumber *uint64) ([]domain.RawPool, error) {
	poolsURL, err := formatPoolsURL(p.urlTemplate, chainID, blockNumber)
	if err != nil {
		return nil, err
	}

	attempt := 0
	return retry.Do(ctx, p.retryConfig, func(ctx context.Context) ([]domain.RawPool, error) {
		attempt++

		if err := sorhttp.Wait(ctx, p.limiter); err != nil {
			return nil, err
		}

		response, err := sorhttp.Get[domain.RawPoolsResponse](ctx, p.client, poolsURL, "", nil)
		if err != nil {
			p.logger.Info("failed request for pools, retrying", zap.String("url", poolsURL), zap.Int("attempt", attempt), zap.Error(err))

			var statusErr domain.UnexpectedStatusCodeError
			if errors.As(err, &statusErr) && statusErr.StatusCode >= http.StatusBadRequest && statusErr.StatusCode < http.StatusInternalServerError {
				return nil, retry.Permanent(err)
			}
			return nil, err
		}

		return response.GetPools(), nil
	})
}

// Name implements domain.PoolsProvider.
func (p *httpPoolsProvider) Name() string {
	return "http"
}

func formatPoolsURL(urlTemplate string, chainID domain.ChainID, blockNumber *uint64) (string, error) {
	parsed, err := url.Parse(strings.ReplaceAll(urlTemplate, chainIDPlaceholder, chainID.String()))
	if err != nil {
		return "", err
	}

	if blockNumber != nil {
		query := parsed.Query()
		query.Set(blockNumberQueryName, strconv.FormatUint(*blockNumber, 10))
		parsed.RawQuery = query.Encode()
	}

	return parsed.String(), nil
}
