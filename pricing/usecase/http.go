package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/sorutil/retry"
	"github.com/riverdex/sor/sorutil/sorhttp"
)

const (
	chainIDPlaceholder = "{chainId}"
	symbolPlaceholder  = "{symbol}"
	addressPlaceholder = "{address}"
	nativePlaceholder  = "{native}"

	authHeaderName = "APP_INTERNAL_AUTH"

	// legacy decimals carry at most 18 fractional digits
	maxPricePrecision = 18
)

// gasPriceResponse accepts the gas price both as a JSON number and as a string.
type gasPriceResponse struct {
	Data json.Number `json:"data"`
}

// priceResponse accepts the price both as a JSON number and as a string.
type priceResponse struct {
	Price json.Number `json:"price"`
}

// httpGetter performs rate limited GET requests with retries.
type httpGetter struct {
	client      *http.Client
	limiter     *rate.Limiter
	retryConfig domain.RetryConfig
}

func newHTTPGetter(client *http.Client, requestsPerSecond float64, retryConfig domain.RetryConfig) httpGetter {
	if client == nil {
		client = &http.Client{}
	}

	return httpGetter{
		client:      client,
		limiter:     sorhttp.NewRateLimiter(requestsPerSecond),
		retryConfig: retryConfig,
	}
}

func getJSON[T any](ctx context.Context, getter httpGetter, url string, headers map[string]string) (*T, error) {
	return retry.Do(ctx, getter.retryConfig, func(ctx context.Context) (*T, error) {
		if err := sorhttp.Wait(ctx, getter.limiter); err != nil {
			return nil, err
		}
		return sorhttp.Get[T](ctx, getter.client, url, "", headers)
	})
}

// formatURL substitutes the placeholders of template.
func formatURL(template string, replacements map[string]string) string {
	pairs := make([]string, 0, 2*len(replacements))
	for placeholder, value := range replacements {
		pairs = append(pairs, placeholder, value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// parseDecimal parses a non-negative decimal number into a legacy dec.
func parseDecimal(value string) (osmomath.Dec, error) {
	parsed, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return osmomath.Dec{}, err
	}

	return osmomath.NewDecFromStr(parsed.Truncate(maxPricePrecision).String())
}

// parseInteger parses a number into an integer, truncating any fractional part.
func parseInteger(value string) (osmomath.Int, error) {
	parsed, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return osmomath.Int{}, err
	}

	return osmomath.NewIntFromBigInt(parsed.Truncate(0).BigInt()), nil
}
