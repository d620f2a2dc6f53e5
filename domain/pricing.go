package domain

import (
	"context"
	"strings"
	"time"

	"github.com/osmosis-labs/osmosis/osmomath"
)

// PricingSource provides the prices needed to convert gas costs.
type PricingSource interface {
	// GetTokenPriceInNative returns how many native units (human) one unit of token is worth.
	// Returns PriceNotFoundError if the token has no price.
	GetTokenPriceInNative(ctx context.Context, chain ChainConfig, token Asset) (osmomath.Dec, error)

	// GetNativePriceInUSD returns the USD value of one native unit (human).
	GetNativePriceInUSD(ctx context.Context, chain ChainConfig) (osmomath.Dec, error)
}

// GasPriceSource provides the gas price of a chain in the smallest native unit.
// Implementations degrade to a fallback instead of failing.
type GasPriceSource interface {
	GetGasPrice(ctx context.Context, chain ChainConfig) osmomath.Int
}

// PricingConfig defines the configuration for the pricing.
type PricingConfig struct {
	// The number of milliseconds to cache the pricing data for.
	CacheExpiryMs int `mapstructure:"cache-expiry-ms"`

	// GasPriceURL returns the gas price of a chain. {chainId} is substituted.
	GasPriceURL string `mapstructure:"gas-price-url"`
	// GasPriceRefetchIntervalMs is the background refresh interval of gas prices.
	GasPriceRefetchIntervalMs int `mapstructure:"gas-price-refetch-interval-ms"`
	// GasPriceAuthHeader is sent as APP_INTERNAL_AUTH when non-empty.
	GasPriceAuthHeader string `mapstructure:"gas-price-auth-header"`

	// TokenNativePriceURL returns the price of a token in native units.
	// {chainId}, {symbol}, {address} and {native} are substituted.
	TokenNativePriceURL string `mapstructure:"token-native-price-url"`
	// NativeUSDPriceURL returns the USD price of the native currency.
	// {chainId}, {symbol} and {address} are substituted.
	NativeUSDPriceURL string `mapstructure:"native-usd-price-url"`

	// Retry policy of every pricing call.
	Retry RetryConfig `mapstructure:"retry"`

	// RequestsPerSecond rate limits the pricing HTTP client. Zero disables the limit.
	RequestsPerSecond float64 `mapstructure:"requests-per-second"`
}

// RetryConfig configures a retry policy.
type RetryConfig struct {
	MaxAttempts  int `mapstructure:"max-attempts"`
	MinBackoffMs int `mapstructure:"min-backoff-ms"`
	MaxBackoffMs int `mapstructure:"max-backoff-ms"`
	TimeoutMs    int `mapstructure:"timeout-ms"`
}

// MinBackoff returns the minimum backoff as a duration.
func (c RetryConfig) MinBackoff() time.Duration {
	return time.Duration(c.MinBackoffMs) * time.Millisecond
}

// MaxBackoff returns the maximum backoff as a duration.
func (c RetryConfig) MaxBackoff() time.Duration {
	return time.Duration(c.MaxBackoffMs) * time.Millisecond
}

// Timeout returns the per-attempt timeout as a duration.
func (c RetryConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// FormatPricingCacheKey formats the cache key for the price of base in quote on a chain.
func FormatPricingCacheKey(chainID ChainID, base, quote string) string {
	var sb strings.Builder
	sb.WriteString(chainID.String())
	sb.WriteString("/")
	sb.WriteString(NormalizeAddress(base))
	sb.WriteString("/")
	sb.WriteString(NormalizeAddress(quote))
	return sb.String()
}
