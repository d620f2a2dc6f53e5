package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/osmosis-labs/osmosis/osmomath"
	"go.uber.org/zap"

	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/domain/cache"
	"github.com/riverdex/sor/log"
)

const (
	tokenNativeKind = "token_native"
	nativeUSDKind   = "native_usd"

	usdQuote = "usd"
)

type nativePriceSource struct {
	tokenNativeURL string
	nativeUSDURL   string
	getter         httpGetter

	cache       *cache.Cache
	cacheExpiry time.Duration

	logger log.Logger
}

var _ domain.PricingSource = &nativePriceSource{}

// NewNativePriceSource returns a pricing source that reads token to native
// and native to USD prices from the configured URL templates.
// Prices are cached in priceCache for the configured expiry.
func NewNativePriceSource(config domain.PricingConfig, client *http.Client, priceCache *cache.Cache, logger log.Logger) domain.PricingSource {
	return &nativePriceSource{
		tokenNativeURL: config.TokenNativePriceURL,
		nativeUSDURL:   config.NativeUSDPriceURL,
		getter:         newHTTPGetter(client, config.RequestsPerSecond, config.Retry),
		cache:          priceCache,
		cacheExpiry:    time.Duration(config.CacheExpiryMs) * time.Millisecond,
		logger:         logger,
	}
}

// GetTokenPriceInNative implements domain.PricingSource.
func (s *nativePriceSource) GetTokenPriceInNative(ctx context.Context, chain domain.ChainConfig, token domain.Asset) (osmomath.Dec, error) {
	if chain.IsWrappedNative(token) {
		return osmomath.OneDec(), nil
	}

	notFound := domain.PriceNotFoundError{ChainID: chain.ChainID, Base: token.Address, Quote: chain.NativeSymbol}

	url, ok := fillTemplate(s.tokenNativeURL, map[string]string{
		chainIDPlaceholder: chain.ChainID.String(),
		symbolPlaceholder:  token.Symbol,
		addressPlaceholder: token.Address,
		nativePlaceholder:  chain.NativeSymbol,
	})
	if !ok {
		return osmomath.Dec{}, notFound
	}

	cacheKey := domain.FormatPricingCacheKey(chain.ChainID, token.Address, chain.NativeSymbol)

	return s.getPrice(ctx, tokenNativeKind, cacheKey, url, notFound)
}

// GetNativePriceInUSD implements domain.PricingSource.
func (s *nativePriceSource) GetNativePriceInUSD(ctx context.Context, chain domain.ChainConfig) (osmomath.Dec, error) {
	notFound := domain.PriceNotFoundError{ChainID: chain.ChainID, Base: chain.NativeSymbol, Quote: usdQuote}

	url, ok := fillTemplate(s.nativeUSDURL, map[string]string{
		chainIDPlaceholder: chain.ChainID.String(),
		symbolPlaceholder:  chain.NativeSymbol,
		addressPlaceholder: chain.WrappedNative.Address,
	})
	if !ok {
		return osmomath.Dec{}, notFound
	}

	cacheKey := domain.FormatPricingCacheKey(chain.ChainID, chain.NativeSymbol, usdQuote)

	return s.getPrice(ctx, nativeUSDKind, cacheKey, url, notFound)
}

func (s *nativePriceSource) getPrice(ctx context.Context, kind, cacheKey, url string, notFound domain.PriceNotFoundError) (osmomath.Dec, error) {
	if cached, found := s.cache.Get(cacheKey); found {
		price, ok := cached.(osmomath.Dec)
		if ok {
			domain.SORPricingCacheHitsCounter.WithLabelValues(kind).Inc()
			return price, nil
		}
	}

	domain.SORPricingCacheMissesCounter.WithLabelValues(kind).Inc()

	price, err := s.fetchPrice(ctx, url)
	if err != nil {
		domain.SORPricingErrorsCounter.WithLabelValues(kind).Inc()
		s.logger.Debug("failed to fetch price", zap.String("kind", kind), zap.String("base", notFound.Base), zap.Error(err))
		return osmomath.Dec{}, notFound
	}

	if !price.IsPositive() {
		return osmomath.Dec{}, notFound
	}

	s.cache.Set(cacheKey, price, s.cacheExpiry)

	return price, nil
}

func (s *nativePriceSource) fetchPrice(ctx context.Context, url string) (osmomath.Dec, error) {
	response, err := getJSON[priceResponse](ctx, s.getter, url, nil)
	if err != nil {
		return osmomath.Dec{}, err
	}

	if response.Price == "" {
		return osmomath.Dec{}, fmt.Errorf("price is missing in response of (%s)", url)
	}

	return parseDecimal(response.Price.String())
}

// fillTemplate returns false if the template is empty or uses a placeholder with no value.
func fillTemplate(template string, values map[string]string) (string, bool) {
	if template == "" {
		return "", false
	}

	for placeholder, value := range values {
		if value == "" && strings.Contains(template, placeholder) {
			return "", false
		}
	}

	return formatURL(template, values), true
}
