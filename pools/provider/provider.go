package provider

import (
	"errors"
	"net/http"
	"time"

	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/domain/cache"
	"github.com/riverdex/sor/log"
)

var errNoPoolsProvider = errors.New("at least one pools provider url or a static pools file must be configured")

// NewPoolsProviderFromConfig assembles the configured pool sources:
// the HTTP providers in order, then the static file, behind a fallback chain.
// The chain is cached when a cache expiry is configured.
func NewPoolsProviderFromConfig(config *domain.PoolsConfig, client *http.Client, logger log.Logger) (domain.PoolsProvider, error) {
	if config == nil {
		return nil, errNoPoolsProvider
	}

	providers := make([]domain.PoolsProvider, 0, len(config.ProviderURLs)+1)
	for _, providerURL := range config.ProviderURLs {
		providers = append(providers, NewHTTPPoolsProvider(providerURL, client, config.RequestsPerSecond, config.Retry, logger))
	}

	if config.StaticPoolsFile != "" {
		staticProvider, err := NewStaticPoolsProviderFromFile(config.StaticPoolsFile)
		if err != nil {
			return nil, err
		}
		providers = append(providers, staticProvider)
	}

	if len(providers) == 0 {
		return nil, errNoPoolsProvider
	}

	var provider domain.PoolsProvider
	if len(providers) == 1 {
		provider = providers[0]
	} else {
		provider = NewFallbackPoolsProvider(providers, logger)
	}

	if config.CacheExpiryMs > 0 {
		provider = NewCachingPoolsProvider(provider, cache.New(), time.Duration(config.CacheExpiryMs)*time.Millisecond)
	}

	return provider, nil
}
