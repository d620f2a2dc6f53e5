package domain

import "github.com/prometheus/client_golang/prometheus"

var (
	// sor_pools_provider_errors_total
	//
	// counter that measures the number of failed calls to a pool data provider
	//
	// Has the following labels:
	// * provider - the name of the provider that failed
	// * chain_id - the chain the pools were requested for
	SORPoolsProviderErrorsMetricName = "sor_pools_provider_errors_total"

	// sor_pools_filtered_total
	//
	// counter that measures the number of raw pools dropped while building a snapshot
	//
	// Has the following labels:
	// * chain_id - the chain of the snapshot
	// * reason - why the pool was dropped (threshold, invalid)
	SORPoolsFilteredMetricName = "sor_pools_filtered_total"

	// sor_pools_snapshot_size
	//
	// gauge that tracks the number of pools in the latest snapshot
	//
	// Has the following labels:
	// * chain_id - the chain of the snapshot
	SORPoolsSnapshotSizeMetricName = "sor_pools_snapshot_size"

	// sor_pools_cache_hits_total
	//
	// counter that measures the number of pool snapshot cache hits
	SORPoolsCacheHitsMetricName = "sor_pools_cache_hits_total"

	// sor_pools_cache_misses_total
	//
	// counter that measures the number of pool snapshot cache misses
	SORPoolsCacheMissesMetricName = "sor_pools_cache_misses_total"

	// sor_pricing_cache_hits_total
	//
	// counter that measures the number of price cache hits
	//
	// Has the following labels:
	// * kind - token_native or native_usd
	SORPricingCacheHitsMetricName = "sor_pricing_cache_hits_total"

	// sor_pricing_cache_misses_total
	//
	// counter that measures the number of price cache misses
	//
	// Has the following labels:
	// * kind - token_native or native_usd
	SORPricingCacheMissesMetricName = "sor_pricing_cache_misses_total"

	// sor_pricing_errors_total
	//
	// counter that measures the number of failed price fetches
	//
	// Has the following labels:
	// * kind - token_native or native_usd
	SORPricingErrorsMetricName = "sor_pricing_errors_total"

	// sor_gas_price_fallback_total
	//
	// counter that measures how often the gas price degraded to the fallback value
	//
	// Has the following labels:
	// * chain_id - the chain of the gas price
	SORGasPriceFallbackMetricName = "sor_gas_price_fallback_total"

	// sor_chain_height_stale_total
	//
	// counter that measures how often a stale chain height was detected
	//
	// Has the following labels:
	// * chain_id - the chain of the height
	SORChainHeightStaleMetricName = "sor_chain_height_stale_total"

	SORPoolsProviderErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: SORPoolsProviderErrorsMetricName,
			Help: "Total number of failed pool provider calls",
		},
		[]string{"provider", "chain_id"},
	)

	SORPoolsFilteredCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: SORPoolsFilteredMetricName,
			Help: "Total number of raw pools dropped while building a snapshot",
		},
		[]string{"chain_id", "reason"},
	)

	SORPoolsSnapshotSizeGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: SORPoolsSnapshotSizeMetricName,
			Help: "Number of pools in the latest snapshot",
		},
		[]string{"chain_id"},
	)

	SORPoolsCacheHitsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: SORPoolsCacheHitsMetricName,
			Help: "Total number of pool snapshot cache hits",
		},
	)

	SORPoolsCacheMissesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: SORPoolsCacheMissesMetricName,
			Help: "Total number of pool snapshot cache misses",
		},
	)

	SORPricingCacheHitsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: SORPricingCacheHitsMetricName,
			Help: "Total number of price cache hits",
		},
		[]string{"kind"},
	)

	SORPricingCacheMissesCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: SORPricingCacheMissesMetricName,
			Help: "Total number of price cache misses",
		},
		[]string{"kind"},
	)

	SORPricingErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: SORPricingErrorsMetricName,
			Help: "Total number of failed price fetches",
		},
		[]string{"kind"},
	)

	SORGasPriceFallbackCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: SORGasPriceFallbackMetricName,
			Help: "Total number of gas price fallbacks",
		},
		[]string{"chain_id"},
	)

	SORChainHeightStaleCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: SORChainHeightStaleMetricName,
			Help: "Total number of stale chain heights detected",
		},
		[]string{"chain_id"},
	)
)

func init() {
	prometheus.MustRegister(SORPoolsProviderErrorsCounter)
	prometheus.MustRegister(SORPoolsFilteredCounter)
	prometheus.MustRegister(SORPoolsSnapshotSizeGauge)
	prometheus.MustRegister(SORPoolsCacheHitsCounter)
	prometheus.MustRegister(SORPoolsCacheMissesCounter)
	prometheus.MustRegister(SORPricingCacheHitsCounter)
	prometheus.MustRegister(SORPricingCacheMissesCounter)
	prometheus.MustRegister(SORPricingErrorsCounter)
	prometheus.MustRegister(SORGasPriceFallbackCounter)
	prometheus.MustRegister(SORChainHeightStaleCounter)
}
