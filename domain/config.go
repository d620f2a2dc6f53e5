package domain

// Config defines the config for the router server.
type Config struct {
	// Defines the web server configuration.
	ServerAddress             string `mapstructure:"server-address"`
	ServerTimeoutDurationSecs int    `mapstructure:"timeout-duration-secs"`

	// Defines the logger configuration.
	LoggerFilename     string `mapstructure:"logger-filename"`
	LoggerIsProduction bool   `mapstructure:"logger-is-production"`
	LoggerLevel        string `mapstructure:"logger-level"`

	// Chains holds the static per-chain tables.
	Chains []ChainConfig `mapstructure:"chains"`

	// Router encapsulates the router config.
	Router *RouterConfig `mapstructure:"router"`

	// Pools encapsulates the pools config.
	Pools *PoolsConfig `mapstructure:"pools"`

	Pricing *PricingConfig `mapstructure:"pricing"`

	ChainInfo *ChainInfoConfig `mapstructure:"chain-info"`

	CORS *CORSConfig `mapstructure:"cors"`

	OTEL *OTELConfig `mapstructure:"otel"`
}

// PoolsConfig defines the configuration of the pool data providers.
type PoolsConfig struct {
	// ProviderURLs is the ordered fallback chain of pool data sources.
	// {chainId} is substituted.
	ProviderURLs []string `mapstructure:"provider-urls"`
	// StaticPoolsFile is used as the last provider when set.
	StaticPoolsFile string `mapstructure:"static-pools-file"`
	// The number of milliseconds to cache a pool snapshot for.
	CacheExpiryMs int `mapstructure:"cache-expiry-ms"`
	// Pools with tracked native reserve at or below this value are dropped.
	MinTrackedReserveNative string `mapstructure:"min-tracked-reserve-native"`
	// Retry policy of every pool provider call.
	Retry RetryConfig `mapstructure:"retry"`
	// RequestsPerSecond rate limits the pools HTTP client. Zero disables the limit.
	RequestsPerSecond float64 `mapstructure:"requests-per-second"`
}

// ChainInfoConfig defines where the latest block numbers are fetched from.
type ChainInfoConfig struct {
	// BlockNumberURL returns the latest block of a chain. {chainId} is substituted.
	BlockNumberURL    string `mapstructure:"block-number-url"`
	RefetchIntervalMs int    `mapstructure:"refetch-interval-ms"`
	// The max number of seconds allowed without a height increase.
	MaxAllowedHeightUpdateTimeDeltaSecs int `mapstructure:"max-allowed-height-update-time-delta-secs"`
	// Retry policy of every block number call.
	Retry RetryConfig `mapstructure:"retry"`
}

// CORSConfig defines the CORS headers set on every response.
type CORSConfig struct {
	AllowedHeaders string `mapstructure:"allowed-headers"`
	AllowedMethods string `mapstructure:"allowed-methods"`
	AllowedOrigin  string `mapstructure:"allowed-origin"`
}

// OTELConfig defines the tracing and error reporting configuration.
type OTELConfig struct {
	DSN                string           `mapstructure:"dsn"`
	SampleRate         float64          `mapstructure:"sample-rate"`
	EnableTracing      bool             `mapstructure:"enable-tracing"`
	ProfilesSampleRate float64          `mapstructure:"profiles-sample-rate"`
	Environment        string           `mapstructure:"environment"`
	CustomSampleRate   CustomSampleRate `mapstructure:"custom-sample-rate"`
}

// CustomSampleRate defines per-endpoint sampling rates.
type CustomSampleRate struct {
	Quote float64 `mapstructure:"quote"`
	Other float64 `mapstructure:"other"`
}
