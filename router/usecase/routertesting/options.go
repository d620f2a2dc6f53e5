package routertesting

import (
	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/domain/mocks"
)

// TestOptions customizes the router built by SetupRouterUsecase.
type TestOptions struct {
	RouterConfig domain.RouterConfig
	ChainInfo    *mocks.ChainInfoUsecaseMock
}

// TestOption is a function that sets a test option.
type TestOption func(*TestOptions)

// WithRouterConfig sets the router config on options.
func WithRouterConfig(config domain.RouterConfig) TestOption {
	return func(options *TestOptions) {
		options.RouterConfig = config
	}
}

// WithRouteCacheDisabled turns the route cache off.
func WithRouteCacheDisabled() TestOption {
	return func(options *TestOptions) {
		options.RouterConfig.RouteCacheEnabled = false
	}
}

// WithChainInfo replaces the chain info mock that reports the current block.
func WithChainInfo(chainInfo *mocks.ChainInfoUsecaseMock) TestOption {
	return func(options *TestOptions) {
		options.ChainInfo = chainInfo
	}
}
