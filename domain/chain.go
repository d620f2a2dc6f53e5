package domain

import (
	"slices"
	"strconv"
)

// ChainID identifies a chain.
type ChainID uint64

// String implements fmt.Stringer.
func (c ChainID) String() string {
	return strconv.FormatUint(uint64(c), 10)
}

// GasCostConfig is the heuristic gas table of a chain.
type GasCostConfig struct {
	// BaseSwapCost is the cost of any swap regardless of the number of pools.
	BaseSwapCost uint64 `mapstructure:"base-swap-cost"`
	// CostPerExtraHop is added for every pool after the first.
	CostPerExtraHop uint64 `mapstructure:"cost-per-extra-hop"`
	// FixedGasPrice is non-zero for chains without a gas market (e.g. Tron).
	FixedGasPrice uint64 `mapstructure:"fixed-gas-price"`
}

// ChainConfig is the static per-chain table consumed by the candidate
// selector and the gas model.
type ChainConfig struct {
	ChainID      ChainID `mapstructure:"chain-id"`
	Name         string  `mapstructure:"name"`
	NativeSymbol string  `mapstructure:"native-symbol"`
	// WrappedNative is the wrapped native currency, e.g. WETH.
	WrappedNative Asset `mapstructure:"wrapped-native"`
	// BaseAssets are the liquid reference assets used as intermediate hops.
	BaseAssets []Asset `mapstructure:"base-assets"`
	// USDAssets are the stable assets in which gas is reported.
	USDAssets []Asset       `mapstructure:"usd-assets"`
	Gas       GasCostConfig `mapstructure:"gas"`
}

// HasFixedGasPrice returns true if the chain has no gas market.
func (c ChainConfig) HasFixedGasPrice() bool {
	return c.Gas.FixedGasPrice > 0
}

// IsWrappedNative returns true if the asset is the wrapped native currency.
func (c ChainConfig) IsWrappedNative(asset Asset) bool {
	return !c.WrappedNative.IsZero() && c.WrappedNative.Equal(asset)
}

// ChainRegistry is an immutable lookup of chain configurations.
type ChainRegistry struct {
	chains map[ChainID]ChainConfig
	ids    []ChainID
}

// NewChainRegistry validates and normalizes the chain configurations.
func NewChainRegistry(chains []ChainConfig) (*ChainRegistry, error) {
	registry := &ChainRegistry{
		chains: make(map[ChainID]ChainConfig, len(chains)),
		ids:    make([]ChainID, 0, len(chains)),
	}

	for _, chain := range chains {
		if _, ok := registry.chains[chain.ChainID]; ok {
			return nil, DuplicateChainConfigError{ChainID: chain.ChainID}
		}

		normalized, err := normalizeChainConfig(chain)
		if err != nil {
			return nil, err
		}

		registry.chains[chain.ChainID] = normalized
		registry.ids = append(registry.ids, chain.ChainID)
	}

	slices.Sort(registry.ids)

	return registry, nil
}

// Get returns the configuration of the chain.
// Returns UnsupportedChainError if the chain is not configured.
func (r *ChainRegistry) Get(chainID ChainID) (ChainConfig, error) {
	chain, ok := r.chains[chainID]
	if !ok {
		return ChainConfig{}, UnsupportedChainError{ChainID: chainID}
	}
	return chain, nil
}

// ChainIDs returns the configured chain IDs in ascending order.
func (r *ChainRegistry) ChainIDs() []ChainID {
	return slices.Clone(r.ids)
}

func normalizeChainConfig(chain ChainConfig) (ChainConfig, error) {
	if !chain.WrappedNative.IsZero() {
		if err := ValidateAddress(chain.WrappedNative.Address); err != nil {
			return ChainConfig{}, err
		}
		chain.WrappedNative = NewAsset(chain.WrappedNative.Address, chain.WrappedNative.Decimals, chain.WrappedNative.Symbol)
	}

	baseAssets, err := normalizeAssets(chain.BaseAssets)
	if err != nil {
		return ChainConfig{}, err
	}
	usdAssets, err := normalizeAssets(chain.USDAssets)
	if err != nil {
		return ChainConfig{}, err
	}

	chain.BaseAssets = baseAssets
	chain.USDAssets = usdAssets
	return chain, nil
}

func normalizeAssets(assets []Asset) ([]Asset, error) {
	result := make([]Asset, 0, len(assets))
	for _, asset := range assets {
		if err := ValidateAddress(asset.Address); err != nil {
			return nil, err
		}
		result = append(result, NewAsset(asset.Address, asset.Decimals, asset.Symbol))
	}
	return result, nil
}
