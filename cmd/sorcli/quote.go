package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"

	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/domain/cache"
	"github.com/riverdex/sor/log"
	poolsprovider "github.com/riverdex/sor/pools/provider"
	poolsusecase "github.com/riverdex/sor/pools/usecase"
	pricingusecase "github.com/riverdex/sor/pricing/usecase"
	routerusecase "github.com/riverdex/sor/router/usecase"
	"github.com/riverdex/sor/router/usecase/gas"
	"github.com/riverdex/sor/sorutil"
)

// quoteOptions holds the parsed flags of the quote command.
type quoteOptions struct {
	config    domain.Config
	poolsFile string
	chainID   domain.ChainID
	tokenIn   string
	tokenOut  string
	// amount is in human units of the amount token.
	amount          string
	tradeType       domain.TradeType
	maxSwapsPerPath int
	maxSplits       int
	outFile         string
}

func quoteCommand() *cli.Command {
	return &cli.Command{
		Name:  "quote",
		Usage: "compute the best route for a trade",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.json", Usage: "config file with the chains and router tunables"},
			&cli.StringFlag{Name: "pools", Required: true, Usage: "static pools file, keyed by chain ID"},
			&cli.Uint64Flag{Name: "chain", Value: 1, Usage: "chain ID"},
			&cli.StringFlag{Name: "in", Required: true, Usage: "address of the token in"},
			&cli.StringFlag{Name: "out", Required: true, Usage: "address of the token out"},
			&cli.StringFlag{Name: "amount", Required: true, Usage: "amount in human units of the amount token"},
			&cli.StringFlag{Name: "trade-type", Value: domain.TradeTypeExactIn.String(), Usage: "EXACT_IN or EXACT_OUT"},
			&cli.IntFlag{Name: "max-swaps", Usage: "override of the max swaps per path"},
			&cli.IntFlag{Name: "max-splits", Usage: "override of the max splits"},
			&cli.StringFlag{Name: "out-file", Usage: "also write the quote to this file"},
		},
		Action: func(c *cli.Context) error {
			config, err := loadConfig(c.String("config"))
			if err != nil {
				return err
			}

			tradeType, err := domain.ParseTradeType(c.String("trade-type"))
			if err != nil {
				return err
			}

			opts := quoteOptions{
				config:          config,
				poolsFile:       c.String("pools"),
				chainID:         domain.ChainID(c.Uint64("chain")),
				tokenIn:         c.String("in"),
				tokenOut:        c.String("out"),
				amount:          c.String("amount"),
				tradeType:       tradeType,
				maxSwapsPerPath: c.Int("max-swaps"),
				maxSplits:       c.Int("max-splits"),
				outFile:         c.String("out-file"),
			}

			return runQuote(c.Context, opts, c.App.Writer)
		},
	}
}

func loadConfig(path string) (domain.Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return domain.Config{}, err
	}

	var config domain.Config
	if err := v.Unmarshal(&config); err != nil {
		return domain.Config{}, err
	}

	if config.Router == nil {
		return domain.Config{}, fmt.Errorf("router config is missing in (%s)", path)
	}

	return config, nil
}

// runQuote quotes the trade against the pools file and writes the JSON result to w.
func runQuote(ctx context.Context, opts quoteOptions, w io.Writer) error {
	logger, err := log.NewLogger(false, "", "error")
	if err != nil {
		return err
	}

	chains, err := domain.NewChainRegistry(opts.config.Chains)
	if err != nil {
		return err
	}

	provider, err := poolsprovider.NewStaticPoolsProviderFromFile(opts.poolsFile)
	if err != nil {
		return err
	}

	poolsUsecase, err := poolsusecase.NewPoolsUsecase(opts.config.Pools, provider, nil, logger)
	if err != nil {
		return err
	}

	snapshot, err := poolsUsecase.GetPools(ctx, opts.chainID, nil)
	if err != nil {
		return err
	}

	chain, err := chains.Get(opts.chainID)
	if err != nil {
		return err
	}

	tokenIn, err := resolveAsset(opts.tokenIn, snapshot, chain)
	if err != nil {
		return err
	}

	tokenOut, err := resolveAsset(opts.tokenOut, snapshot, chain)
	if err != nil {
		return err
	}

	req := domain.QuoteRequest{
		ChainID:         opts.chainID,
		TokenIn:         tokenIn,
		TokenOut:        tokenOut,
		TradeType:       opts.tradeType,
		MaxSwapsPerPath: opts.maxSwapsPerPath,
		MaxSplits:       opts.maxSplits,
	}

	req.Amount, err = parseHumanAmount(opts.amount, req.AmountToken())
	if err != nil {
		return err
	}

	pricingConfig := domain.PricingConfig{}
	if opts.config.Pricing != nil {
		pricingConfig = *opts.config.Pricing
		// A one-off quote does not need background refreshes.
		pricingConfig.GasPriceRefetchIntervalMs = 0
	}

	httpClient := &http.Client{}

	router, err := routerusecase.NewRouterUsecase(
		*opts.config.Router,
		chains,
		poolsUsecase,
		nil,
		pricingusecase.NewGasPriceSource(pricingConfig, opts.config.Chains, httpClient, logger),
		gas.NewHeuristicGasModelFactory(pricingusecase.NewNativePriceSource(pricingConfig, httpClient, cache.New(), logger), logger),
		nil,
		logger,
	)
	if err != nil {
		return err
	}

	swapRoute, err := router.GetOptimalQuote(ctx, req)
	if err != nil {
		return err
	}

	bz, err := json.MarshalIndent(swapRoute, "", "  ")
	if err != nil {
		return err
	}

	if opts.outFile != "" {
		if err := sorutil.WriteFileAtomic(opts.outFile, bz); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(w, string(bz))
	return err
}

// resolveAsset finds the decimals and symbol of address among the snapshot
// pool tokens and the chain base assets.
func resolveAsset(address string, snapshot domain.PoolsSnapshot, chain domain.ChainConfig) (domain.Asset, error) {
	hexAddress, err := domain.TronAddressToHex(address)
	if err != nil {
		return domain.Asset{}, err
	}

	if err := domain.ValidateAddress(hexAddress); err != nil {
		return domain.Asset{}, err
	}

	target := domain.Asset{Address: hexAddress}

	for _, pool := range snapshot.Pools {
		if pool.Token0.Equal(target) {
			return pool.Token0, nil
		}
		if pool.Token1.Equal(target) {
			return pool.Token1, nil
		}
	}

	for _, asset := range chain.BaseAssets {
		if asset.Equal(target) {
			return asset, nil
		}
	}

	return domain.Asset{}, fmt.Errorf("token (%s) is not in any pool of chain (%d)", address, chain.ChainID)
}

// parseHumanAmount converts amount in human units into the smallest unit of asset.
func parseHumanAmount(amount string, asset domain.Asset) (osmomath.Int, error) {
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return osmomath.Int{}, fmt.Errorf("invalid amount (%s): %w", amount, err)
	}

	raw := parsed.Shift(int32(asset.Decimals))
	if !raw.IsInteger() {
		return osmomath.Int{}, fmt.Errorf("amount (%s) has more than %d decimals", amount, asset.Decimals)
	}

	if !raw.IsPositive() {
		return osmomath.Int{}, fmt.Errorf("amount (%s) must be positive", amount)
	}

	return osmomath.NewIntFromBigInt(raw.BigInt()), nil
}
