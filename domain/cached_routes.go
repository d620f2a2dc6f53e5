package domain

import (
	"fmt"
	"strings"
)

// CachedRoute is a route and the percent of the amount it carried.
type CachedRoute struct {
	Route   Route `json:"route"`
	Percent int   `json:"percent"`
}

// CachedRoutes is the outcome of an optimization, valid for BlocksToLive
// blocks after BlockNumber. Values are never mutated once stored.
type CachedRoutes struct {
	Routes       []CachedRoute `json:"routes"`
	ChainID      ChainID       `json:"chainId"`
	TokenIn      Asset         `json:"tokenIn"`
	TokenOut     Asset         `json:"tokenOut"`
	Protocols    ProtocolSet   `json:"protocolsCovered"`
	TradeType    TradeType     `json:"tradeType"`
	BlockNumber  uint64        `json:"blockNumber"`
	BlocksToLive uint64        `json:"blocksToLive"`
}

// NotExpired returns true iff currentBlock - BlockNumber <= BlocksToLive.
// A current block behind the stored block is treated as not expired.
func (c CachedRoutes) NotExpired(currentBlock uint64) bool {
	if currentBlock < c.BlockNumber {
		return true
	}
	return currentBlock-c.BlockNumber <= c.BlocksToLive
}

// Key returns the cache key of the entry.
func (c CachedRoutes) Key() string {
	return FormatRouteCacheKey(c.ChainID, c.TokenIn, c.TokenOut, c.TradeType, c.Protocols)
}

// FormatRouteCacheKey formats the route cache key.
func FormatRouteCacheKey(chainID ChainID, tokenIn, tokenOut Asset, tradeType TradeType, protocols ProtocolSet) string {
	return fmt.Sprintf("%d/%s/%s/%s/%s", chainID, NormalizeAddress(tokenIn.Address), NormalizeAddress(tokenOut.Address), tradeType, strings.ToLower(protocols.String()))
}
