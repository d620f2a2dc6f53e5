package types

import "errors"

// Handler Errors
var (
	ErrRequestBodyNotValid       = errors.New("request body is invalid - must be a JSON quote request")
	ErrChainIDNotSpecified       = errors.New("chainId is required")
	ErrTokenInNotSpecified       = errors.New("tokenIn is required")
	ErrTokenOutNotSpecified      = errors.New("tokenOut is required")
	ErrTokenAddressNotSpecified  = errors.New("token address is required")
	ErrTokenDecimalsNotValid     = errors.New("token decimals must be between 0 and 77")
	ErrTradeTypeNotSpecified     = errors.New("tradeType is required")
	ErrInputAmountNotValid       = errors.New("inputAmount is invalid - must be a positive integer in the smallest unit")
	ErrMaxSwapsPerPathNotValid   = errors.New("maxSwapsPerPath must not be negative")
	ErrMaxSplitsNotValid         = errors.New("maxSplits must not be negative")
	ErrTokenInQueryNotSpecified  = errors.New("tokenIn query parameter is required")
	ErrTokenOutQueryNotSpecified = errors.New("tokenOut query parameter is required")
)
