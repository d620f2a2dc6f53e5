package domain

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrUpstreamUnavailable is returned when a data dependency could not be fetched.
	ErrUpstreamUnavailable = errors.New("upstream data source is unavailable")
	// ErrNoRoute is returned by the engine when no combination of routes can fill the trade.
	// It is not surfaced to clients as an error.
	ErrNoRoute = errors.New("no route found")
)

// GetStatusCode returns the HTTP status code for the given error.
func GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)

	var (
		unsupportedChainErr UnsupportedChainError
		invalidAddressErr   InvalidAssetAddressError
		invalidTradeTypeErr InvalidTradeTypeError
		invalidChainIDErr   InvalidChainIDError
		sameAssetErr        SameAssetError
		unsupportedProtoErr UnsupportedProtocolError
		providersErr        ProvidersExhaustedError
	)

	switch {
	case errors.Is(err, ErrBadParamInput),
		errors.As(err, &unsupportedChainErr),
		errors.As(err, &invalidAddressErr),
		errors.As(err, &invalidTradeTypeErr),
		errors.As(err, &invalidChainIDErr),
		errors.As(err, &sameAssetErr),
		errors.As(err, &unsupportedProtoErr):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUpstreamUnavailable), errors.As(err, &providersErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// InsufficientReservesError is returned by a pool that cannot fill the trade
// without draining a reserve.
type InsufficientReservesError struct {
	PoolAddress string
}

func (e InsufficientReservesError) Error() string {
	return fmt.Sprintf("insufficient reserves in pool (%s)", e.PoolAddress)
}

// InsufficientInputAmountError is returned when a hop computes a non-positive amount.
type InsufficientInputAmountError struct {
	PoolAddress string
	Amount      string
}

func (e InsufficientInputAmountError) Error() string {
	return fmt.Sprintf("insufficient input amount (%s) for pool (%s)", e.Amount, e.PoolAddress)
}

// AmountOverflowError is returned when a hop amount does not fit the pool arithmetic.
type AmountOverflowError struct {
	PoolAddress string
}

func (e AmountOverflowError) Error() string {
	return fmt.Sprintf("amount overflows the arithmetic of pool (%s)", e.PoolAddress)
}

// IsQuoteDegradingError returns true if the error only invalidates a single quote.
func IsQuoteDegradingError(err error) bool {
	var (
		reservesErr InsufficientReservesError
		inputErr    InsufficientInputAmountError
		overflowErr AmountOverflowError
	)
	return errors.As(err, &reservesErr) || errors.As(err, &inputErr) || errors.As(err, &overflowErr)
}

type AssetNotInPoolError struct {
	PoolAddress string
	Asset       string
}

func (e AssetNotInPoolError) Error() string {
	return fmt.Sprintf("asset (%s) is not in pool (%s)", e.Asset, e.PoolAddress)
}

type InvalidRouteError struct {
	Reason string
}

func (e InvalidRouteError) Error() string {
	return fmt.Sprintf("invalid route: %s", e.Reason)
}

type UnsupportedChainError struct {
	ChainID ChainID
}

func (e UnsupportedChainError) Error() string {
	return fmt.Sprintf("chain (%d) is not supported", e.ChainID)
}

type DuplicateChainConfigError struct {
	ChainID ChainID
}

func (e DuplicateChainConfigError) Error() string {
	return fmt.Sprintf("chain (%d) is configured more than once", e.ChainID)
}

type InvalidAssetAddressError struct {
	Address string
}

func (e InvalidAssetAddressError) Error() string {
	return fmt.Sprintf("invalid asset address (%s)", e.Address)
}

type InvalidChainIDError struct {
	ChainID string
}

func (e InvalidChainIDError) Error() string {
	return fmt.Sprintf("invalid chain id (%s), must be a positive integer", e.ChainID)
}

type SameAssetError struct {
	AssetA string
	AssetB string
}

func (e SameAssetError) Error() string {
	return fmt.Sprintf("token in (%s) must differ from token out (%s)", e.AssetA, e.AssetB)
}

type InvalidTradeTypeError struct {
	TradeType string
}

func (e InvalidTradeTypeError) Error() string {
	return fmt.Sprintf("invalid trade type (%s), expected EXACT_IN or EXACT_OUT", e.TradeType)
}

type UnsupportedProtocolError struct {
	Protocol Protocol
}

func (e UnsupportedProtocolError) Error() string {
	return fmt.Sprintf("protocol (%s) is not supported", e.Protocol)
}

type PoolNotFoundError struct {
	PoolAddress string
}

func (e PoolNotFoundError) Error() string {
	return fmt.Sprintf("pool (%s) is not found", e.PoolAddress)
}

// ProvidersExhaustedError is returned when every provider of a fallback chain failed.
type ProvidersExhaustedError struct {
	Dependency string
	LastErr    error
}

func (e ProvidersExhaustedError) Error() string {
	return fmt.Sprintf("all %s providers failed, last error: %v", e.Dependency, e.LastErr)
}

func (e ProvidersExhaustedError) Unwrap() error {
	return e.LastErr
}

type PriceNotFoundError struct {
	ChainID ChainID
	Base    string
	Quote   string
}

func (e PriceNotFoundError) Error() string {
	return fmt.Sprintf("price of (%s) in (%s) on chain (%d) is not found", e.Base, e.Quote, e.ChainID)
}

type StaleHeightError struct {
	ChainID             ChainID
	StoredHeight        uint64
	TimeSinceLastUpdate int
	MaxAllowedTimeDelta int
}

func (e StaleHeightError) Error() string {
	return fmt.Sprintf("chain (%d) height (%d) is stale, time since last update: %d seconds, max allowed: %d seconds", e.ChainID, e.StoredHeight, e.TimeSinceLastUpdate, e.MaxAllowedTimeDelta)
}

type HeightNotAvailableError struct {
	ChainID ChainID
}

func (e HeightNotAvailableError) Error() string {
	return fmt.Sprintf("height of chain (%d) is not available yet", e.ChainID)
}

type UnexpectedStatusCodeError struct {
	URL        string
	StatusCode int
}

func (e UnexpectedStatusCodeError) Error() string {
	return fmt.Sprintf("unexpected status code (%d) from (%s)", e.StatusCode, e.URL)
}

type InvalidPoolFeeError struct {
	PoolAddress string
	FeeBps      uint32
}

func (e InvalidPoolFeeError) Error() string {
	return fmt.Sprintf("pool (%s) fee (%d bps) must be below %d", e.PoolAddress, e.FeeBps, FeeDenominator)
}

// InvalidRawPoolError is returned when a provider pool cannot be converted into a pool.
type InvalidRawPoolError struct {
	PoolAddress string
	Reason      string
}

func (e InvalidRawPoolError) Error() string {
	return fmt.Sprintf("invalid raw pool (%s): %s", e.PoolAddress, e.Reason)
}
