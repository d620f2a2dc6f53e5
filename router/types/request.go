package types

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/riverdex/sor/domain"
)

// maxTokenDecimals bounds decimals so that 10^decimals fits the amount arithmetic.
const maxTokenDecimals = 77

// GetQuoteRequest represents the swap quote request for the /router/quote endpoint.
type GetQuoteRequest struct {
	ChainID   domain.ChainID    `json:"chainId"`
	TokenIn   *domain.Asset     `json:"tokenIn"`
	TokenOut  *domain.Asset     `json:"tokenOut"`
	TradeType *domain.TradeType `json:"tradeType"`
	// InputAmount is the exact amount of token in (exact in) or token out (exact out)
	// in its smallest unit.
	InputAmount string          `json:"inputAmount"`
	Protocol    domain.Protocol `json:"protocol,omitempty"`

	// Optional overrides of the configured limits. Zero keeps the configured value.
	MaxSwapsPerPath int `json:"maxSwapsPerPath,omitempty"`
	MaxSplits       int `json:"maxSplits,omitempty"`
}

// UnmarshalHTTPRequest decodes the JSON body of the request.
func (r *GetQuoteRequest) UnmarshalHTTPRequest(c echo.Context) error {
	body := c.Request().Body
	if body == nil {
		return ErrRequestBodyNotValid
	}

	if err := json.NewDecoder(body).Decode(r); err != nil {
		var tradeTypeErr domain.InvalidTradeTypeError
		if errors.As(err, &tradeTypeErr) {
			return tradeTypeErr
		}
		return ErrRequestBodyNotValid
	}

	return nil
}

// Validate validates the GetQuoteRequest
func (r *GetQuoteRequest) Validate() error {
	if r.ChainID == 0 {
		return ErrChainIDNotSpecified
	}

	if r.TokenIn == nil {
		return ErrTokenInNotSpecified
	}

	if r.TokenOut == nil {
		return ErrTokenOutNotSpecified
	}

	for _, token := range []*domain.Asset{r.TokenIn, r.TokenOut} {
		if strings.TrimSpace(token.Address) == "" {
			return ErrTokenAddressNotSpecified
		}

		if token.Decimals < 0 || token.Decimals > maxTokenDecimals {
			return ErrTokenDecimalsNotValid
		}
	}

	if r.TradeType == nil {
		return ErrTradeTypeNotSpecified
	}

	if _, err := r.parseInputAmount(); err != nil {
		return err
	}

	if r.MaxSwapsPerPath < 0 {
		return ErrMaxSwapsPerPathNotValid
	}

	if r.MaxSplits < 0 {
		return ErrMaxSplitsNotValid
	}

	return nil
}

// ToDomain converts a validated request into a domain quote request.
// Base58 Tron addresses are converted to their hex form.
func (r *GetQuoteRequest) ToDomain() (domain.QuoteRequest, error) {
	amount, err := r.parseInputAmount()
	if err != nil {
		return domain.QuoteRequest{}, err
	}

	tokenIn, err := toDomainAsset(*r.TokenIn)
	if err != nil {
		return domain.QuoteRequest{}, err
	}

	tokenOut, err := toDomainAsset(*r.TokenOut)
	if err != nil {
		return domain.QuoteRequest{}, err
	}

	if err := domain.ValidateInputAssets(tokenIn, tokenOut); err != nil {
		return domain.QuoteRequest{}, err
	}

	var protocols domain.ProtocolSet
	if r.Protocol != "" {
		protocols = domain.NewProtocolSet(domain.Protocol(strings.ToUpper(string(r.Protocol))))
	}

	return domain.QuoteRequest{
		ChainID:         r.ChainID,
		TokenIn:         tokenIn,
		TokenOut:        tokenOut,
		TradeType:       *r.TradeType,
		Amount:          amount,
		Protocols:       protocols,
		MaxSwapsPerPath: r.MaxSwapsPerPath,
		MaxSplits:       r.MaxSplits,
	}, nil
}

func (r *GetQuoteRequest) parseInputAmount() (osmomath.Int, error) {
	amount, ok := osmomath.NewIntFromString(strings.TrimSpace(r.InputAmount))
	if !ok || !amount.IsPositive() {
		return osmomath.Int{}, ErrInputAmountNotValid
	}
	return amount, nil
}

func toDomainAsset(asset domain.Asset) (domain.Asset, error) {
	address, err := domain.TronAddressToHex(asset.Address)
	if err != nil {
		return domain.Asset{}, err
	}

	return domain.NewAsset(address, asset.Decimals, asset.Symbol), nil
}

// GetCandidatePoolsRequest represents the request for the /router/candidate-pools endpoint.
type GetCandidatePoolsRequest struct {
	ChainID  domain.ChainID
	TokenIn  domain.Asset
	TokenOut domain.Asset
}

// UnmarshalHTTPRequest parses the query parameters of the request.
// The chain id defaults to defaultChainID.
func (r *GetCandidatePoolsRequest) UnmarshalHTTPRequest(c echo.Context, defaultChainID domain.ChainID) error {
	chainID, err := domain.ParseChainIDQueryParam(c, defaultChainID)
	if err != nil {
		return err
	}
	r.ChainID = chainID

	tokenIn := c.QueryParam("tokenIn")
	if tokenIn == "" {
		return ErrTokenInQueryNotSpecified
	}

	tokenOut := c.QueryParam("tokenOut")
	if tokenOut == "" {
		return ErrTokenOutQueryNotSpecified
	}

	if r.TokenIn, err = toDomainAsset(domain.Asset{Address: tokenIn}); err != nil {
		return err
	}

	if r.TokenOut, err = toDomainAsset(domain.Asset{Address: tokenOut}); err != nil {
		return err
	}

	if err := domain.ValidateAddress(r.TokenIn.Address); err != nil {
		return err
	}

	if err := domain.ValidateAddress(r.TokenOut.Address); err != nil {
		return err
	}

	return domain.ValidateInputAssets(r.TokenIn, r.TokenOut)
}
