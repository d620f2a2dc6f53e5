package domain

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// ParseChainID parses a decimal chain id.
func ParseChainID(chainIDStr string) (ChainID, error) {
	chainID, err := strconv.ParseUint(strings.TrimSpace(chainIDStr), 10, 64)
	if err != nil {
		return 0, InvalidChainIDError{ChainID: chainIDStr}
	}
	return ChainID(chainID), nil
}

// ParseChainIDQueryParam parses the chainId query parameter.
// Returns the default chain id if the parameter is not present.
func ParseChainIDQueryParam(c echo.Context, defaultChainID ChainID) (ChainID, error) {
	chainIDStr := c.QueryParam("chainId")
	if chainIDStr == "" {
		return defaultChainID, nil
	}
	return ParseChainID(chainIDStr)
}

// ParseBooleanQueryParam parses a boolean query parameter.
// Returns false if the parameter is not present.
// Errors if the value is not a valid boolean.
func ParseBooleanQueryParam(c echo.Context, paramName string) (paramValue bool, err error) {
	paramValueStr := c.QueryParam(paramName)
	if paramValueStr != "" {
		paramValue, err = strconv.ParseBool(paramValueStr)
		if err != nil {
			return false, err
		}
	}

	return paramValue, nil
}

// ValidateInputAssets returns nil if the two assets can be traded against each other.
// Token in must not equal token out for quotes.
func ValidateInputAssets(assetA, assetB Asset) error {
	if assetA.Equal(assetB) {
		return SameAssetError{
			AssetA: assetA.Address,
			AssetB: assetB.Address,
		}
	}

	return nil
}
