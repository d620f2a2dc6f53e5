package domain

import (
	"encoding/hex"
	"strings"
)

// Asset is a fungible token identified by its chain-qualified address.
// Two assets are equal iff their addresses are equal ignoring case.
type Asset struct {
	Address  string `json:"address"`
	Decimals int    `json:"decimals"`
	Symbol   string `json:"symbol,omitempty"`
}

// NewAsset returns an asset with a normalized address.
func NewAsset(address string, decimals int, symbol string) Asset {
	return Asset{
		Address:  NormalizeAddress(address),
		Decimals: decimals,
		Symbol:   symbol,
	}
}

// Equal returns true if both assets have the same address.
func (a Asset) Equal(other Asset) bool {
	return NormalizeAddress(a.Address) == NormalizeAddress(other.Address)
}

// IsZero returns true if the asset has no address.
func (a Asset) IsZero() bool {
	return a.Address == ""
}

// String implements fmt.Stringer.
func (a Asset) String() string {
	if a.Symbol != "" {
		return a.Symbol
	}
	return a.Address
}

// NormalizeAddress lower-cases and trims the given address.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// ValidateAddress checks that the address is well-formed.
// Hex addresses must be 0x-prefixed with 40 hex characters (EVM) or
// 41-prefixed with 40 hex characters (Tron hex form).
func ValidateAddress(address string) error {
	address = NormalizeAddress(address)
	if address == "" {
		return InvalidAssetAddressError{Address: address}
	}

	switch {
	case strings.HasPrefix(address, "0x"):
		return validateHexBody(address, address[2:])
	case strings.HasPrefix(address, "41") && len(address) == 42:
		return validateHexBody(address, address[2:])
	default:
		return InvalidAssetAddressError{Address: address}
	}
}

func validateHexBody(address, body string) error {
	if len(body) != 40 {
		return InvalidAssetAddressError{Address: address}
	}
	if _, err := hex.DecodeString(body); err != nil {
		return InvalidAssetAddressError{Address: address}
	}
	return nil
}
