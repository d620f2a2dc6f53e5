package domain

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/mr-tron/base58"
)

const (
	// tronAddressPrefix is the first byte of every Tron mainnet address.
	tronAddressPrefix = 0x41

	tronPayloadLen  = 21
	tronChecksumLen = 4
)

// IsTronBase58Address returns true if the address looks like a base58check Tron address (T...).
func IsTronBase58Address(address string) bool {
	address = strings.TrimSpace(address)
	return len(address) == 34 && strings.HasPrefix(address, "T")
}

// TronAddressToHex converts a base58check Tron address into its 41-prefixed hex form.
// Addresses that are not base58 Tron addresses are normalized and returned as is.
func TronAddressToHex(address string) (string, error) {
	if !IsTronBase58Address(address) {
		return NormalizeAddress(address), nil
	}

	decoded, err := base58.Decode(strings.TrimSpace(address))
	if err != nil {
		return "", InvalidAssetAddressError{Address: address}
	}

	if len(decoded) != tronPayloadLen+tronChecksumLen {
		return "", InvalidAssetAddressError{Address: address}
	}

	payload, checksum := decoded[:tronPayloadLen], decoded[tronPayloadLen:]
	if payload[0] != tronAddressPrefix {
		return "", InvalidAssetAddressError{Address: address}
	}

	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	if !bytes.Equal(second[:tronChecksumLen], checksum) {
		return "", InvalidAssetAddressError{Address: address}
	}

	return hex.EncodeToString(payload), nil
}

// TronHexToBase58 converts a 41-prefixed hex Tron address into its base58check form.
func TronHexToBase58(address string) (string, error) {
	payload, err := hex.DecodeString(NormalizeAddress(address))
	if err != nil || len(payload) != tronPayloadLen || payload[0] != tronAddressPrefix {
		return "", InvalidAssetAddressError{Address: address}
	}

	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])

	return base58.Encode(append(payload, second[:tronChecksumLen]...)), nil
}
