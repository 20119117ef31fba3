// Package abiutil encodes the calldata payloads of the token transfer
// methods consumed by the transaction builder. Only the two fixed-shape
// calls the daemon emits are supported, there is no generic ABI machinery.
package abiutil

import (
	"errors"
	"math/big"

	"github.com/ethvault-network/ethvault-daemon/pkg/ethtx"
	"github.com/ethvault-network/ethvault-daemon/pkg/mathutil"
)

var (
	// ErrInvalidAmount ...
	ErrInvalidAmount = errors.New(
		"token amount must be a non-negative decimal within 256 bits",
	)
	// ErrInvalidTokenID ...
	ErrInvalidTokenID = errors.New(
		"token id must be a non-negative integer within 256 bits",
	)
)

var (
	// erc20TransferSelector is the first 4 bytes of
	// keccak256("transfer(address,uint256)")
	erc20TransferSelector = []byte{0xa9, 0x05, 0x9c, 0xbb}
	// erc721TransferFromSelector is the first 4 bytes of
	// keccak256("transferFrom(address,address,uint256)")
	erc721TransferFromSelector = []byte{0x23, 0xb8, 0x72, 0xdd}
	// erc20DecimalsSelector is the first 4 bytes of keccak256("decimals()")
	erc20DecimalsSelector = []byte{0x31, 0x3c, 0xe5, 0x67}
)

const wordSize = 32

// EncodeERC20Transfer returns the calldata of an ERC20 transfer(to, amount)
// call. The amount is a decimal string converted to integer token units with
// the given number of decimals, truncating any excess precision.
func EncodeERC20Transfer(to, amount string, decimals int) ([]byte, error) {
	toBytes, err := ethtx.ParseAddress(to)
	if err != nil {
		return nil, err
	}
	units, err := mathutil.ToBaseUnits(amount, decimals)
	if err != nil {
		return nil, ErrInvalidAmount
	}
	if units.BitLen() > 8*wordSize {
		return nil, ErrInvalidAmount
	}

	data := make([]byte, 0, 4+2*wordSize)
	data = append(data, erc20TransferSelector...)
	data = append(data, leftPadWord(toBytes)...)
	data = append(data, leftPadWord(units.Bytes())...)
	return data, nil
}

// EncodeERC721TransferFrom returns the calldata of an ERC721
// transferFrom(from, to, tokenId) call. The token id is a decimal integer
// string, fractional ids are rejected rather than truncated.
func EncodeERC721TransferFrom(from, to, tokenID string) ([]byte, error) {
	fromBytes, err := ethtx.ParseAddress(from)
	if err != nil {
		return nil, err
	}
	toBytes, err := ethtx.ParseAddress(to)
	if err != nil {
		return nil, err
	}
	id, ok := new(big.Int).SetString(tokenID, 10)
	if !ok || id.Sign() < 0 || id.BitLen() > 8*wordSize {
		return nil, ErrInvalidTokenID
	}

	data := make([]byte, 0, 4+3*wordSize)
	data = append(data, erc721TransferFromSelector...)
	data = append(data, leftPadWord(fromBytes)...)
	data = append(data, leftPadWord(toBytes)...)
	data = append(data, leftPadWord(id.Bytes())...)
	return data, nil
}

// EncodeERC20Decimals returns the calldata of a decimals() call, used
// through eth_call to learn the unit scaling of a token contract.
func EncodeERC20Decimals() []byte {
	data := make([]byte, 4)
	copy(data, erc20DecimalsSelector)
	return data
}

func leftPadWord(b []byte) []byte {
	word := make([]byte, wordSize)
	copy(word[wordSize-len(b):], b)
	return word
}
