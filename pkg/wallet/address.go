package wallet

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
)

const privateKeySize = 32

// ParsePrivateKey decodes a private key from its hex representation, with
// or without the 0x prefix. Keys shorter than 32 bytes are left-padded with
// zero bytes before validation. A key that is not a valid scalar in
// [1, N-1] is rejected with ErrInvalidKey rather than silently reduced to a
// different scalar.
func ParsePrivateKey(keyHex string) (*btcec.PrivateKey, error) {
	keyHex = strings.TrimPrefix(strings.ToLower(keyHex), "0x")
	if len(keyHex)%2 != 0 {
		keyHex = "0" + keyHex
	}
	buf, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, ErrInvalidKey
	}
	if len(buf) <= 0 || len(buf) > privateKeySize {
		return nil, ErrInvalidKey
	}

	padded := make([]byte, privateKeySize)
	copy(padded[privateKeySize-len(buf):], buf)

	scalar := new(big.Int).SetBytes(padded)
	if scalar.Sign() == 0 || scalar.Cmp(btcec.S256().N) >= 0 {
		return nil, ErrInvalidKey
	}

	prvkey, _ := btcec.PrivKeyFromBytes(padded)
	return prvkey, nil
}

// AddressFromPublicKey returns the ethereum address of the given public
// key: the low 20 bytes of the Keccak-256 digest of the uncompressed point,
// 0x-prefixed lowercase hex.
func AddressFromPublicKey(pubkey *btcec.PublicKey) string {
	hash := Keccak256(pubkey.SerializeUncompressed()[1:])
	return "0x" + hex.EncodeToString(hash[12:])
}

// AddressFromPrivateKey derives the ethereum address controlled by the
// given hex encoded private key.
func AddressFromPrivateKey(keyHex string) (string, error) {
	prvkey, err := ParsePrivateKey(keyHex)
	if err != nil {
		return "", err
	}
	return AddressFromPublicKey(prvkey.PubKey()), nil
}

// IsValidAddress returns whether the given string is a well formed
// 0x-prefixed 20 byte hex address.
func IsValidAddress(addr string) bool {
	if !strings.HasPrefix(addr, "0x") && !strings.HasPrefix(addr, "0X") {
		return false
	}
	buf, err := hex.DecodeString(addr[2:])
	return err == nil && len(buf) == 20
}
