package ethtx

import (
	"math/big"
)

// Recursive Length Prefix, the canonical ethereum serialization. Only the
// encoding side is implemented, transactions are built locally and never
// parsed back.

const (
	rlpShortStringOffset = 0x80
	rlpShortListOffset   = 0xc0
	rlpMaxShortLength    = 55
)

// rlpEncodeBytes encodes a byte string: a single byte below 0x80 is its own
// encoding, short strings get a one byte length prefix, longer ones a
// length-of-length prefix.
func rlpEncodeBytes(b []byte) []byte {
	if len(b) == 1 && b[0] < rlpShortStringOffset {
		return b
	}
	return append(rlpEncodeLength(len(b), rlpShortStringOffset), b...)
}

// rlpEncodeList encodes the concatenation of the already encoded items with
// the list prefix.
func rlpEncodeList(items ...[]byte) []byte {
	payload := make([]byte, 0)
	for _, item := range items {
		payload = append(payload, item...)
	}
	return append(rlpEncodeLength(len(payload), rlpShortListOffset), payload...)
}

func rlpEncodeLength(length, offset int) []byte {
	if length <= rlpMaxShortLength {
		return []byte{byte(offset + length)}
	}
	lenBytes := minimalBigEndian(uint64(length))
	prefix := []byte{byte(offset + rlpMaxShortLength + len(lenBytes))}
	return append(prefix, lenBytes...)
}

// rlpEncodeUint encodes an unsigned integer as a minimal big-endian byte
// string, zero is the empty string.
func rlpEncodeUint(v uint64) []byte {
	if v == 0 {
		return rlpEncodeBytes([]byte{})
	}
	return rlpEncodeBytes(minimalBigEndian(v))
}

// rlpEncodeBig encodes a non-negative big integer the same way.
func rlpEncodeBig(v *big.Int) []byte {
	if v == nil || v.Sign() == 0 {
		return rlpEncodeBytes([]byte{})
	}
	return rlpEncodeBytes(v.Bytes())
}

func minimalBigEndian(v uint64) []byte {
	buf := make([]byte, 0, 8)
	for shift := 56; shift >= 0; shift -= 8 {
		b := byte(v >> uint(shift))
		if len(buf) == 0 && b == 0 {
			continue
		}
		buf = append(buf, b)
	}
	return buf
}
