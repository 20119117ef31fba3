package ethtx

import (
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRlpEncodeBytes(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{"empty string", []byte{}, "80"},
		{"single low byte", []byte{0x0f}, "0f"},
		{"single zero byte", []byte{0x00}, "00"},
		{"single high byte", []byte{0x80}, "8180"},
		{"dog", []byte("dog"), "83646f67"},
		{
			"55 bytes",
			[]byte(strings.Repeat("a", 55)),
			"b7" + strings.Repeat("61", 55),
		},
		{
			"56 bytes takes the long form",
			[]byte(strings.Repeat("a", 56)),
			"b838" + strings.Repeat("61", 56),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, hex.EncodeToString(rlpEncodeBytes(tt.input)))
		})
	}
}

func TestRlpEncodeList(t *testing.T) {
	catDog := rlpEncodeList(
		rlpEncodeBytes([]byte("cat")),
		rlpEncodeBytes([]byte("dog")),
	)
	assert.Equal(t, "c88363617483646f67", hex.EncodeToString(catDog))

	empty := rlpEncodeList()
	assert.Equal(t, "c0", hex.EncodeToString(empty))
}

func TestRlpEncodeUint(t *testing.T) {
	tests := []struct {
		input    uint64
		expected string
	}{
		{0, "80"},
		{15, "0f"},
		{1024, "820400"},
		{21000, "825208"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, hex.EncodeToString(rlpEncodeUint(tt.input)))
	}
}

func TestRlpEncodeBig(t *testing.T) {
	gasPrice, _ := new(big.Int).SetString("20000000000", 10)

	tests := []struct {
		input    *big.Int
		expected string
	}{
		{nil, "80"},
		{big.NewInt(0), "80"},
		{big.NewInt(1024), "820400"},
		{gasPrice, "8504a817c800"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, hex.EncodeToString(rlpEncodeBig(tt.input)))
	}
}
