package ethrpc

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	// ErrMalformedResponse ...
	ErrMalformedResponse = errors.New("malformed json-rpc response")
	// ErrMalformedQuantity ...
	ErrMalformedQuantity = errors.New("quantity must be a 0x-prefixed hex string")
)

// Error is a JSON-RPC error object returned by the node. It is surfaced to
// callers verbatim, the daemon never retries or substitutes defaults.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      uint64        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

// rpcResponse is the tagged decoding of a JSON-RPC envelope: exactly one of
// Result and Error is meaningful. Shape validation happens once here, at
// the boundary.
type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *Error          `json:"error"`
}

// callParams is the transaction-shaped parameter object of eth_estimateGas
// and eth_call.
type callParams struct {
	From  string `json:"from,omitempty"`
	To    string `json:"to,omitempty"`
	Value string `json:"value,omitempty"`
	Data  string `json:"data,omitempty"`
}

type receiptResult struct {
	TransactionHash string `json:"transactionHash"`
	Status          string `json:"status"`
	BlockNumber     string `json:"blockNumber"`
	GasUsed         string `json:"gasUsed"`
}

// parseQuantity decodes a 0x-prefixed hex quantity as an arbitrary
// precision integer. Results never go through a native float.
func parseQuantity(raw json.RawMessage) (*big.Int, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, ErrMalformedResponse
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return nil, ErrMalformedQuantity
	}
	v, ok := new(big.Int).SetString(s[2:], 16)
	if !ok {
		return nil, ErrMalformedQuantity
	}
	return v, nil
}

func parseHexUint64(s string) (uint64, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return 0, ErrMalformedQuantity
	}
	v, ok := new(big.Int).SetString(s[2:], 16)
	if !ok || !v.IsUint64() {
		return 0, ErrMalformedQuantity
	}
	return v.Uint64(), nil
}

func parseString(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", ErrMalformedResponse
	}
	return s, nil
}

// hexQuantity renders an integer in the minimal 0x form the RPC interface
// expects.
func hexQuantity(v *big.Int) string {
	if v == nil || v.Sign() == 0 {
		return "0x0"
	}
	return "0x" + v.Text(16)
}
