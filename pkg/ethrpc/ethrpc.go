// Package ethrpc talks JSON-RPC 2.0 to an ethereum node. It exposes only
// the handful of methods the daemon needs to build, broadcast and confirm
// legacy transactions; anything else belongs to the calling layer.
package ethrpc

import (
	"math/big"
)

// TransactionReceipt is the decoded result of eth_getTransactionReceipt
type TransactionReceipt struct {
	TxHash      string
	Success     bool
	BlockNumber uint64
	GasUsed     uint64
}

// Service is the representation of an ethereum JSON-RPC endpoint that
// allows to fetch the chain data needed to assemble a transaction and to
// broadcast the signed result.
type Service interface {
	// ChainID returns the EIP155 chain id of the node.
	ChainID() (uint64, error)
	// GetTransactionCount returns the pending nonce of the given address.
	GetTransactionCount(address string) (uint64, error)
	// EstimateGas returns the gas estimate for the given call. The data
	// passed here must be the exact payload the final transaction will
	// carry, estimating with a different payload yields an unusable limit.
	EstimateGas(from, to string, value *big.Int, data []byte) (uint64, error)
	// GasPrice returns the node's legacy gas price suggestion in wei.
	GasPrice() (*big.Int, error)
	// GetBalance returns the wei balance of the given address.
	GetBalance(address string) (*big.Int, error)
	// Call performs a read-only eth_call against the latest block and
	// returns the hex encoded result.
	Call(to string, data []byte) (string, error)
	// SendRawTransaction submits a signed raw transaction and returns its
	// hash. A node side rejection surfaces as *Error.
	SendRawTransaction(rawTxHex string) (string, error)
	// GetTransactionReceipt returns the receipt of a transaction, or nil
	// if it is not mined yet.
	GetTransactionReceipt(txHash string) (*TransactionReceipt, error)
}
