package ethtx

import (
	"encoding/hex"
	"errors"
	"math/big"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/ethvault-network/ethvault-daemon/pkg/wallet"
)

var (
	// ErrInvalidAddress ...
	ErrInvalidAddress = errors.New(
		"address must be a 0x-prefixed hex string of exactly 20 bytes",
	)
	// ErrNullGasPrice ...
	ErrNullGasPrice = errors.New("gas price must not be null or negative")
	// ErrNullValue ...
	ErrNullValue = errors.New("value must not be null or negative")
	// ErrNullChainID ...
	ErrNullChainID = errors.New("chain id must not be zero")
	// ErrNullPrivateKey ...
	ErrNullPrivateKey = errors.New("signing private key must not be null")
)

// AddressSize is the length in bytes of an ethereum account address
const AddressSize = 20

// ParseAddress decodes a 0x-prefixed hex address into its 20 byte form.
// Odd-length or wrong-sized strings are rejected, there is no padding for
// addresses.
func ParseAddress(addr string) ([]byte, error) {
	if !strings.HasPrefix(addr, "0x") && !strings.HasPrefix(addr, "0X") {
		return nil, ErrInvalidAddress
	}
	buf, err := hex.DecodeString(strings.ToLower(addr[2:]))
	if err != nil || len(buf) != AddressSize {
		return nil, ErrInvalidAddress
	}
	return buf, nil
}

// Transaction is an unsigned legacy (type-0) transaction. Its signing
// payload is the EIP155 nine elements tuple
// (nonce, gasPrice, gasLimit, to, value, data, chainId, 0, 0).
type Transaction struct {
	nonce    uint64
	gasPrice *big.Int
	gasLimit uint64
	to       []byte
	value    *big.Int
	data     []byte
	chainID  uint64
}

// NewTransactionOpts is the struct given to the NewTransaction method
type NewTransactionOpts struct {
	Nonce    uint64
	GasPrice *big.Int
	GasLimit uint64
	To       string
	Value    *big.Int
	Data     []byte
	ChainID  uint64
}

func (o NewTransactionOpts) validate() error {
	if _, err := ParseAddress(o.To); err != nil {
		return err
	}
	if o.GasPrice == nil || o.GasPrice.Sign() < 0 {
		return ErrNullGasPrice
	}
	if o.Value == nil || o.Value.Sign() < 0 {
		return ErrNullValue
	}
	if o.ChainID == 0 {
		return ErrNullChainID
	}
	return nil
}

// NewTransaction assembles an unsigned legacy transaction. The recipient
// address is validated here, before the caller spends any network round
// trip on fee or nonce lookups.
func NewTransaction(opts NewTransactionOpts) (*Transaction, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	to, _ := ParseAddress(opts.To)

	return &Transaction{
		nonce:    opts.Nonce,
		gasPrice: opts.GasPrice,
		gasLimit: opts.GasLimit,
		to:       to,
		value:    opts.Value,
		data:     opts.Data,
		chainID:  opts.ChainID,
	}, nil
}

// SigningHash returns the Keccak-256 digest of the RLP encoded unsigned
// tuple. Binding the chain id into the hashed payload is what prevents a
// signature from being replayed on another chain (EIP155).
func (t *Transaction) SigningHash() []byte {
	encoded := rlpEncodeList(
		rlpEncodeUint(t.nonce),
		rlpEncodeBig(t.gasPrice),
		rlpEncodeUint(t.gasLimit),
		rlpEncodeBytes(t.to),
		rlpEncodeBig(t.value),
		rlpEncodeBytes(t.data),
		rlpEncodeUint(t.chainID),
		rlpEncodeUint(0),
		rlpEncodeUint(0),
	)
	return wallet.Keccak256(encoded)
}

// Sign signs the transaction hash with the given private key and returns
// the signed transaction with v = recoveryId + chainId*2 + 35.
func (t *Transaction) Sign(prvkey *btcec.PrivateKey) (*SignedTransaction, error) {
	if prvkey == nil {
		return nil, ErrNullPrivateKey
	}

	sig, err := wallet.SignHash(
		wallet.SignHashOpts{Hash: t.SigningHash()},
		prvkey,
	)
	if err != nil {
		return nil, err
	}

	return &SignedTransaction{
		Transaction: t,
		v:           uint64(sig.RecoveryID) + t.chainID*2 + 35,
		r:           new(big.Int).SetBytes(sig.R[:]),
		s:           new(big.Int).SetBytes(sig.S[:]),
	}, nil
}

// SignedTransaction is a legacy transaction carrying an EIP155 signature
type SignedTransaction struct {
	*Transaction
	v uint64
	r *big.Int
	s *big.Int
}

// Serialize returns the RLP encoding of the signed nine elements tuple,
// ready for eth_sendRawTransaction.
func (t *SignedTransaction) Serialize() []byte {
	return rlpEncodeList(
		rlpEncodeUint(t.nonce),
		rlpEncodeBig(t.gasPrice),
		rlpEncodeUint(t.gasLimit),
		rlpEncodeBytes(t.to),
		rlpEncodeBig(t.value),
		rlpEncodeBytes(t.data),
		rlpEncodeUint(t.v),
		rlpEncodeBig(t.r),
		rlpEncodeBig(t.s),
	)
}

// RawHex returns the broadcastable 0x-prefixed hex encoding
func (t *SignedTransaction) RawHex() string {
	return "0x" + hex.EncodeToString(t.Serialize())
}

// Hash returns the transaction hash, the Keccak-256 digest of the signed
// serialization
func (t *SignedTransaction) Hash() string {
	return "0x" + hex.EncodeToString(wallet.Keccak256(t.Serialize()))
}
