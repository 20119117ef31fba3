package application

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	log "github.com/sirupsen/logrus"

	"github.com/ethvault-network/ethvault-daemon/pkg/abiutil"
	"github.com/ethvault-network/ethvault-daemon/pkg/confirmer"
	"github.com/ethvault-network/ethvault-daemon/pkg/ethrpc"
	"github.com/ethvault-network/ethvault-daemon/pkg/ethtx"
	"github.com/ethvault-network/ethvault-daemon/pkg/mathutil"
	"github.com/ethvault-network/ethvault-daemon/pkg/wallet"
)

// SendEtherOpts is the struct given to the SendEther method
type SendEtherOpts struct {
	PrivateKey string
	To         string
	Amount     string
}

func (o SendEtherOpts) validate() error {
	if len(o.PrivateKey) <= 0 {
		return ErrNullPrivateKey
	}
	if _, err := ethtx.ParseAddress(o.To); err != nil {
		return err
	}
	if len(o.Amount) <= 0 {
		return ErrNullAmount
	}
	return nil
}

// SendTokenOpts is the struct given to the SendToken method. Decimals may be
// left to zero to have the token contract queried for its decimals() value.
type SendTokenOpts struct {
	PrivateKey   string
	TokenAddress string
	To           string
	Amount       string
	Decimals     int
}

func (o SendTokenOpts) validate() error {
	if len(o.PrivateKey) <= 0 {
		return ErrNullPrivateKey
	}
	if len(o.TokenAddress) <= 0 {
		return ErrNullTokenAddress
	}
	if _, err := ethtx.ParseAddress(o.TokenAddress); err != nil {
		return err
	}
	if _, err := ethtx.ParseAddress(o.To); err != nil {
		return err
	}
	if len(o.Amount) <= 0 {
		return ErrNullAmount
	}
	return nil
}

// SendNFTOpts is the struct given to the SendNFT method
type SendNFTOpts struct {
	PrivateKey   string
	TokenAddress string
	To           string
	TokenID      string
}

func (o SendNFTOpts) validate() error {
	if len(o.PrivateKey) <= 0 {
		return ErrNullPrivateKey
	}
	if len(o.TokenAddress) <= 0 {
		return ErrNullTokenAddress
	}
	if _, err := ethtx.ParseAddress(o.TokenAddress); err != nil {
		return err
	}
	if _, err := ethtx.ParseAddress(o.To); err != nil {
		return err
	}
	if len(o.TokenID) <= 0 {
		return ErrNullTokenID
	}
	return nil
}

type TransferService interface {
	SendEther(ctx context.Context, opts SendEtherOpts) (string, error)
	SendToken(ctx context.Context, opts SendTokenOpts) (string, error)
	SendNFT(ctx context.Context, opts SendNFTOpts) (string, error)
	GetTransactionStatus(
		ctx context.Context, txHash string,
	) (*ethrpc.TransactionReceipt, error)
}

type transferService struct {
	rpcService       ethrpc.Service
	confirmerService confirmer.Service
	chainID          uint64
}

// NewTransferService returns a TransferService signing for the given chain
// id. The id is checked against the node once at startup, a mismatch here
// would make every produced signature invalid for the connected chain.
func NewTransferService(
	rpcService ethrpc.Service,
	confirmerService confirmer.Service,
	chainID uint64,
) (TransferService, error) {
	nodeChainID, err := rpcService.ChainID()
	if err != nil {
		return nil, err
	}
	if nodeChainID != chainID {
		return nil, fmt.Errorf(
			"configured chain id %d does not match node chain id %d",
			chainID, nodeChainID,
		)
	}

	return &transferService{
		rpcService:       rpcService,
		confirmerService: confirmerService,
		chainID:          chainID,
	}, nil
}

func (s *transferService) SendEther(
	ctx context.Context, opts SendEtherOpts,
) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}

	prvkey, from, err := parseSender(opts.PrivateKey)
	if err != nil {
		return "", err
	}
	value, err := mathutil.ToWei(opts.Amount)
	if err != nil {
		return "", err
	}

	return s.broadcast(prvkey, from, opts.To, value, nil)
}

func (s *transferService) SendToken(
	ctx context.Context, opts SendTokenOpts,
) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}

	prvkey, from, err := parseSender(opts.PrivateKey)
	if err != nil {
		return "", err
	}

	decimals := opts.Decimals
	if decimals <= 0 {
		decimals, err = s.fetchTokenDecimals(opts.TokenAddress)
		if err != nil {
			return "", err
		}
	}

	data, err := abiutil.EncodeERC20Transfer(opts.To, opts.Amount, decimals)
	if err != nil {
		return "", err
	}

	// the value of a token transfer is carried by the calldata, the ether
	// value of the transaction itself is zero
	return s.broadcast(prvkey, from, opts.TokenAddress, big.NewInt(0), data)
}

func (s *transferService) SendNFT(
	ctx context.Context, opts SendNFTOpts,
) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}

	prvkey, from, err := parseSender(opts.PrivateKey)
	if err != nil {
		return "", err
	}

	data, err := abiutil.EncodeERC721TransferFrom(from, opts.To, opts.TokenID)
	if err != nil {
		return "", err
	}

	return s.broadcast(prvkey, from, opts.TokenAddress, big.NewInt(0), data)
}

func (s *transferService) GetTransactionStatus(
	ctx context.Context, txHash string,
) (*ethrpc.TransactionReceipt, error) {
	if len(txHash) <= 0 {
		return nil, ErrNullTxHash
	}
	return s.rpcService.GetTransactionReceipt(txHash)
}

// broadcast assembles, signs and submits a legacy transaction. The chain
// data is fetched only after every local input has been validated, and the
// gas estimate is taken with the exact payload the final transaction carries.
func (s *transferService) broadcast(
	prvkey *btcec.PrivateKey,
	from, to string,
	value *big.Int,
	data []byte,
) (string, error) {
	nonce, err := s.rpcService.GetTransactionCount(from)
	if err != nil {
		return "", err
	}
	log.Debugf("using nonce %d for address %s", nonce, from)

	gasLimit, err := s.rpcService.EstimateGas(from, to, value, data)
	if err != nil {
		return "", err
	}
	gasPrice, err := s.rpcService.GasPrice()
	if err != nil {
		return "", err
	}
	log.Debugf("estimated gas %d at price %s wei", gasLimit, gasPrice)

	tx, err := ethtx.NewTransaction(ethtx.NewTransactionOpts{
		Nonce:    nonce,
		GasPrice: gasPrice,
		GasLimit: gasLimit,
		To:       to,
		Value:    value,
		Data:     data,
		ChainID:  s.chainID,
	})
	if err != nil {
		return "", err
	}

	signedTx, err := tx.Sign(prvkey)
	if err != nil {
		return "", err
	}

	txHash, err := s.rpcService.SendRawTransaction(signedTx.RawHex())
	if err != nil {
		return "", err
	}
	log.Infof("transaction %s broadcasted", txHash)

	if s.confirmerService != nil {
		s.confirmerService.AddObservable(&confirmer.TransactionObservable{
			TxHash: txHash,
		})
	}

	return txHash, nil
}

func (s *transferService) fetchTokenDecimals(tokenAddress string) (int, error) {
	result, err := s.rpcService.Call(
		tokenAddress, abiutil.EncodeERC20Decimals(),
	)
	if err != nil {
		return 0, err
	}

	trimmed := strings.TrimPrefix(result, "0x")
	if len(trimmed) == 0 {
		return 0, ErrInvalidTokenDecimals
	}
	decimals, ok := new(big.Int).SetString(trimmed, 16)
	if !ok || !decimals.IsUint64() || decimals.Uint64() > 255 {
		return 0, ErrInvalidTokenDecimals
	}

	return int(decimals.Uint64()), nil
}

func parseSender(privateKey string) (*btcec.PrivateKey, string, error) {
	prvkey, err := wallet.ParsePrivateKey(privateKey)
	if err != nil {
		return nil, "", err
	}
	return prvkey, wallet.AddressFromPublicKey(prvkey.PubKey()), nil
}
