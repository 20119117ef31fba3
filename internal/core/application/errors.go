package application

import "errors"

var (
	// ErrNullMnemonic ...
	ErrNullMnemonic = errors.New("mnemonic must not be null")
	// ErrNullPassphrase ...
	ErrNullPassphrase = errors.New("passphrase must not be null")
	// ErrNullAddress ...
	ErrNullAddress = errors.New("address must not be null")
	// ErrNullPrivateKey ...
	ErrNullPrivateKey = errors.New("private key must not be null")
	// ErrNullAmount ...
	ErrNullAmount = errors.New("amount must not be null")
	// ErrNullTokenAddress ...
	ErrNullTokenAddress = errors.New("token contract address must not be null")
	// ErrNullTokenID ...
	ErrNullTokenID = errors.New("token id must not be null")
	// ErrNullTxHash ...
	ErrNullTxHash = errors.New("transaction hash must not be null")
	// ErrInvalidTokenDecimals is thrown when the token contract returns a
	// malformed decimals() payload
	ErrInvalidTokenDecimals = errors.New("could not read token decimals")
	// ErrMaxAccountsReached is thrown when deriving one more account would
	// exceed the configured account limit
	ErrMaxAccountsReached = errors.New("max number of derived accounts reached")
)
