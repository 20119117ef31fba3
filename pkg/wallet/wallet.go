package wallet

import (
	"errors"
)

var (
	// ErrNullMnemonic ...
	ErrNullMnemonic = errors.New("mnemonic is null")
	// ErrNullPassphrase ...
	ErrNullPassphrase = errors.New("passphrase must not be null")
	// ErrNullPlainText ...
	ErrNullPlainText = errors.New("text to encrypt must not be null")
	// ErrNullCypherText ...
	ErrNullCypherText = errors.New("cypher to decrypt must not be null")
	// ErrNullSalt ...
	ErrNullSalt = errors.New("salt must not be null")
	// ErrNullMasterKey ...
	ErrNullMasterKey = errors.New("signing master key is null")
	// ErrNullDerivationPath ...
	ErrNullDerivationPath = errors.New("derivation path must not be null")
	// ErrNullHash ...
	ErrNullHash = errors.New("hash to sign must be exactly 32 bytes")

	// ErrInvalidMnemonic is returned whenever a mnemonic does not pass the
	// BIP39 wordlist/checksum validation.
	ErrInvalidMnemonic = errors.New("mnemonic is invalid")
	// ErrInvalidEntropySize ...
	ErrInvalidEntropySize = errors.New(
		"entropy size must be a multiple of 32 in the range [128,256]",
	)
	// ErrInvalidKey is returned whenever a private key is not a valid
	// scalar in the range [1, N-1] of the secp256k1 group order.
	ErrInvalidKey = errors.New("private key is out of the valid scalar range")
	// ErrInvalidPassword is returned whenever the decryption of a vault
	// record does not yield a valid mnemonic. A wrong passphrase is
	// indistinguishable from a corrupted record.
	ErrInvalidPassword = errors.New("password is invalid")
	// ErrInvalidSalt ...
	ErrInvalidSalt = errors.New("salt must be in hex format")
	// ErrInvalidCypherText ...
	ErrInvalidCypherText = errors.New("cypher must be in base64 format")
	// ErrInvalidDerivationPath ...
	ErrInvalidDerivationPath = errors.New("invalid derivation path")
	// ErrMalformedDerivationPath ...
	ErrMalformedDerivationPath = errors.New(
		"path must not start or end with a '/' and " +
			"can optionally start with 'm/' for absolute paths",
	)
	// ErrOutOfRangeDerivationPathAccount ...
	ErrOutOfRangeDerivationPathAccount = errors.New(
		"account index must be in the non-hardened range [0, 2^31-1]",
	)
)

// Wallet data structure allows to create a new wallet from a mnemonic,
// derive account keys and addresses along the ethereum BIP44 path and sign
// transaction hashes with the derived keys.
type Wallet struct {
	mnemonic  []string
	masterKey []byte
}

// NewWalletOpts is the struct given to the NewWallet method
type NewWalletOpts struct {
	EntropySize int
}

func (o NewWalletOpts) validate() error {
	if o.EntropySize < 128 || o.EntropySize > 256 || o.EntropySize%32 != 0 {
		return ErrInvalidEntropySize
	}
	return nil
}

// NewWallet creates a new wallet with a freshly generated mnemonic
func NewWallet(opts NewWalletOpts) (*Wallet, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	mnemonic, err := generateMnemonic(opts.EntropySize)
	if err != nil {
		return nil, err
	}
	seed := generateSeedFromMnemonic(mnemonic)
	masterKey, err := generateMasterKey(seed, DefaultBaseDerivationPath)
	if err != nil {
		return nil, err
	}

	return &Wallet{
		mnemonic:  mnemonic,
		masterKey: masterKey,
	}, nil
}

// NewWalletFromMnemonicOpts is the struct given to the NewWalletFromMnemonic method
type NewWalletFromMnemonicOpts struct {
	Mnemonic []string
}

func (o NewWalletFromMnemonicOpts) validate() error {
	if len(o.Mnemonic) <= 0 {
		return ErrNullMnemonic
	}
	if !isMnemonicValid(o.Mnemonic) {
		return ErrInvalidMnemonic
	}
	return nil
}

// NewWalletFromMnemonic restores a wallet from an existing mnemonic. The
// mnemonic must pass the BIP39 checksum validation before any derivation is
// attempted.
func NewWalletFromMnemonic(opts NewWalletFromMnemonicOpts) (*Wallet, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	seed := generateSeedFromMnemonic(opts.Mnemonic)
	masterKey, err := generateMasterKey(seed, DefaultBaseDerivationPath)
	if err != nil {
		return nil, err
	}

	return &Wallet{
		mnemonic:  opts.Mnemonic,
		masterKey: masterKey,
	}, nil
}

func (w *Wallet) validate() error {
	if len(w.masterKey) <= 0 {
		return ErrNullMasterKey
	}
	if len(w.mnemonic) <= 0 {
		return ErrNullMnemonic
	}
	if !isMnemonicValid(w.mnemonic) {
		return ErrInvalidMnemonic
	}
	return nil
}

// Mnemonic is the getter for the wallet's mnemonic
func (w *Wallet) Mnemonic() ([]string, error) {
	if err := w.validate(); err != nil {
		return nil, err
	}
	return w.mnemonic, nil
}
