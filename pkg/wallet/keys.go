package wallet

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

// AccountInfo gathers the derived identity of a single account. Address and
// private key are caches of a derivation, the mnemonic remains the only
// authoritative secret.
type AccountInfo struct {
	AccountIndex uint32
	Address      string
	PrivateKey   string
}

// DeriveAccountKeyOpts is the struct given to the DeriveAccountKey method
type DeriveAccountKeyOpts struct {
	AccountIndex uint32
}

func (o DeriveAccountKeyOpts) validate() error {
	if o.AccountIndex > MaxHardenedValue {
		return ErrOutOfRangeDerivationPathAccount
	}
	return nil
}

// DeriveAccountKey derives the private key at m/44'/60'/0'/0/{accountIndex}.
// The derivation is deterministic, the same (mnemonic, index) pair always
// yields the same key.
func (w *Wallet) DeriveAccountKey(opts DeriveAccountKeyOpts) (
	*btcec.PrivateKey,
	error,
) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := w.validate(); err != nil {
		return nil, err
	}

	hdNode, err := hdkeychain.NewKeyFromString(
		base58.Encode(w.masterKey),
	)
	if err != nil {
		return nil, err
	}

	child, err := hdNode.Derive(opts.AccountIndex)
	if err != nil {
		return nil, err
	}

	return child.ECPrivKey()
}

// DeriveAccountAddress derives the account key for the given index and
// returns the ethereum address of its public key.
func (w *Wallet) DeriveAccountAddress(opts DeriveAccountKeyOpts) (string, error) {
	prvkey, err := w.DeriveAccountKey(opts)
	if err != nil {
		return "", err
	}
	return AddressFromPublicKey(prvkey.PubKey()), nil
}

// DeriveAllAccountsOpts is the struct given to the DeriveAllAccounts method
type DeriveAllAccountsOpts struct {
	MaxAccounts uint32
}

// DeriveAllAccounts derives the identities of the accounts with indexes in
// [0, maxAccounts). If one derivation fails internally the successfully
// derived prefix is returned instead of failing the whole batch. This is a
// defensive fallback, not a correctness guarantee: hdkeychain derivation
// fails only for the ~1/2^127 child keys falling out of the curve order.
func (w *Wallet) DeriveAllAccounts(opts DeriveAllAccountsOpts) ([]AccountInfo, error) {
	if err := w.validate(); err != nil {
		return nil, err
	}

	accounts := make([]AccountInfo, 0, opts.MaxAccounts)
	for index := uint32(0); index < opts.MaxAccounts; index++ {
		prvkey, err := w.DeriveAccountKey(DeriveAccountKeyOpts{
			AccountIndex: index,
		})
		if err != nil {
			return accounts, nil
		}
		accounts = append(accounts, AccountInfo{
			AccountIndex: index,
			Address:      AddressFromPublicKey(prvkey.PubKey()),
			PrivateKey:   hex.EncodeToString(prvkey.Serialize()),
		})
	}
	return accounts, nil
}
