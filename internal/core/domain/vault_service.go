package domain

import (
	"encoding/hex"

	"github.com/ethvault-network/ethvault-daemon/pkg/wallet"
)

// IsInitialized returns whether the Vault holds an encrypted mnemonic.
func (v *Vault) IsInitialized() bool {
	return len(v.EncryptedMnemonic) > 0
}

// Unlock attempts to decrypt the mnemonic with the provided passphrase and
// returns the in-memory wallet built from it. The decrypted mnemonic lives
// only in the returned wallet, the Vault itself stays unchanged.
func (v *Vault) Unlock(passphrase string) (*wallet.Wallet, error) {
	mnemonic, err := wallet.Decrypt(wallet.DecryptOpts{
		CypherText: v.EncryptedMnemonic,
		Salt:       v.Salt,
		Passphrase: passphrase,
		Iterations: v.KdfIterations,
	})
	if err != nil {
		return nil, ErrVaultInvalidPassphrase
	}

	return wallet.NewWalletFromMnemonic(wallet.NewWalletFromMnemonicOpts{
		Mnemonic: mnemonic,
	})
}

// ChangePassphrase attempts to decrypt the mnemonic with the current
// passphrase and re-encrypts it with the new one. A fresh salt is generated,
// the old cypher text is discarded.
func (v *Vault) ChangePassphrase(currentPassphrase, newPassphrase string) error {
	if len(newPassphrase) <= 0 {
		return ErrNullMnemonicOrPassphrase
	}

	mnemonic, err := wallet.Decrypt(wallet.DecryptOpts{
		CypherText: v.EncryptedMnemonic,
		Salt:       v.Salt,
		Passphrase: currentPassphrase,
		Iterations: v.KdfIterations,
	})
	if err != nil {
		return ErrVaultInvalidPassphrase
	}

	encryptedMnemonic, salt, err := wallet.Encrypt(wallet.EncryptOpts{
		Mnemonic:   mnemonic,
		Passphrase: newPassphrase,
		Iterations: v.KdfIterations,
	})
	if err != nil {
		return err
	}

	v.EncryptedMnemonic = encryptedMnemonic
	v.Salt = salt
	return nil
}

// DeriveNextAccount unlocks the Vault and derives the account at the next
// unused index, incrementing the account counter.
func (v *Vault) DeriveNextAccount(passphrase string) (*wallet.AccountInfo, error) {
	w, err := v.Unlock(passphrase)
	if err != nil {
		return nil, err
	}

	index := v.NextAccountIndex
	prvkey, err := w.DeriveAccountKey(wallet.DeriveAccountKeyOpts{
		AccountIndex: index,
	})
	if err != nil {
		return nil, err
	}

	v.NextAccountIndex++
	return &wallet.AccountInfo{
		AccountIndex: index,
		Address:      wallet.AddressFromPublicKey(prvkey.PubKey()),
		PrivateKey:   hex.EncodeToString(prvkey.Serialize()),
	}, nil
}

// ListAccounts unlocks the Vault and returns the info of every account
// derived so far.
func (v *Vault) ListAccounts(passphrase string) ([]wallet.AccountInfo, error) {
	w, err := v.Unlock(passphrase)
	if err != nil {
		return nil, err
	}

	return w.DeriveAllAccounts(wallet.DeriveAllAccountsOpts{
		MaxAccounts: v.NextAccountIndex,
	})
}
