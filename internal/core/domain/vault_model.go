package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/ethvault-network/ethvault-daemon/pkg/wallet"
)

// Vault is the persisted form of an HD wallet. The mnemonic is stored only
// encrypted, alongside the KDF parameters needed to derive the key again.
// The plain text mnemonic never touches the repository.
type Vault struct {
	ID                uuid.UUID
	EncryptedMnemonic string
	Salt              string
	KdfIterations     int
	Address           string
	NextAccountIndex  uint32
	CreatedAt         time.Time
}

// NewVault encrypts the provided mnemonic with the passphrase and returns a
// new Vault initialized with the encrypted mnemonic, the KDF salt and the
// address of the first derived account. The Vault is locked by default since
// it never holds the mnemonic in plain text.
func NewVault(
	mnemonic []string, passphrase string, kdfIterations int,
) (*Vault, error) {
	if len(mnemonic) <= 0 || len(passphrase) <= 0 {
		return nil, ErrNullMnemonicOrPassphrase
	}

	w, err := wallet.NewWalletFromMnemonic(wallet.NewWalletFromMnemonicOpts{
		Mnemonic: mnemonic,
	})
	if err != nil {
		return nil, err
	}
	address, err := w.DeriveAccountAddress(wallet.DeriveAccountKeyOpts{
		AccountIndex: 0,
	})
	if err != nil {
		return nil, err
	}

	encryptedMnemonic, salt, err := wallet.Encrypt(wallet.EncryptOpts{
		Mnemonic:   mnemonic,
		Passphrase: passphrase,
		Iterations: kdfIterations,
	})
	if err != nil {
		return nil, err
	}

	return &Vault{
		ID:                uuid.New(),
		EncryptedMnemonic: encryptedMnemonic,
		Salt:              salt,
		KdfIterations:     kdfIterations,
		Address:           address,
		NextAccountIndex:  1,
		CreatedAt:         time.Now(),
	}, nil
}
