package application

import (
	"context"
	"math/big"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ethvault-network/ethvault-daemon/internal/core/domain"
	"github.com/ethvault-network/ethvault-daemon/pkg/ethrpc"
	"github.com/ethvault-network/ethvault-daemon/pkg/wallet"
)

// VaultInfo is the public view of a stored vault. It carries no secret
// material.
type VaultInfo struct {
	ID        string
	Address   string
	CreatedAt time.Time
}

type AccountService interface {
	GenSeed(ctx context.Context) ([]string, error)
	InitWallet(
		ctx context.Context,
		mnemonic []string,
		passphrase string,
	) (*VaultInfo, error)
	UnlockWallet(ctx context.Context, address, passphrase string) error
	ChangePassphrase(
		ctx context.Context,
		address, currentPassphrase, newPassphrase string,
	) error
	ListVaults(ctx context.Context) ([]VaultInfo, error)
	ListAccounts(
		ctx context.Context, address, passphrase string,
	) ([]wallet.AccountInfo, error)
	DeriveNextAccount(
		ctx context.Context, address, passphrase string,
	) (*wallet.AccountInfo, error)
	GetBalance(ctx context.Context, address string) (*big.Int, error)
	DeleteVault(ctx context.Context, address, passphrase string) error
}

type accountService struct {
	vaultRepository domain.VaultRepository
	rpcService      ethrpc.Service
	kdfIterations   int
	maxAccounts     uint32
}

// NewAccountService returns an AccountService backed by the given repository
// and RPC endpoint. New vaults are encrypted with kdfIterations rounds and
// can derive up to maxAccounts accounts each.
func NewAccountService(
	vaultRepository domain.VaultRepository,
	rpcService ethrpc.Service,
	kdfIterations int,
	maxAccounts uint32,
) AccountService {
	return &accountService{
		vaultRepository: vaultRepository,
		rpcService:      rpcService,
		kdfIterations:   kdfIterations,
		maxAccounts:     maxAccounts,
	}
}

func (s *accountService) GenSeed(ctx context.Context) ([]string, error) {
	return wallet.NewMnemonic(wallet.NewMnemonicOpts{EntropySize: 256})
}

func (s *accountService) InitWallet(
	ctx context.Context,
	mnemonic []string,
	passphrase string,
) (*VaultInfo, error) {
	if len(mnemonic) <= 0 {
		return nil, ErrNullMnemonic
	}
	if len(passphrase) <= 0 {
		return nil, ErrNullPassphrase
	}

	vault, err := domain.NewVault(mnemonic, passphrase, s.kdfIterations)
	if err != nil {
		return nil, err
	}

	if err := s.vaultRepository.AddVault(ctx, vault); err != nil {
		return nil, err
	}

	log.Infof("wallet initialized with address %s", vault.Address)
	return vaultInfo(vault), nil
}

func (s *accountService) UnlockWallet(
	ctx context.Context, address, passphrase string,
) error {
	vault, err := s.getVault(ctx, address, passphrase)
	if err != nil {
		return err
	}

	if _, err := vault.Unlock(passphrase); err != nil {
		return err
	}

	log.Debugf("wallet %s unlocked", vault.Address)
	return nil
}

func (s *accountService) ChangePassphrase(
	ctx context.Context,
	address, currentPassphrase, newPassphrase string,
) error {
	if len(newPassphrase) <= 0 {
		return ErrNullPassphrase
	}
	vault, err := s.getVault(ctx, address, currentPassphrase)
	if err != nil {
		return err
	}

	return s.vaultRepository.UpdateVault(
		ctx, vault.ID,
		func(v *domain.Vault) (*domain.Vault, error) {
			if err := v.ChangePassphrase(
				currentPassphrase, newPassphrase,
			); err != nil {
				return nil, err
			}
			return v, nil
		},
	)
}

func (s *accountService) ListVaults(ctx context.Context) ([]VaultInfo, error) {
	vaults, err := s.vaultRepository.ListVaults(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]VaultInfo, 0, len(vaults))
	for i := range vaults {
		list = append(list, *vaultInfo(&vaults[i]))
	}
	return list, nil
}

func (s *accountService) ListAccounts(
	ctx context.Context, address, passphrase string,
) ([]wallet.AccountInfo, error) {
	vault, err := s.getVault(ctx, address, passphrase)
	if err != nil {
		return nil, err
	}

	return vault.ListAccounts(passphrase)
}

func (s *accountService) DeriveNextAccount(
	ctx context.Context, address, passphrase string,
) (*wallet.AccountInfo, error) {
	vault, err := s.getVault(ctx, address, passphrase)
	if err != nil {
		return nil, err
	}
	if vault.NextAccountIndex >= s.maxAccounts {
		return nil, ErrMaxAccountsReached
	}

	var account *wallet.AccountInfo
	if err := s.vaultRepository.UpdateVault(
		ctx, vault.ID,
		func(v *domain.Vault) (*domain.Vault, error) {
			account, err = v.DeriveNextAccount(passphrase)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
	); err != nil {
		return nil, err
	}

	log.Infof(
		"derived account %d with address %s",
		account.AccountIndex, account.Address,
	)
	return account, nil
}

func (s *accountService) GetBalance(
	ctx context.Context, address string,
) (*big.Int, error) {
	if len(address) <= 0 {
		return nil, ErrNullAddress
	}
	return s.rpcService.GetBalance(address)
}

func (s *accountService) DeleteVault(
	ctx context.Context, address, passphrase string,
) error {
	vault, err := s.getVault(ctx, address, passphrase)
	if err != nil {
		return err
	}
	// deleting a vault destroys the encrypted mnemonic, require the
	// passphrase as proof of ownership
	if _, err := vault.Unlock(passphrase); err != nil {
		return err
	}

	if err := s.vaultRepository.DeleteVault(ctx, vault.ID); err != nil {
		return err
	}

	log.Infof("vault for address %s deleted", vault.Address)
	return nil
}

func (s *accountService) getVault(
	ctx context.Context, address, passphrase string,
) (*domain.Vault, error) {
	if len(address) <= 0 {
		return nil, ErrNullAddress
	}
	if len(passphrase) <= 0 {
		return nil, ErrNullPassphrase
	}
	return s.vaultRepository.GetVaultByAddress(ctx, address)
}

func vaultInfo(v *domain.Vault) *VaultInfo {
	return &VaultInfo{
		ID:        v.ID.String(),
		Address:   v.Address,
		CreatedAt: v.CreatedAt,
	}
}
