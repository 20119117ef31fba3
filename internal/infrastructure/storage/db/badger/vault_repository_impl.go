package dbbadger

import (
	"context"

	"github.com/google/uuid"
	"github.com/timshannon/badgerhold/v4"

	"github.com/ethvault-network/ethvault-daemon/internal/core/domain"
)

type vaultRepositoryImpl struct {
	db *DbManager
}

// NewVaultRepositoryImpl returns a badger implementation of the
// domain.VaultRepository interface.
func NewVaultRepositoryImpl(db *DbManager) domain.VaultRepository {
	return vaultRepositoryImpl{
		db: db,
	}
}

func (v vaultRepositoryImpl) AddVault(
	ctx context.Context, vault *domain.Vault,
) error {
	if existing, _ := v.getVaultByAddress(vault.Address); existing != nil {
		return domain.ErrVaultAlreadyExists
	}

	if err := v.db.VaultStore.Insert(vault.ID, vault); err != nil {
		if err == badgerhold.ErrKeyExists {
			return domain.ErrVaultAlreadyExists
		}
		return err
	}
	return nil
}

func (v vaultRepositoryImpl) GetVault(
	ctx context.Context, id uuid.UUID,
) (*domain.Vault, error) {
	return v.getVault(id)
}

func (v vaultRepositoryImpl) GetVaultByAddress(
	ctx context.Context, address string,
) (*domain.Vault, error) {
	vault, err := v.getVaultByAddress(address)
	if err != nil {
		return nil, err
	}
	if vault == nil {
		return nil, domain.ErrVaultNotFound
	}
	return vault, nil
}

func (v vaultRepositoryImpl) ListVaults(
	ctx context.Context,
) ([]domain.Vault, error) {
	vaults := []domain.Vault{}
	if err := v.db.VaultStore.Find(&vaults, nil); err != nil {
		return nil, err
	}
	return vaults, nil
}

func (v vaultRepositoryImpl) UpdateVault(
	ctx context.Context,
	id uuid.UUID,
	updateFn func(vault *domain.Vault) (*domain.Vault, error),
) error {
	vault, err := v.getVault(id)
	if err != nil {
		return err
	}

	updatedVault, err := updateFn(vault)
	if err != nil {
		return err
	}

	return v.db.VaultStore.Update(id, updatedVault)
}

func (v vaultRepositoryImpl) DeleteVault(
	ctx context.Context, id uuid.UUID,
) error {
	if err := v.db.VaultStore.Delete(id, &domain.Vault{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return domain.ErrVaultNotFound
		}
		return err
	}
	return nil
}

func (v vaultRepositoryImpl) getVault(id uuid.UUID) (*domain.Vault, error) {
	var vault domain.Vault
	if err := v.db.VaultStore.Get(id, &vault); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrVaultNotFound
		}
		return nil, err
	}
	return &vault, nil
}

func (v vaultRepositoryImpl) getVaultByAddress(
	address string,
) (*domain.Vault, error) {
	vaults := []domain.Vault{}
	if err := v.db.VaultStore.Find(
		&vaults,
		badgerhold.Where("Address").Eq(address),
	); err != nil {
		return nil, err
	}
	if len(vaults) == 0 {
		return nil, nil
	}
	return &vaults[0], nil
}
