package inmemory

import (
	"context"

	"github.com/google/uuid"

	"github.com/ethvault-network/ethvault-daemon/internal/core/domain"
)

// VaultRepositoryImpl represents an in memory storage
type VaultRepositoryImpl struct {
	db *DbManager
}

// NewVaultRepositoryImpl returns a new empty VaultRepositoryImpl
func NewVaultRepositoryImpl(db *DbManager) domain.VaultRepository {
	return &VaultRepositoryImpl{
		db: db,
	}
}

func (r VaultRepositoryImpl) AddVault(
	ctx context.Context, vault *domain.Vault,
) error {
	r.db.vaultStore.locker.Lock()
	defer r.db.vaultStore.locker.Unlock()

	if _, ok := r.db.vaultStore.vaults[vault.ID]; ok {
		return domain.ErrVaultAlreadyExists
	}
	for _, v := range r.db.vaultStore.vaults {
		if v.Address == vault.Address {
			return domain.ErrVaultAlreadyExists
		}
	}

	clone := *vault
	r.db.vaultStore.vaults[vault.ID] = &clone
	return nil
}

func (r VaultRepositoryImpl) GetVault(
	ctx context.Context, id uuid.UUID,
) (*domain.Vault, error) {
	r.db.vaultStore.locker.Lock()
	defer r.db.vaultStore.locker.Unlock()

	vault, ok := r.db.vaultStore.vaults[id]
	if !ok {
		return nil, domain.ErrVaultNotFound
	}
	clone := *vault
	return &clone, nil
}

func (r VaultRepositoryImpl) GetVaultByAddress(
	ctx context.Context, address string,
) (*domain.Vault, error) {
	r.db.vaultStore.locker.Lock()
	defer r.db.vaultStore.locker.Unlock()

	for _, vault := range r.db.vaultStore.vaults {
		if vault.Address == address {
			clone := *vault
			return &clone, nil
		}
	}
	return nil, domain.ErrVaultNotFound
}

func (r VaultRepositoryImpl) ListVaults(
	ctx context.Context,
) ([]domain.Vault, error) {
	r.db.vaultStore.locker.Lock()
	defer r.db.vaultStore.locker.Unlock()

	vaults := make([]domain.Vault, 0, len(r.db.vaultStore.vaults))
	for _, vault := range r.db.vaultStore.vaults {
		vaults = append(vaults, *vault)
	}
	return vaults, nil
}

// UpdateVault updates data of the stored Vault passing an update function
func (r VaultRepositoryImpl) UpdateVault(
	ctx context.Context,
	id uuid.UUID,
	updateFn func(v *domain.Vault) (*domain.Vault, error),
) error {
	r.db.vaultStore.locker.Lock()
	defer r.db.vaultStore.locker.Unlock()

	vault, ok := r.db.vaultStore.vaults[id]
	if !ok {
		return domain.ErrVaultNotFound
	}

	clone := *vault
	updatedVault, err := updateFn(&clone)
	if err != nil {
		return err
	}

	r.db.vaultStore.vaults[id] = updatedVault
	return nil
}

func (r VaultRepositoryImpl) DeleteVault(
	ctx context.Context, id uuid.UUID,
) error {
	r.db.vaultStore.locker.Lock()
	defer r.db.vaultStore.locker.Unlock()

	if _, ok := r.db.vaultStore.vaults[id]; !ok {
		return domain.ErrVaultNotFound
	}
	delete(r.db.vaultStore.vaults, id)
	return nil
}
