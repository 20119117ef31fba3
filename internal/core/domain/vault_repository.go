package domain

import (
	"context"

	"github.com/google/uuid"
)

type VaultRepository interface {
	AddVault(ctx context.Context, vault *Vault) error
	GetVault(ctx context.Context, id uuid.UUID) (*Vault, error)
	GetVaultByAddress(ctx context.Context, address string) (*Vault, error)
	ListVaults(ctx context.Context) ([]Vault, error)
	UpdateVault(
		ctx context.Context,
		id uuid.UUID,
		updateFn func(v *Vault) (*Vault, error),
	) error
	DeleteVault(ctx context.Context, id uuid.UUID) error
}
