package inmemory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ethvault-network/ethvault-daemon/internal/core/domain"
)

type vaultInmemoryStore struct {
	vaults map[uuid.UUID]*domain.Vault
	locker *sync.Mutex
}

// DbManager holds the in memory stores in a single data structure.
type DbManager struct {
	vaultStore *vaultInmemoryStore
}

// NewDbManager returns an empty DbManager
func NewDbManager() *DbManager {
	return &DbManager{
		vaultStore: &vaultInmemoryStore{
			vaults: map[uuid.UUID]*domain.Vault{},
			locker: &sync.Mutex{},
		},
	}
}
