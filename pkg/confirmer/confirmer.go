package confirmer

import (
	"go.uber.org/ratelimit"

	"github.com/ethvault-network/ethvault-daemon/pkg/ethrpc"
)

// Event are emitted through a channel during observation.
type Event interface {
	Type() EventType
}

// Observable represents an object whose on-chain state is polled until it
// reaches a final status.
type Observable interface {
	observe(
		rpcSvc ethrpc.Service,
		errChan chan error,
		eventChan chan Event,
		observableStatus *observableStatus,
		rateLimiter ratelimit.Limiter,
	)
	key() string
}

// Service is the interface for the transaction confirmer.
type Service interface {
	Start()
	Stop()
	AddObservable(observable Observable)
	RemoveObservable(observable Observable)
	GetEventChannel() chan Event
}
