package application

import (
	log "github.com/sirupsen/logrus"

	"github.com/ethvault-network/ethvault-daemon/pkg/confirmer"
)

// BlockchainListener consumes the events of the confirmer service and keeps
// the daemon log informed about the fate of broadcasted transactions.
type BlockchainListener interface {
	// Listen blocks consuming confirmation events until the confirmer
	// service is stopped.
	Listen()
	// WaitForTransaction blocks until the given transaction reaches a final
	// status and returns its confirmation event. Events of other observed
	// transactions are handled in the meantime. A nil event is returned if
	// the confirmer is stopped before the transaction is mined.
	WaitForTransaction(txHash string) *confirmer.TransactionEvent
}

type blockchainListener struct {
	confirmerService confirmer.Service
}

func NewBlockchainListener(
	confirmerService confirmer.Service,
) BlockchainListener {
	return &blockchainListener{
		confirmerService: confirmerService,
	}
}

func (l *blockchainListener) Listen() {
	eventChan := l.confirmerService.GetEventChannel()
	for event := range eventChan {
		if quit := l.handleEvent(event); quit {
			return
		}
	}
}

func (l *blockchainListener) WaitForTransaction(
	txHash string,
) *confirmer.TransactionEvent {
	eventChan := l.confirmerService.GetEventChannel()
	for event := range eventChan {
		if quit := l.handleEvent(event); quit {
			return nil
		}
		if e, ok := event.(confirmer.TransactionEvent); ok {
			if e.TxHash == txHash {
				return &e
			}
		}
	}
	return nil
}

// handleEvent logs the final status of a transaction and drops its
// observation. It reports whether the confirmer emitted its quit signal.
func (l *blockchainListener) handleEvent(event confirmer.Event) bool {
	switch e := event.(type) {
	case confirmer.TransactionEvent:
		if e.Type() == confirmer.TransactionConfirmed {
			log.Infof(
				"transaction %s confirmed in block %d (gas used %d)",
				e.TxHash, e.BlockNumber, e.GasUsed,
			)
		} else {
			log.Warnf(
				"transaction %s reverted in block %d",
				e.TxHash, e.BlockNumber,
			)
		}
		l.confirmerService.RemoveObservable(
			&confirmer.TransactionObservable{TxHash: e.TxHash},
		)
	case confirmer.QuitEvent:
		return true
	}
	return false
}
