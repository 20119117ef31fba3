package confirmer

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"

	"github.com/ethvault-network/ethvault-daemon/pkg/ethrpc"
)

const (
	New       Status = "NEW"
	Waiting   Status = "WAITING"
	Processed Status = "PROCESSED"
)

type Status string

type observableStatus struct {
	sync.RWMutex
	status Status
}

func NewObservableStatus() *observableStatus {
	return &observableStatus{
		status: New,
	}
}

func (o *observableStatus) Get() Status {
	o.RLock()
	defer o.RUnlock()
	return o.status
}

func (o *observableStatus) Set(status Status) {
	o.Lock()
	defer o.Unlock()
	o.status = status
}

type TransactionObservable struct {
	TxHash string
}

func (t *TransactionObservable) observe(
	rpcSvc ethrpc.Service,
	errChan chan error,
	eventChan chan Event,
	observableStatus *observableStatus,
	rateLimiter ratelimit.Limiter,
) {
	if t == nil {
		return
	}

	observableStatus.Set(Waiting)
	rateLimiter.Take()

	receipt, err := rpcSvc.GetTransactionReceipt(t.TxHash)
	if err != nil {
		errChan <- err
		return
	}

	observableStatus.Set(Processed)

	// still in the mempool, keep polling
	if receipt == nil {
		return
	}

	eventType := TransactionFailed
	if receipt.Success {
		eventType = TransactionConfirmed
	}

	eventChan <- TransactionEvent{
		TxHash:      t.TxHash,
		EventType:   eventType,
		BlockNumber: receipt.BlockNumber,
		GasUsed:     receipt.GasUsed,
	}
}

func (t *TransactionObservable) key() string {
	return t.TxHash
}

type observableHandler struct {
	observable       Observable
	rpcSvc           ethrpc.Service
	wg               *sync.WaitGroup
	ticker           *time.Ticker
	eventChan        chan Event
	errChan          chan error
	stopChan         chan int
	observableStatus *observableStatus
	rateLimiter      ratelimit.Limiter
}

func newObservableHandler(
	observable Observable,
	rpcSvc ethrpc.Service,
	wg *sync.WaitGroup,
	interval int,
	eventChan chan Event,
	errChan chan error,
	rateLimiter ratelimit.Limiter,
) *observableHandler {
	ticker := time.NewTicker(time.Duration(interval) * time.Millisecond)
	stopChan := make(chan int, 1)

	return &observableHandler{
		observable,
		rpcSvc,
		wg,
		ticker,
		eventChan,
		errChan,
		stopChan,
		NewObservableStatus(),
		rateLimiter,
	}
}

func (oh *observableHandler) start() {
	oh.logAction("start")
	oh.wg.Add(1)
	for {
		select {
		case <-oh.ticker.C:
			if oh.observableStatus.Get() != Waiting {
				oh.observable.observe(
					oh.rpcSvc,
					oh.errChan,
					oh.eventChan,
					oh.observableStatus,
					oh.rateLimiter,
				)
			}
		case <-oh.stopChan:
			oh.ticker.Stop()
			close(oh.stopChan)
			return
		}
	}
}

func (oh *observableHandler) stop() {
	oh.logAction("stop")
	oh.stopChan <- 1
	oh.wg.Done()
}

func (oh *observableHandler) logAction(action string) {
	log.Debugf("%s observing tx: %v", action, oh.observable.key())
}
