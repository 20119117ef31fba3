package confirmer

import (
	"sync"

	"go.uber.org/ratelimit"

	"github.com/ethvault-network/ethvault-daemon/pkg/ethrpc"
)

const (
	eventQueueMaxSize = 100
	errorQueueMaxSize = 10
)

type txConfirmer struct {
	interval     int
	rpcSvc       ethrpc.Service
	errChan      chan error
	eventChan    chan Event
	observables  map[string]*observableHandler
	errorHandler func(err error)
	rateLimiter  ratelimit.Limiter
	mutex        *sync.RWMutex
	wg           *sync.WaitGroup
}

// Opts defines the parameters needed for creating a confirmer service with
// the NewService method.
type Opts struct {
	RPCService             ethrpc.Service
	IntervalInMilliseconds int
	RPCRequestsPerSecond   int
	ErrorHandler           func(err error)
}

// NewService returns a txConfirmer ready to watch for broadcasted
// transactions to be mined. Use the Start and Stop methods to manage it.
func NewService(opts Opts) Service {
	return &txConfirmer{
		interval:     opts.IntervalInMilliseconds,
		rpcSvc:       opts.RPCService,
		errChan:      make(chan error, errorQueueMaxSize),
		eventChan:    make(chan Event, eventQueueMaxSize),
		observables:  map[string]*observableHandler{},
		errorHandler: opts.ErrorHandler,
		rateLimiter:  ratelimit.New(opts.RPCRequestsPerSecond),
		mutex:        &sync.RWMutex{},
		wg:           &sync.WaitGroup{},
	}
}

// Start runs the error loop of the confirmer until Stop is called. Polling
// goroutines are managed per observable by AddObservable/RemoveObservable.
func (c *txConfirmer) Start() {
	for {
		err, more := <-c.errChan
		if !more {
			return
		}
		go c.errorHandler(err)
	}
}

// Stop stops all running observations and closes the error channel.
func (c *txConfirmer) Stop() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	for _, obsHandler := range c.observables {
		go obsHandler.stop()
	}
	c.wg.Wait()
	c.eventChan <- QuitEvent{}
	close(c.errChan)
}

// GetEventChannel returns the Event channel which can be used to listen for
// confirmation events.
func (c *txConfirmer) GetEventChannel() chan Event {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.eventChan
}

// AddObservable starts watching the given Observable only if the same
// Observable is not already in the list.
func (c *txConfirmer) AddObservable(observable Observable) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if _, ok := c.observables[observable.key()]; !ok {
		obsHandler := newObservableHandler(
			observable,
			c.rpcSvc,
			c.wg,
			c.interval,
			c.eventChan,
			c.errChan,
			c.rateLimiter,
		)

		c.observables[observable.key()] = obsHandler
		go obsHandler.start()
	}
}

// RemoveObservable stops watching the given Observable.
func (c *txConfirmer) RemoveObservable(observable Observable) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if obsHandler, ok := c.observables[observable.key()]; ok {
		obsHandler.stop()
		delete(c.observables, observable.key())
	}
}
