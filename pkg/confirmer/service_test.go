package confirmer

import (
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethvault-network/ethvault-daemon/pkg/ethrpc"
)

func TestTransactionConfirmed(t *testing.T) {
	txHash := "0xaa00000000000000000000000000000000000000000000000000000000000001"
	rpcSvc := newMockRPC()
	rpcSvc.setReceipt(txHash, &ethrpc.TransactionReceipt{
		TxHash:      txHash,
		Success:     true,
		BlockNumber: 100,
		GasUsed:     21000,
	})

	svc := NewService(Opts{
		RPCService:             rpcSvc,
		IntervalInMilliseconds: 20,
		RPCRequestsPerSecond:   100,
		ErrorHandler:           func(err error) { t.Error(err) },
	})
	go svc.Start()
	defer svc.Stop()

	svc.AddObservable(&TransactionObservable{TxHash: txHash})

	event := waitForEvent(t, svc.GetEventChannel())
	txEvent, ok := event.(TransactionEvent)
	require.True(t, ok)
	assert.Equal(t, TransactionConfirmed, txEvent.Type())
	assert.Equal(t, txHash, txEvent.TxHash)
	assert.Equal(t, uint64(100), txEvent.BlockNumber)
	assert.Equal(t, uint64(21000), txEvent.GasUsed)
}

func TestTransactionFailed(t *testing.T) {
	txHash := "0xaa00000000000000000000000000000000000000000000000000000000000002"
	rpcSvc := newMockRPC()
	rpcSvc.setReceipt(txHash, &ethrpc.TransactionReceipt{
		TxHash:  txHash,
		Success: false,
	})

	svc := NewService(Opts{
		RPCService:             rpcSvc,
		IntervalInMilliseconds: 20,
		RPCRequestsPerSecond:   100,
		ErrorHandler:           func(err error) { t.Error(err) },
	})
	go svc.Start()
	defer svc.Stop()

	svc.AddObservable(&TransactionObservable{TxHash: txHash})

	event := waitForEvent(t, svc.GetEventChannel())
	txEvent, ok := event.(TransactionEvent)
	require.True(t, ok)
	assert.Equal(t, TransactionFailed, txEvent.Type())
}

func TestPendingTransactionKeepsPolling(t *testing.T) {
	txHash := "0xaa00000000000000000000000000000000000000000000000000000000000003"
	rpcSvc := newMockRPC()

	svc := NewService(Opts{
		RPCService:             rpcSvc,
		IntervalInMilliseconds: 20,
		RPCRequestsPerSecond:   100,
		ErrorHandler:           func(err error) { t.Error(err) },
	})
	go svc.Start()
	defer svc.Stop()

	svc.AddObservable(&TransactionObservable{TxHash: txHash})

	// the receipt appears only after a few polls
	time.Sleep(80 * time.Millisecond)
	assert.Greater(t, rpcSvc.receiptCalls(), 1)

	rpcSvc.setReceipt(txHash, &ethrpc.TransactionReceipt{
		TxHash:      txHash,
		Success:     true,
		BlockNumber: 42,
	})

	event := waitForEvent(t, svc.GetEventChannel())
	txEvent, ok := event.(TransactionEvent)
	require.True(t, ok)
	assert.Equal(t, TransactionConfirmed, txEvent.Type())
	assert.Equal(t, uint64(42), txEvent.BlockNumber)
}

func TestStopEmitsQuitEvent(t *testing.T) {
	rpcSvc := newMockRPC()
	svc := NewService(Opts{
		RPCService:             rpcSvc,
		IntervalInMilliseconds: 20,
		RPCRequestsPerSecond:   100,
		ErrorHandler:           func(err error) {},
	})
	go svc.Start()

	svc.Stop()

	event := waitForEvent(t, svc.GetEventChannel())
	assert.Equal(t, QuitSignal, event.Type())
}

func waitForEvent(t *testing.T, eventChan chan Event) Event {
	t.Helper()
	select {
	case event := <-eventChan:
		return event
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

// mockRPC implements ethrpc.Service with canned receipts.
type mockRPC struct {
	mutex    *sync.RWMutex
	receipts map[string]*ethrpc.TransactionReceipt
	calls    int
}

func newMockRPC() *mockRPC {
	return &mockRPC{
		mutex:    &sync.RWMutex{},
		receipts: map[string]*ethrpc.TransactionReceipt{},
	}
}

func (m *mockRPC) setReceipt(txHash string, receipt *ethrpc.TransactionReceipt) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.receipts[txHash] = receipt
}

func (m *mockRPC) receiptCalls() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.calls
}

func (m *mockRPC) GetTransactionReceipt(
	txHash string,
) (*ethrpc.TransactionReceipt, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.calls++
	return m.receipts[txHash], nil
}

func (m *mockRPC) ChainID() (uint64, error) { return 1, nil }

func (m *mockRPC) GetTransactionCount(address string) (uint64, error) {
	return 0, nil
}

func (m *mockRPC) EstimateGas(
	from, to string, value *big.Int, data []byte,
) (uint64, error) {
	return 21000, nil
}

func (m *mockRPC) GasPrice() (*big.Int, error) { return big.NewInt(1), nil }

func (m *mockRPC) GetBalance(address string) (*big.Int, error) {
	return big.NewInt(0), nil
}

func (m *mockRPC) Call(to string, data []byte) (string, error) {
	return "0x", nil
}

func (m *mockRPC) SendRawTransaction(rawTxHex string) (string, error) {
	return "", nil
}
