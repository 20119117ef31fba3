package application_test

import (
	"math/big"
	"sync"

	"github.com/ethvault-network/ethvault-daemon/pkg/ethrpc"
)

// stubRPC implements ethrpc.Service recording every call it serves, so that
// tests can assert both what was requested and that nothing was.
type stubRPC struct {
	mutex *sync.Mutex

	chainID    uint64
	nonce      uint64
	gasLimit   uint64
	gasPrice   *big.Int
	balance    *big.Int
	callResult string
	txHash     string
	receipt    *ethrpc.TransactionReceipt

	calls         []string
	estimateFrom  string
	estimateTo    string
	estimateValue *big.Int
	estimateData  []byte
	callTo        string
	callData      []byte
	sentRawTx     string
}

func newStubRPC() *stubRPC {
	return &stubRPC{
		mutex:    &sync.Mutex{},
		chainID:  1,
		gasPrice: big.NewInt(0),
		balance:  big.NewInt(0),
		txHash:   "0x0000000000000000000000000000000000000000000000000000000000000000",
	}
}

func (s *stubRPC) record(method string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.calls = append(s.calls, method)
}

func (s *stubRPC) numCalls() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.calls)
}

func (s *stubRPC) ChainID() (uint64, error) {
	s.record("eth_chainId")
	return s.chainID, nil
}

func (s *stubRPC) GetTransactionCount(address string) (uint64, error) {
	s.record("eth_getTransactionCount")
	return s.nonce, nil
}

func (s *stubRPC) EstimateGas(
	from, to string, value *big.Int, data []byte,
) (uint64, error) {
	s.record("eth_estimateGas")
	s.estimateFrom = from
	s.estimateTo = to
	s.estimateValue = value
	s.estimateData = data
	return s.gasLimit, nil
}

func (s *stubRPC) GasPrice() (*big.Int, error) {
	s.record("eth_gasPrice")
	return s.gasPrice, nil
}

func (s *stubRPC) GetBalance(address string) (*big.Int, error) {
	s.record("eth_getBalance")
	return s.balance, nil
}

func (s *stubRPC) Call(to string, data []byte) (string, error) {
	s.record("eth_call")
	s.callTo = to
	s.callData = data
	return s.callResult, nil
}

func (s *stubRPC) SendRawTransaction(rawTxHex string) (string, error) {
	s.record("eth_sendRawTransaction")
	s.sentRawTx = rawTxHex
	return s.txHash, nil
}

func (s *stubRPC) GetTransactionReceipt(
	txHash string,
) (*ethrpc.TransactionReceipt, error) {
	s.record("eth_getTransactionReceipt")
	return s.receipt, nil
}
