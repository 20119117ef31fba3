package ethrpc

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/sony/gobreaker"

	"github.com/ethvault-network/ethvault-daemon/pkg/circuitbreaker"
	"github.com/ethvault-network/ethvault-daemon/pkg/httputil"
)

type ethereum struct {
	rpcURL string
	client *httputil.Client
	cb     *gobreaker.CircuitBreaker
	nextID uint64
}

// NewService returns a Service talking to the node at rpcURL. Requests time
// out after requestTimeout and the endpoint is health checked before the
// service is handed out.
func NewService(rpcURL string, requestTimeout time.Duration) (Service, error) {
	service := &ethereum{
		rpcURL: rpcURL,
		client: httputil.NewClient(requestTimeout),
		cb:     circuitbreaker.NewCircuitBreaker("ethrpc"),
	}

	if _, err := service.ChainID(); err != nil {
		return nil, fmt.Errorf("health check: %w", err)
	}

	return service, nil
}

func (e *ethereum) ChainID() (uint64, error) {
	result, err := e.call("eth_chainId", []interface{}{})
	if err != nil {
		return 0, err
	}
	chainID, err := parseQuantity(result)
	if err != nil {
		return 0, err
	}
	return chainID.Uint64(), nil
}

func (e *ethereum) GetTransactionCount(address string) (uint64, error) {
	result, err := e.call(
		"eth_getTransactionCount", []interface{}{address, "pending"},
	)
	if err != nil {
		return 0, err
	}
	nonce, err := parseQuantity(result)
	if err != nil {
		return 0, err
	}
	return nonce.Uint64(), nil
}

func (e *ethereum) EstimateGas(
	from, to string, value *big.Int, data []byte,
) (uint64, error) {
	params := callParams{
		From:  from,
		To:    to,
		Value: hexQuantity(value),
	}
	if len(data) > 0 {
		params.Data = "0x" + hex.EncodeToString(data)
	}

	result, err := e.call("eth_estimateGas", []interface{}{params})
	if err != nil {
		return 0, err
	}
	gas, err := parseQuantity(result)
	if err != nil {
		return 0, err
	}
	return gas.Uint64(), nil
}

func (e *ethereum) GasPrice() (*big.Int, error) {
	result, err := e.call("eth_gasPrice", []interface{}{})
	if err != nil {
		return nil, err
	}
	return parseQuantity(result)
}

func (e *ethereum) GetBalance(address string) (*big.Int, error) {
	result, err := e.call("eth_getBalance", []interface{}{address, "latest"})
	if err != nil {
		return nil, err
	}
	return parseQuantity(result)
}

func (e *ethereum) Call(to string, data []byte) (string, error) {
	params := callParams{To: to}
	if len(data) > 0 {
		params.Data = "0x" + hex.EncodeToString(data)
	}

	result, err := e.call("eth_call", []interface{}{params, "latest"})
	if err != nil {
		return "", err
	}
	return parseString(result)
}

func (e *ethereum) SendRawTransaction(rawTxHex string) (string, error) {
	result, err := e.call("eth_sendRawTransaction", []interface{}{rawTxHex})
	if err != nil {
		return "", err
	}
	return parseString(result)
}

func (e *ethereum) GetTransactionReceipt(txHash string) (*TransactionReceipt, error) {
	result, err := e.call("eth_getTransactionReceipt", []interface{}{txHash})
	if err != nil {
		return nil, err
	}
	if string(result) == "null" {
		return nil, nil
	}

	receipt := receiptResult{}
	if err := json.Unmarshal(result, &receipt); err != nil {
		return nil, ErrMalformedResponse
	}
	blockNumber, err := parseHexUint64(receipt.BlockNumber)
	if err != nil {
		return nil, err
	}
	gasUsed, err := parseHexUint64(receipt.GasUsed)
	if err != nil {
		return nil, err
	}

	return &TransactionReceipt{
		TxHash:      receipt.TransactionHash,
		Success:     receipt.Status == "0x1",
		BlockNumber: blockNumber,
		GasUsed:     gasUsed,
	}, nil
}

// call performs a single JSON-RPC round trip behind the circuit breaker. A
// node-reported error object aborts the call and is returned as is.
func (e *ethereum) call(
	method string, params []interface{},
) (json.RawMessage, error) {
	result, err := e.cb.Execute(func() (interface{}, error) {
		body, err := json.Marshal(rpcRequest{
			JSONRPC: "2.0",
			ID:      atomic.AddUint64(&e.nextID, 1),
			Method:  method,
			Params:  params,
		})
		if err != nil {
			return nil, err
		}

		headers := map[string]string{"Content-Type": "application/json"}
		status, resp, err := e.client.NewHTTPRequest(
			"POST", e.rpcURL, string(body), headers,
		)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf("%s: http status %d: %s", method, status, resp)
		}

		decoded := rpcResponse{}
		if err := json.Unmarshal([]byte(resp), &decoded); err != nil {
			return nil, ErrMalformedResponse
		}
		if decoded.Error != nil {
			return nil, decoded.Error
		}
		if len(decoded.Result) == 0 {
			return nil, ErrMalformedResponse
		}
		return decoded.Result, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(json.RawMessage), nil
}
