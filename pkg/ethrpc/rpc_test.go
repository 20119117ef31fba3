package ethrpc

import (
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer returns a server answering each method with the canned
// result (or error) from the given map, and a pointer to the log of methods
// it served in order.
func newTestServer(
	t *testing.T, responses map[string]string,
) (*httptest.Server, *[]string) {
	t.Helper()
	served := &[]string{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := rpcRequest{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		*served = append(*served, req.Method)

		body, ok := responses[req.Method]
		if !ok {
			body = `{"jsonrpc":"2.0","id":1,"error":{"code":-32601,"message":"method not found"}}`
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	})

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, served
}

func result(v string) string {
	return `{"jsonrpc":"2.0","id":1,"result":` + v + `}`
}

func TestNewServiceHealthCheck(t *testing.T) {
	server, served := newTestServer(t, map[string]string{
		"eth_chainId": result(`"0x1"`),
	})

	svc, err := NewService(server.URL, time.Second)
	require.NoError(t, err)
	assert.NotNil(t, svc)
	assert.Equal(t, []string{"eth_chainId"}, *served)

	_, err = NewService("http://localhost:1", time.Second)
	assert.Error(t, err)
}

func TestGetTransactionCount(t *testing.T) {
	server, _ := newTestServer(t, map[string]string{
		"eth_chainId":             result(`"0x1"`),
		"eth_getTransactionCount": result(`"0x9"`),
	})
	svc, err := NewService(server.URL, time.Second)
	require.NoError(t, err)

	nonce, err := svc.GetTransactionCount("0x9d8a62f656a8d1615c1294fd71e9cfb3e4855a4f")
	require.NoError(t, err)
	assert.Equal(t, uint64(9), nonce)
}

func TestEstimateGasAndGasPrice(t *testing.T) {
	server, _ := newTestServer(t, map[string]string{
		"eth_chainId":     result(`"0x1"`),
		"eth_estimateGas": result(`"0x5208"`),
		"eth_gasPrice":    result(`"0x4a817c800"`),
	})
	svc, err := NewService(server.URL, time.Second)
	require.NoError(t, err)

	gas, err := svc.EstimateGas(
		"0x9d8a62f656a8d1615c1294fd71e9cfb3e4855a4f",
		"0x3535353535353535353535353535353535353535",
		big.NewInt(1),
		nil,
	)
	require.NoError(t, err)
	assert.Equal(t, uint64(21000), gas)

	price, err := svc.GasPrice()
	require.NoError(t, err)
	assert.Equal(t, "20000000000", price.String())
}

func TestEstimateGasForwardsCalldata(t *testing.T) {
	var captured callParams

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := struct {
			Method string            `json:"method"`
			Params []json.RawMessage `json:"params"`
		}{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.Method == "eth_estimateGas" {
			require.NoError(t, json.Unmarshal(req.Params[0], &captured))
		}
		w.Write([]byte(result(`"0x5208"`)))
	})
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc, err := NewService(server.URL, time.Second)
	require.NoError(t, err)

	_, err = svc.EstimateGas(
		"0x9d8a62f656a8d1615c1294fd71e9cfb3e4855a4f",
		"0x3535353535353535353535353535353535353535",
		big.NewInt(0),
		[]byte{0xa9, 0x05, 0x9c, 0xbb},
	)
	require.NoError(t, err)
	assert.Equal(t, "0xa9059cbb", captured.Data)
	assert.Equal(t, "0x0", captured.Value)
}

func TestSendRawTransaction(t *testing.T) {
	txHash := "0x33d79a8d5a376981645a6e47a1b84122d3e08a9d1c08d98f6d708f5b2e3b5a1d"
	server, _ := newTestServer(t, map[string]string{
		"eth_chainId":            result(`"0x1"`),
		"eth_sendRawTransaction": result(`"` + txHash + `"`),
	})
	svc, err := NewService(server.URL, time.Second)
	require.NoError(t, err)

	hash, err := svc.SendRawTransaction("0xf86c09")
	require.NoError(t, err)
	assert.Equal(t, txHash, hash)
}

func TestRpcErrorIsSurfacedVerbatim(t *testing.T) {
	server, _ := newTestServer(t, map[string]string{
		"eth_chainId": result(`"0x1"`),
		"eth_sendRawTransaction": `{"jsonrpc":"2.0","id":1,` +
			`"error":{"code":-32000,"message":"nonce too low"}}`,
	})
	svc, err := NewService(server.URL, time.Second)
	require.NoError(t, err)

	_, err = svc.SendRawTransaction("0xf86c09")
	require.Error(t, err)

	rpcErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, -32000, rpcErr.Code)
	assert.Equal(t, "nonce too low", rpcErr.Message)
}

func TestGetTransactionReceipt(t *testing.T) {
	receiptJSON := `{"transactionHash":"0xabc0000000000000000000000000000000000000000000000000000000000000",` +
		`"status":"0x1","blockNumber":"0x10","gasUsed":"0x5208"}`
	server, _ := newTestServer(t, map[string]string{
		"eth_chainId":               result(`"0x1"`),
		"eth_getTransactionReceipt": result(receiptJSON),
	})
	svc, err := NewService(server.URL, time.Second)
	require.NoError(t, err)

	receipt, err := svc.GetTransactionReceipt("0xabc")
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.True(t, receipt.Success)
	assert.Equal(t, uint64(16), receipt.BlockNumber)
	assert.Equal(t, uint64(21000), receipt.GasUsed)
}

func TestGetTransactionReceiptPending(t *testing.T) {
	server, _ := newTestServer(t, map[string]string{
		"eth_chainId":               result(`"0x1"`),
		"eth_getTransactionReceipt": result(`null`),
	})
	svc, err := NewService(server.URL, time.Second)
	require.NoError(t, err)

	receipt, err := svc.GetTransactionReceipt("0xabc")
	require.NoError(t, err)
	assert.Nil(t, receipt)
}

func TestParseQuantity(t *testing.T) {
	v, err := parseQuantity(json.RawMessage(`"0xde0b6b3a7640000"`))
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000", v.String())

	_, err = parseQuantity(json.RawMessage(`"1024"`))
	assert.Equal(t, ErrMalformedQuantity, err)

	_, err = parseQuantity(json.RawMessage(`42`))
	assert.Equal(t, ErrMalformedResponse, err)
}

func TestHexQuantity(t *testing.T) {
	assert.Equal(t, "0x0", hexQuantity(nil))
	assert.Equal(t, "0x0", hexQuantity(big.NewInt(0)))
	assert.Equal(t, "0x5208", hexQuantity(big.NewInt(21000)))
}
