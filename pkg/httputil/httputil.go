package httputil

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is a thin wrapper around http.Client with a bounded timeout used
// for every outgoing JSON-RPC call.
type Client struct {
	httpClient *http.Client
}

// NewClient returns a Client whose requests time out after the given
// duration.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewHTTPRequest performs an HTTP call and returns status code and body
func (c *Client) NewHTTPRequest(
	method, url, bodyString string, header map[string]string,
) (int, string, error) {
	switch method {
	case "GET":
		return c.do(http.MethodGet, url, "", header)
	case "POST":
		return c.do(http.MethodPost, url, bodyString, header)
	default:
		return 0, "", fmt.Errorf("verb not supported %s", method)
	}
}

func (c *Client) do(
	method, url, bodyString string, header map[string]string,
) (int, string, error) {
	var body io.Reader
	if len(bodyString) > 0 {
		body = strings.NewReader(bodyString)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return 0, "", err
	}

	for key, value := range header {
		req.Header.Set(key, value)
	}

	rs, err := c.httpClient.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer rs.Body.Close()

	bodyBytes, err := io.ReadAll(rs.Body)
	if err != nil {
		return 0, "", err
	}

	return rs.StatusCode, string(bodyBytes), nil
}
