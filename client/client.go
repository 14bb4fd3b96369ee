// Package client provides the authenticated HTTP transport used to reach the
// merchant-scoped payment services gateway.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/commercekit/paypal-checkout-api/config"
	"github.com/commercekit/paypal-checkout-api/models"
)

// ServiceClient is the fixed request contract the order service drives the
// gateway through. The environment selects the gateway base URL; everything
// else about a call is supplied per request.
type ServiceClient interface {
	Request(headers map[string]string, path, method string, body []byte, environment string) (*models.OrderResponse, error)
}

// HTTPClient is the concrete ServiceClient backed by net/http
type HTTPClient struct {
	Config *config.Config
}

// NewHTTPClient returns a ServiceClient for the configured gateway
func NewHTTPClient(cfg *config.Config) *HTTPClient {
	return &HTTPClient{Config: cfg}
}

// Request issues a single authenticated call to the gateway and decodes the
// response envelope. Transport-level failures are returned unchanged; no
// retries or additional timeouts are applied here.
func (c *HTTPClient) Request(headers map[string]string, path, method string, body []byte, environment string) (*models.OrderResponse, error) {
	baseURL := c.Config.GatewayURL(environment)
	if baseURL == "" {
		return nil, fmt.Errorf("no gateway URL configured for environment [%s]", environment)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewBuffer(body)
	}

	request, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("error generating request for gateway: [%s]", err)
	}

	request.Header.Add("accept", "application/json")
	request.Header.Add("authorization", "Bearer "+c.Config.GatewayAPIKey)
	for key, value := range headers {
		request.Header.Set(key, value)
	}

	resp, err := http.DefaultClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("error sending request to gateway: [%s]", err)
	}

	defer resp.Body.Close()
	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response from gateway: [%s]", err)
	}

	response := &models.OrderResponse{}
	if len(responseBody) > 0 {
		if err = json.Unmarshal(responseBody, response); err != nil {
			return nil, fmt.Errorf("error reading response from gateway: [%s]", err)
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("error status [%v] back from gateway: [%s]", resp.StatusCode, response.Message)
	}

	return response, nil
}
