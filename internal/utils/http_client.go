package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client. Embedding *resty.Client
// exposes the full resty API while allowing application-specific
// extensions.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with a default-configured
// underlying resty.Client. Each call returns an independent client with
// its own connection pool and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
