// Package adapter provides implementations for external AI provider integrations.
package adapter

import (
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ClientOption is a functional option for configuring the underlying SDK client.
type ClientOption func(*clientOptions)

type clientOptions struct {
	baseURL    string
	httpClient *http.Client
}

// WithBaseURL sets a custom base URL for the OpenAI API.
// It has no effect on the azure variant, which always targets its endpoint.
func WithBaseURL(url string) ClientOption {
	return func(o *clientOptions) {
		o.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

func newClientOptions(opts []ClientOption) clientOptions {
	var o clientOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o clientOptions) apply(cfg *openai.ClientConfig) {
	if o.httpClient != nil {
		cfg.HTTPClient = o.httpClient
	}
}
