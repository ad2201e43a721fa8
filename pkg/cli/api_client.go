// Package cli queries a running "hwcheck serve" instance.
package cli

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

type APIClient struct {
	apiAddress string
	timeout    time.Duration
}

func NewAPIClient(apiAddress string, timeout time.Duration) *APIClient {
	return &APIClient{
		apiAddress: apiAddress,
		timeout:    timeout,
	}
}

// Status fetches the full report.
func (api *APIClient) Status(ctx context.Context) APIResponse {
	return api.get(ctx, "status")
}

// Probe runs a single probe on the server.
func (api *APIClient) Probe(ctx context.Context, name string) APIResponse {
	return api.get(ctx, "probes", name)
}

// Probes lists the probe names known to the server.
func (api *APIClient) Probes(ctx context.Context) APIResponse {
	return api.get(ctx, "probes")
}

func (api *APIClient) get(ctx context.Context, segments ...string) APIResponse {
	client, u, err := api.buildHTTPClientAndURL()
	if err != nil {
		return &CommonAPIResponse{Error: err}
	}

	target := u.JoinPath(escapeAll(segments)...)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return &CommonAPIResponse{Error: err}
	}

	return NewAPIResponse(client.Do(req))
}

func escapeAll(segments []string) []string {
	out := make([]string, len(segments))
	for i, s := range segments {
		out[i] = url.PathEscape(s)
	}
	return out
}
