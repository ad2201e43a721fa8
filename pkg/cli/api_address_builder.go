package cli

import (
	"context"
	"net"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

// buildHTTPClientAndURL resolves the server address. Addresses with the
// unix scheme are dialled through the socket at their path.
func (api *APIClient) buildHTTPClientAndURL() (*http.Client, *url.URL, error) {
	u, err := url.Parse(api.apiAddress)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "invalid server address %q", api.apiAddress)
	}
	if u.Scheme != "unix" {
		if u.Scheme == "" || u.Host == "" {
			return nil, nil, errors.Errorf("invalid server address %q: expected http://host:port or unix:///path", api.apiAddress)
		}
		return &http.Client{Timeout: api.timeout}, u, nil
	}

	socketPath := u.Path
	u.Scheme = "http"
	u.Host = "unix"
	u.Path = "/"

	return &http.Client{
		Timeout: api.timeout,
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, "unix", socketPath)
			},
		},
	}, u, nil
}
