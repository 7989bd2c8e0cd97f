package mulled

import (
	"context"
	"net/http"
	"strings"

	"github.com/nfbio/mulled/pkg/appinfo"
	"github.com/nfbio/mulled/pkg/util/xhttp"
	"github.com/nfbio/mulled/pkg/xlog"
)

// DefaultRegistryBaseURL is the public registry namespace that hosts the
// BioContainers mulled images.
const DefaultRegistryBaseURL = "https://quay.io/biocontainers"

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithBaseURL overrides the registry base URL, mainly useful for tests and
// mirrors. An empty value keeps the default.
func WithBaseURL(baseURL string) RegistryOption {
	return func(r *Registry) {
		if baseURL != "" {
			r.baseURL = strings.TrimSuffix(baseURL, "/")
		}
	}
}

// WithHTTPClient overrides the http client used for lookups.
func WithHTTPClient(client xhttp.Client) RegistryOption {
	return func(r *Registry) {
		if client != nil {
			r.client = client
		}
	}
}

// NewRegistry returns a Registry pointed at quay.io/biocontainers with a
// default client. The default client follows redirects and applies
// xhttp.DefaultTimeout; the upstream behavior has no timeout at all, so
// callers needing unbounded waits must supply their own client.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		baseURL: DefaultRegistryBaseURL,
		client:  xhttp.NewClient(xhttp.DefaultTimeout, "mulled/"+appinfo.ShortVersion()),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Registry checks image existence against a BioContainers registry
// namespace. All lookups are read-only.
type Registry struct {
	baseURL string
	client  xhttp.Client
}

// ImageURL returns the registry URL derived from the image name:tag.
func (r *Registry) ImageURL(imageName string) string {
	return r.baseURL + "/" + imageName + "/"
}

// ImageExists reports whether the given image name:tag exists in the
// registry. It issues a single GET and treats exactly a 200 status as
// existing; any other status is a normal "does not exist" result.
// Transport-level failures are returned as errors, wrapped with the request
// context; there is no retry.
func (r *Registry) ImageExists(ctx context.Context, imageName string) (bool, error) {
	url := r.ImageURL(imageName)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return false, xhttp.MakeRequestError(req, err)
	}
	defer func() { _ = resp.Body.Close() }()

	xlog.C(ctx).Debugf("got response code %d for URL %s", resp.StatusCode, url)
	return resp.StatusCode == http.StatusOK, nil
}
