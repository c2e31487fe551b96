package catalog

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Client fetches the remote catalog from the spreadsheet-script endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{endpoint: endpoint, http: httpClient}
}

// Fetch issues a single GET <endpoint>?action=getProducts and parses the
// response as a product array. Any non-2xx status or non-array body is an
// error; callers fall back to the bundled inventory.
func (c *Client) Fetch(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?action=getProducts", nil)
	if err != nil {
		return nil, errors.Wrap(err, "build catalog request")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch catalog")
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, errors.Newf("catalog endpoint returned HTTP %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog response")
	}

	var products []Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, errors.Wrap(err, "parse catalog response")
	}
	return products, nil
}
