package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
)

// ErrServerRejected marks a response the order endpoint explicitly flagged
// as a failure ({"success":false,...}).
var ErrServerRejected = errors.New("order rejected by server")

// orderPayload is the wire format of the order write, field names fixed by
// the spreadsheet script.
type orderPayload struct {
	CustomerName  string `json:"customerName"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	PaymentMethod string `json:"paymentMethod"`
	ItemsJSON     string `json:"itemsJson"`
	TotalAmount   int    `json:"totalAmount"`
	FileData      string `json:"fileData"`
	MIMEType      string `json:"mimeType"`
	FileName      string `json:"fileName"`
}

type orderAck struct {
	Success *bool  `json:"success"`
	Error   string `json:"error"`
}

// Client submits orders to the spreadsheet-script endpoint.
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

// Submit posts the payload once; no retries. The endpoint does not reliably
// return structured output, so the response is read leniently: a body that
// fails to parse as JSON, or parses without an explicit success:false flag,
// counts as success. Only a network-level error or an explicit rejection
// fails the submission.
func (c *Client) Submit(ctx context.Context, payload orderPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "marshal order payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build order request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "submit order")
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "read order response")
	}

	var ack orderAck
	if err := json.Unmarshal(raw, &ack); err != nil {
		// Non-JSON responses are treated as success by convention.
		return nil
	}
	if ack.Success != nil && !*ack.Success {
		if ack.Error != "" {
			return errors.Mark(errors.New(ack.Error), ErrServerRejected)
		}
		return ErrServerRejected
	}
	return nil
}
