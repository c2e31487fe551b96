package checkout

import (
	"encoding/base64"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	defaultMIMEType = "image/jpeg"
	defaultFileName = "proof.jpg"
)

// encodeProof converts the attachment into the bare base64 text the order
// endpoint expects. A data-URI prefix, when present, is stripped up to the
// first comma. The remaining text must decode as base64; raw bytes are
// encoded directly.
func encodeProof(p Proof) (string, error) {
	if len(p.Data) > 0 {
		return base64.StdEncoding.EncodeToString(p.Data), nil
	}

	payload := p.DataURI
	if i := strings.IndexByte(payload, ','); i >= 0 {
		payload = payload[i+1:]
	}
	if payload == "" {
		return "", errors.New("empty proof payload")
	}
	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		return "", errors.Wrap(err, "proof payload is not valid base64")
	}
	return payload, nil
}

func (p Proof) mimeType() string {
	if p.MIMEType == "" {
		return defaultMIMEType
	}
	return p.MIMEType
}

func (p Proof) fileName() string {
	if p.FileName == "" {
		return defaultFileName
	}
	return p.FileName
}
