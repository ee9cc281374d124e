package face

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RemoteEncoder calls an external face-recognition service to extract
// encodings from an image. The service takes the raw image bytes and answers
// with every face encoding it found.
type RemoteEncoder struct {
	baseURL string
	client  *http.Client
}

func NewRemoteEncoder(baseURL string) *RemoteEncoder {
	return &RemoteEncoder{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type encodeResponse struct {
	Encodings []Encoding `json:"encodings"`
}

// Encode posts the image to the service. A 200 with zero encodings means no
// face was detected and is not an error.
func (r *RemoteEncoder) Encode(ctx context.Context, image []byte) ([]Encoding, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/encodings", bytes.NewReader(image))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("face service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("face service: status %d: %s", resp.StatusCode, body)
	}

	var out encodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("face service: decode response: %w", err)
	}
	for _, e := range out.Encodings {
		if len(e) != EncodingSize {
			return nil, fmt.Errorf("%w: service returned %d values", ErrBadEncoding, len(e))
		}
	}
	return out.Encodings, nil
}
