package face

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func encodeServer(t *testing.T, status int, encodings []Encoding) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/encodings" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(status)
		if status == http.StatusOK {
			json.NewEncoder(w).Encode(encodeResponse{Encodings: encodings})
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRemoteEncoderEncode(t *testing.T) {
	want := makeEncoding(0.25)
	srv := encodeServer(t, http.StatusOK, []Encoding{want})

	enc := NewRemoteEncoder(srv.URL)
	got, err := enc.Encode(context.Background(), []byte("image-bytes"))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 encoding, got %d", len(got))
	}
	if got[0][0] != 0.25 {
		t.Fatalf("unexpected encoding: %v", got[0][0])
	}
}

func TestRemoteEncoderNoFace(t *testing.T) {
	srv := encodeServer(t, http.StatusOK, nil)

	enc := NewRemoteEncoder(srv.URL)
	got, err := enc.Encode(context.Background(), []byte("image-bytes"))
	if err != nil {
		t.Fatalf("zero detections should not be an error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no encodings, got %d", len(got))
	}
}

func TestRemoteEncoderServiceError(t *testing.T) {
	srv := encodeServer(t, http.StatusInternalServerError, nil)

	enc := NewRemoteEncoder(srv.URL)
	if _, err := enc.Encode(context.Background(), []byte("image-bytes")); err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestRemoteEncoderBadDimensionality(t *testing.T) {
	srv := encodeServer(t, http.StatusOK, []Encoding{{1, 2, 3}})

	enc := NewRemoteEncoder(srv.URL)
	_, err := enc.Encode(context.Background(), []byte("image-bytes"))
	if !errors.Is(err, ErrBadEncoding) {
		t.Fatalf("expected ErrBadEncoding, got %v", err)
	}
}
