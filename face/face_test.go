package face

import (
	"errors"
	"testing"
)

func makeEncoding(first float64) Encoding {
	e := make(Encoding, EncodingSize)
	e[0] = first
	return e
}

func TestEncodingRoundTrip(t *testing.T) {
	e := make(Encoding, EncodingSize)
	for i := range e {
		e[i] = float64(i) * 0.017
	}

	b, err := e.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if len(b) != 8*EncodingSize {
		t.Fatalf("expected %d bytes, got %d", 8*EncodingSize, len(b))
	}

	got, err := UnmarshalBinary(b)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for i := range e {
		if got[i] != e[i] {
			t.Fatalf("value %d: expected %v, got %v", i, e[i], got[i])
		}
	}
}

func TestMarshalWrongLength(t *testing.T) {
	_, err := Encoding{1, 2, 3}.MarshalBinary()
	if !errors.Is(err, ErrBadEncoding) {
		t.Fatalf("expected ErrBadEncoding, got %v", err)
	}
}

func TestUnmarshalWrongLength(t *testing.T) {
	_, err := UnmarshalBinary(make([]byte, 100))
	if !errors.Is(err, ErrBadEncoding) {
		t.Fatalf("expected ErrBadEncoding, got %v", err)
	}
}

func TestDistance(t *testing.T) {
	a := make(Encoding, EncodingSize)
	b := make(Encoding, EncodingSize)
	b[0] = 3
	b[1] = 4

	if d := Distance(a, b); d != 5 {
		t.Fatalf("expected distance 5, got %v", d)
	}
	if d := Distance(a, a); d != 0 {
		t.Fatalf("expected distance 0, got %v", d)
	}
}

func TestMatchTolerance(t *testing.T) {
	base := makeEncoding(0)

	tests := []struct {
		name  string
		other Encoding
		want  bool
	}{
		{"identical", makeEncoding(0), true},
		{"within tolerance", makeEncoding(0.59), true},
		{"exactly at tolerance", makeEncoding(0.6), true},
		{"beyond tolerance", makeEncoding(0.61), false},
		{"far away", makeEncoding(5), false},
		{"length mismatch", Encoding{1, 2, 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(base, tt.other, Tolerance); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
