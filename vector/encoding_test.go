package vector

import (
	"math"
	"testing"
)

func TestEncodeDecodeFeatures_RoundTrip(t *testing.T) {
	orig := []float64{0.0, 1.5, -2.25, 3.75, 0.1, math.MaxFloat64, math.SmallestNonzeroFloat64}

	b := EncodeFeatures(orig)
	if len(b) != len(orig)*8 {
		t.Fatalf("encoded length = %d, want %d", len(b), len(orig)*8)
	}

	decoded, err := DecodeFeatures(b)
	if err != nil {
		t.Fatalf("DecodeFeatures failed: %v", err)
	}
	if len(decoded) != len(orig) {
		t.Fatalf("decoded length = %d, want %d", len(decoded), len(orig))
	}
	for i := range orig {
		if got, want := decoded[i], orig[i]; got != want {
			t.Fatalf("decoded[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestEncodeDecodeFeatures_Empty(t *testing.T) {
	if b := EncodeFeatures(nil); len(b) != 0 {
		t.Fatalf("expected empty blob for nil slice, got len=%d", len(b))
	}

	vec, err := DecodeFeatures(nil)
	if err != nil {
		t.Fatalf("DecodeFeatures(nil) failed: %v", err)
	}
	if len(vec) != 0 {
		t.Fatalf("expected empty slice for nil blob, got len=%d", len(vec))
	}
}

func TestDecodeFeatures_InvalidLength(t *testing.T) {
	if _, err := DecodeFeatures(make([]byte, 12)); err == nil {
		t.Fatalf("DecodeFeatures of 12 bytes succeeded, want error")
	}
}
