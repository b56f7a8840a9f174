package seedcodec

import "testing"

func TestEncodeZeroIsAllA(t *testing.T) {
	got := Encode(0)
	want := "A"
	if got != want {
		t.Fatalf("Encode(0) = %q, want %q", got, want)
	}
}

func TestEncodeIsUnpadded(t *testing.T) {
	cases := map[uint64]string{0: "A", 1: "B", 35: "9", 36: "BA", 1000: "12", base * base * base: "BAAA"}
	for idx, want := range cases {
		got := Encode(idx)
		if got != want {
			t.Fatalf("Encode(%d) = %q, want %q", idx, got, want)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 35, 36, 37, 1295, 1296, 123456789, base*base*base*base - 1}
	for _, idx := range cases {
		encoded := Encode(idx)
		decoded, err := Decode(encoded)
		if err != nil {
			t.Fatalf("Decode(%q) returned error: %v", encoded, err)
		}
		if decoded != idx {
			t.Fatalf("round trip mismatch: idx=%d encoded=%q decoded=%d", idx, encoded, decoded)
		}
	}
}

func TestDecodeShorterThanMaxLengthIsValid(t *testing.T) {
	decoded, err := Decode("A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != 0 {
		t.Fatalf("Decode(%q) = %d, want 0", "A", decoded)
	}

	decoded, err = Decode("B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != 1 {
		t.Fatalf("Decode(%q) = %d, want 1", "B", decoded)
	}
}

func TestDecodeRejectsSeedTooLong(t *testing.T) {
	_, err := Decode("AAAAAAAAA")
	if err != ErrSeedTooLong {
		t.Fatalf("expected ErrSeedTooLong, got %v", err)
	}
}

func TestDecodeRejectsInvalidChar(t *testing.T) {
	_, err := Decode("AAAAaAAA")
	if err != ErrInvalidChar {
		t.Fatalf("expected ErrInvalidChar, got %v", err)
	}
}

func TestEncodeMaxValueUsesLastCharset(t *testing.T) {
	maxIdx := base*base*base*base*base*base*base*base - 1
	got := Encode(maxIdx)
	want := "99999999"
	if got != want {
		t.Fatalf("Encode(max) = %q, want %q", got, want)
	}
	decoded, err := Decode(got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != maxIdx {
		t.Fatalf("round trip of max value failed: got %d, want %d", decoded, maxIdx)
	}
}
