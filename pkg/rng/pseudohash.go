// Package rng implements the numeric core of the Balatro seed engine: the
// string pseudohash, the round13 rounding operator, a LuaJIT-compatible
// 4-state Tausworthe generator, and the stateful per-stream node cache that
// wraps them. Every function on this path must reproduce the reference
// implementation bit-for-bit; a single ULP of divergence misidentifies
// seeds.
package rng

import "math"

// pseudohashConst is the multiplier used by both the string pseudohash and
// the node progression formula.
const pseudohashConst = 1.1239285023

// Pseudohash hashes an ordered list of byte strings into a float64 in
// [0, 1). The arguments are concatenated in the order given and the
// resulting buffer is folded from its last byte back to its first, so
// Pseudohash([]byte("id"), []byte("seed")) is identical to hashing the
// single concatenated buffer "idseed". This is the id+seed hash used on
// the string-keyed node path (GetNode), which is what the game-state
// layer composes into draw ids like "Tarotsho3".
func Pseudohash(words ...[]byte) float64 {
	n := 0
	for _, w := range words {
		n += len(w)
	}
	buf := make([]byte, 0, n)
	for _, w := range words {
		buf = append(buf, w...)
	}

	num := 1.0
	for i := len(buf); i >= 1; i-- {
		b := float64(buf[i-1])
		t := (pseudohashConst/num)*b*math.Pi + math.Pi*float64(i)
		num = t - math.Floor(t)
	}
	assertFinite(num)
	return num
}

// PseudohashString is a convenience wrapper over Pseudohash for string
// arguments.
func PseudohashString(words ...string) float64 {
	bs := make([][]byte, len(words))
	for i, w := range words {
		bs[i] = []byte(w)
	}
	return Pseudohash(bs...)
}

// PseudohashWords hashes an ordered list of byte strings the same way
// Pseudohash does, except each word folds independently with its own
// byte-index counter instead of being concatenated first — so unlike
// Pseudohash, PseudohashWords([]byte("a"), []byte("bc")) differs from
// PseudohashWords([]byte("abc")). This is the int-keyed node path's hash,
// used for the base seed hash and for the legacy integer node ids kept
// for their golden-value test coverage.
func PseudohashWords(words ...[]byte) float64 {
	num := 1.0
	for w := len(words) - 1; w >= 0; w-- {
		word := words[w]
		for i := len(word); i >= 1; i-- {
			b := float64(word[i-1])
			t := (pseudohashConst/num)*b*math.Pi + math.Pi*float64(i)
			num = t - math.Floor(t)
		}
	}
	assertFinite(num)
	return num
}

const (
	invPrec     = 1e13
	twoInvPrec  = 8192.0      // 2^13
	fiveInvPrec = 1220703125.0 // 5^13
)

// Round13 rounds x to 13 fractional decimal digits, using the reference's
// specific tie-break: a tentative floor-based rounding is only bumped up
// when x sits strictly between two representable multiples of 1e-13 and the
// fractional remainder (computed via the 2^13/5^13 split, which is exact in
// binary floating point) is at least one half.
func Round13(x float64) float64 {
	tentative := math.Floor(x*invPrec) / invPrec
	truncated := math.Mod(x*twoInvPrec, 1) * fiveInvPrec

	next := math.Nextafter(x, math.Inf(1))
	if tentative != x && tentative != next && math.Mod(truncated, 1) >= 0.5 {
		return (math.Floor(x*invPrec) + 1) / invPrec
	}
	return tentative
}

// assertFinite panics if x is NaN or +/-Inf. Numeric primitives never error
// under normal operation; a non-finite result indicates a programming bug
// (malformed seed bytes, an id collision, etc.) and must fail loudly rather
// than propagate silently into a draw.
func assertFinite(x float64) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		panic("rng: non-finite value in numeric primitive")
	}
}
