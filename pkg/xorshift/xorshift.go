// Package xorshift implements Sebastiano Vigna's xorshift64*, xorshift128+,
// and xorshift1024* pseudorandom generators. These are fast, seedable,
// deterministic streams for fuzzing and benchmarking; they are not
// cryptographically secure.
//
// Generators are plain structs with no shared state, so independent
// instances may be used from different goroutines.
package xorshift

// Avalanche is the MurmurHash3 64-bit finalizer, used to spread seed bits
// before they enter a generator state.
func Avalanche(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

// A zero seed would zero the generator state, which xorshift cannot leave;
// it is remapped to this constant before avalanching.
const zeroSeedReplacement = 42

// XorShift64Star is the 64-bit-state generator. Smallest state, shortest
// period of the three.
type XorShift64Star struct {
	x uint64
}

// NewXorShift64Star returns a generator seeded from seed.
func NewXorShift64Star(seed uint64) *XorShift64Star {
	g := &XorShift64Star{}
	g.Seed(seed)
	return g
}

// Seed resets the generator state from seed.
func (g *XorShift64Star) Seed(seed uint64) {
	if seed == 0 {
		seed = zeroSeedReplacement
	}
	g.x = Avalanche(seed)
}

// Next returns the next pseudorandom 64-bit word.
func (g *XorShift64Star) Next() uint64 {
	g.x ^= g.x >> 12
	g.x ^= g.x << 25
	g.x ^= g.x >> 27
	return g.x * 2685821657736338717
}

// XorShift128Plus is the fastest of the three generators and the one the
// fuzz harness draws from.
type XorShift128Plus struct {
	s [2]uint64
}

// NewXorShift128Plus returns a generator seeded from seed.
func NewXorShift128Plus(seed uint64) *XorShift128Plus {
	g := &XorShift128Plus{}
	g.Seed(seed)
	return g
}

// Seed resets the generator state from seed by passing it twice through
// the avalanche function, as the reference implementation suggests.
func (g *XorShift128Plus) Seed(seed uint64) {
	if seed == 0 {
		seed = zeroSeedReplacement
	}
	s0 := Avalanche(Avalanche(seed))
	g.s[0] = s0
	g.s[1] = Avalanche(s0)
}

// Next returns the next pseudorandom 64-bit word.
func (g *XorShift128Plus) Next() uint64 {
	s1 := g.s[0]
	s0 := g.s[1]
	g.s[0] = s0
	s1 ^= s1 << 23
	g.s[1] = s1 ^ s0 ^ (s1 >> 17) ^ (s0 >> 26)
	return g.s[1] + s0
}

// XorShift1024Star has 1024 bits of state for a very long period.
type XorShift1024Star struct {
	s [16]uint64
	p int
}

// NewXorShift1024Star returns a generator seeded from seed.
func NewXorShift1024Star(seed uint64) *XorShift1024Star {
	g := &XorShift1024Star{}
	g.Seed(seed)
	return g
}

// Seed resets the generator state from seed, filling the 16 state words
// from a seeded xorshift64* stream.
func (g *XorShift1024Star) Seed(seed uint64) {
	src := NewXorShift64Star(seed)
	for i := range g.s {
		g.s[i] = src.Next()
	}
	g.p = 0
}

// Next returns the next pseudorandom 64-bit word.
func (g *XorShift1024Star) Next() uint64 {
	s0 := g.s[g.p]
	g.p = (g.p + 1) & 15
	s1 := g.s[g.p]
	s1 ^= s1 << 31
	s1 ^= s1 >> 11
	s0 ^= s0 >> 30
	g.s[g.p] = s0 ^ s1
	return g.s[g.p] * 1181783497276652981
}
