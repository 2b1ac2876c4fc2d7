package xorshift

import "testing"

// Expected values computed with the reference C implementation.

func TestAvalanche(t *testing.T) {
	cases := []struct{ in, want uint64 }{
		{0x5a5a5a5a5a5a5a5a, 0x7e470f7941cc50be},
		{0x0123456789abcdef, 0x87cbfbfe89022cea},
	}
	for _, c := range cases {
		if got := Avalanche(c.in); got != c.want {
			t.Errorf("Avalanche(%#x) = %#x, want %#x", c.in, got, c.want)
		}
	}
}

func TestXorShift64StarSequence(t *testing.T) {
	g := NewXorShift64Star(0x5a5a5a5a5a5a5a5a)
	want := []uint64{
		0x09a6618a4dbfb667,
		0x4d6eda42a6d3c7a7,
		0x16f9b0cefa55c1c0,
		0x5c5d02069d5277be,
		0x8023688eaea19727,
	}
	for i, w := range want {
		if got := g.Next(); got != w {
			t.Fatalf("word %d: got %#x, want %#x", i, got, w)
		}
	}
}

func TestXorShift128PlusSequence(t *testing.T) {
	g := NewXorShift128Plus(0x5a5a5a5a5a5a5a5a)
	want := []uint64{
		0x7482d1e7a6c35da3,
		0xc34d531ba8530770,
		0x6276ef4d90f89da4,
		0x5185ca2d2c95f89d,
		0xa446a979561bb898,
		0xfc3706414669d741,
	}
	for i, w := range want {
		if got := g.Next(); got != w {
			t.Fatalf("word %d: got %#x, want %#x", i, got, w)
		}
	}
}

func TestXorShift1024StarSequence(t *testing.T) {
	g := NewXorShift1024Star(0x5a5a5a5a5a5a5a5a)
	want := []uint64{
		0x806a11418d748485,
		0x24b46331fb4111f8,
		0x504ac6cc965060c7,
		0xf6f32748f649d880,
		0x6f05dddbb3c51999,
	}
	for i, w := range want {
		if got := g.Next(); got != w {
			t.Fatalf("word %d: got %#x, want %#x", i, got, w)
		}
	}
}

func TestZeroSeedRemapped(t *testing.T) {
	a := NewXorShift128Plus(0)
	b := NewXorShift128Plus(zeroSeedReplacement)
	for i := 0; i < 10; i++ {
		if a.Next() != b.Next() {
			t.Fatal("zero seed should produce the same stream as the replacement seed")
		}
	}
}

func TestReseedRestartsStream(t *testing.T) {
	g := NewXorShift128Plus(7)
	first := g.Next()
	g.Next()
	g.Seed(7)
	if got := g.Next(); got != first {
		t.Fatalf("after reseed: got %#x, want %#x", got, first)
	}
}

func TestStreamsDiffer(t *testing.T) {
	a := NewXorShift128Plus(1)
	b := NewXorShift128Plus(2)
	same := 0
	for i := 0; i < 64; i++ {
		if a.Next() == b.Next() {
			same++
		}
	}
	if same > 0 {
		t.Errorf("streams for different seeds collided %d times in 64 draws", same)
	}
}
