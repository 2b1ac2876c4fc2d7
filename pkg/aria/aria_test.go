package aria

import (
	"bytes"
	"encoding/hex"
	"testing"

	"aria-go/pkg/xorshift"
)

// RFC 5794 appendix A example data. All three vectors share the plaintext.
var rfcVectors = []struct {
	bits       int
	rounds     int
	key        string
	ciphertext string
}{
	{128, 12, "000102030405060708090a0b0c0d0e0f", "d718fbd6ab644c739da95f3be6451778"},
	{192, 14, "000102030405060708090a0b0c0d0e0f1011121314151617", "26449c1805dbe7aa25a468ce263a9e79"},
	{256, 16, "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f", "f92bd7c79fb72e2f2b8f80c1972d24fc"},
}

const rfcPlaintext = "00112233445566778899aabbccddeeff"

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

func TestRFCVectorsCipher(t *testing.T) {
	plaintext := mustHex(t, rfcPlaintext)
	for _, v := range rfcVectors {
		c, err := NewCipher(mustHex(t, v.key))
		if err != nil {
			t.Fatalf("%d-bit key: NewCipher failed: %v", v.bits, err)
		}

		got := make([]byte, BlockSize)
		c.Encrypt(got, plaintext)
		if want := mustHex(t, v.ciphertext); !bytes.Equal(got, want) {
			t.Errorf("%d-bit encrypt: got %x, want %x", v.bits, got, want)
		}

		back := make([]byte, BlockSize)
		c.Decrypt(back, got)
		if !bytes.Equal(back, plaintext) {
			t.Errorf("%d-bit decrypt: got %x, want %x", v.bits, back, plaintext)
		}
	}
}

func TestRFCVectorsBlockAPI(t *testing.T) {
	plaintext, _ := BlockFromBytes(mustHex(t, rfcPlaintext))
	for _, v := range rfcVectors {
		var padded [32]byte
		copy(padded[:], mustHex(t, v.key))
		keyLeft, _ := BlockFromBytes(padded[0:16])
		keyRight, _ := BlockFromBytes(padded[16:32])

		enc, err := InitKeySchedule(keyLeft, keyRight, Encrypt, v.bits)
		if err != nil {
			t.Fatalf("%d-bit encrypt schedule: %v", v.bits, err)
		}
		if got := enc.Rounds(); got != v.rounds {
			t.Errorf("%d-bit key: got %d rounds, want %d", v.bits, got, v.rounds)
		}

		ct := enc.Crypt(plaintext)
		if ct.String() != v.ciphertext {
			t.Errorf("%d-bit encrypt: got %s, want %s", v.bits, ct, v.ciphertext)
		}

		dec, err := InitKeySchedule(keyLeft, keyRight, Decrypt, v.bits)
		if err != nil {
			t.Fatalf("%d-bit decrypt schedule: %v", v.bits, err)
		}
		if pt := dec.Crypt(ct); pt != plaintext {
			t.Errorf("%d-bit decrypt: got %s, want %s", v.bits, pt, plaintext)
		}
	}
}

func TestSBoxInverses(t *testing.T) {
	for b := 0; b < 256; b++ {
		if got := sb3[sb1[b]]; got != byte(b) {
			t.Fatalf("sb3[sb1[%#02x]] = %#02x", b, got)
		}
		if got := sb4[sb2[b]]; got != byte(b) {
			t.Fatalf("sb4[sb2[%#02x]] = %#02x", b, got)
		}
	}
}

func randomBlock(rng *xorshift.XorShift128Plus) Block128 {
	return Block128{Left: rng.Next(), Right: rng.Next()}
}

func TestDiffuseInvolution(t *testing.T) {
	rng := xorshift.NewXorShift128Plus(1)
	for i := 0; i < 1000; i++ {
		x := randomBlock(rng)
		if got := diffuse(diffuse(x)); got != x {
			t.Fatalf("A(A(%s)) = %s", x, got)
		}
	}
}

func TestSubstitutionLayersMutualInverse(t *testing.T) {
	rng := xorshift.NewXorShift128Plus(2)
	for i := 0; i < 1000; i++ {
		x := randomBlock(rng)
		if got := sl2(sl1(x)); got != x {
			t.Fatalf("SL2(SL1(%s)) = %s", x, got)
		}
		if got := sl1(sl2(x)); got != x {
			t.Fatalf("SL1(SL2(%s)) = %s", x, got)
		}
	}
}

func TestRotateRoundTrip(t *testing.T) {
	x := Block128{0x0123456789abcdef, 0xfedcba9876543210}
	for _, cnt := range []uint{1, 19, 31, 61, 63} {
		if got := rotr(rotl(x, cnt), cnt); got != x {
			t.Errorf("rotr(rotl(x, %d), %d) = %s, want %s", cnt, cnt, got, x)
		}
	}
	// A full 128-bit rotation decomposes into two 64-bit-bounded ones.
	if got := rotl(rotl(x, 64-19), 19); got != (Block128{x.Right, x.Left}) {
		t.Errorf("rotl by 64 via two steps = %s", got)
	}
}

func TestInitKeyScheduleErrors(t *testing.T) {
	var zero Block128
	for _, bits := range []int{0, 100, 300} {
		if _, err := InitKeySchedule(zero, zero, Encrypt, bits); err != ErrBadKeySize {
			t.Errorf("key size %d: got %v, want ErrBadKeySize", bits, err)
		}
	}
	if _, err := InitKeySchedule(zero, zero, Direction(5), 128); err != ErrBadDirection {
		t.Errorf("direction 5: got %v, want ErrBadDirection", err)
	}
	if _, err := NewCipher(nil); err != ErrBadArgument {
		t.Errorf("nil key: got %v, want ErrBadArgument", err)
	}
	if _, err := NewCipher(make([]byte, 15)); err != ErrBadKeySize {
		t.Errorf("15-byte key: got %v, want ErrBadKeySize", err)
	}
}

func TestRoundTripAllKeySizes(t *testing.T) {
	rng := xorshift.NewXorShift128Plus(3)
	for _, keyLen := range []int{16, 24, 32} {
		for i := 0; i < 200; i++ {
			key := make([]byte, keyLen)
			for j := range key {
				key[j] = byte(rng.Next())
			}
			c, err := NewCipher(key)
			if err != nil {
				t.Fatalf("NewCipher(%d bytes): %v", keyLen, err)
			}
			pt := randomBlock(rng).Bytes()
			ct := make([]byte, BlockSize)
			back := make([]byte, BlockSize)
			c.Encrypt(ct, pt[:])
			c.Decrypt(back, ct)
			if !bytes.Equal(back, pt[:]) {
				t.Fatalf("%d-byte key round trip: got %x, want %x", keyLen, back, pt)
			}
		}
	}
}

// TestFuzzRoundTrip256 mirrors the harness fuzz mode: seeded random 256-bit
// keys and plaintexts, encrypt then decrypt, expect zero mismatches.
func TestFuzzRoundTrip256(t *testing.T) {
	iterations := 1000000
	if testing.Short() {
		iterations = 10000
	}
	rng := xorshift.NewXorShift128Plus(0x5a5a5a5a5a5a5a5a)
	for i := 0; i < iterations; i++ {
		keyLeft := randomBlock(rng)
		keyRight := randomBlock(rng)
		pt := randomBlock(rng)

		enc, err := InitKeySchedule(keyLeft, keyRight, Encrypt, 256)
		if err != nil {
			t.Fatal(err)
		}
		dec, err := InitKeySchedule(keyLeft, keyRight, Decrypt, 256)
		if err != nil {
			t.Fatal(err)
		}
		if got := dec.Crypt(enc.Crypt(pt)); got != pt {
			t.Fatalf("iteration %d: round trip mismatch: got %s, want %s", i, got, pt)
		}
	}
}

func BenchmarkEncrypt(b *testing.B) {
	c, err := NewCipher(make([]byte, 32))
	if err != nil {
		b.Fatal(err)
	}
	buf := make([]byte, BlockSize)
	b.SetBytes(BlockSize)
	for i := 0; i < b.N; i++ {
		c.Encrypt(buf, buf)
	}
}

func BenchmarkKeySchedule(b *testing.B) {
	var zero Block128
	for i := 0; i < b.N; i++ {
		if _, err := InitKeySchedule(zero, zero, Encrypt, 256); err != nil {
			b.Fatal(err)
		}
	}
}
