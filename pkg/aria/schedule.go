package aria

import "errors"

// Direction selects which cascade a key schedule is built for.
type Direction int

const (
	Encrypt Direction = iota
	Decrypt
)

func (d Direction) String() string {
	switch d {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return "unknown"
	}
}

var (
	// ErrBadArgument is returned for malformed or missing inputs,
	// such as a nil key passed to NewCipher.
	ErrBadArgument = errors.New("aria: bad argument")
	// ErrBadKeySize is returned for key sizes other than 128, 192, or 256 bits.
	ErrBadKeySize = errors.New("aria: key size must be 128, 192, or 256 bits")
	// ErrBadDirection is returned for a Direction other than Encrypt or Decrypt.
	ErrBadDirection = errors.New("aria: direction must be Encrypt or Decrypt")
)

// Key schedule constants C1..C3, the first 3*128 bits of the fractional
// part of 1/pi (RFC 5794 section 2.2).
var (
	c1 = Block128{0x517cc1b727220a94, 0xfe13abe8fa9a6ee0}
	c2 = Block128{0x6db14acc9e21c820, 0xff28b1d5ef5de2b0}
	c3 = Block128{0xdb92371d2126e970, 0x0324977504e8c90e}
)

// maxRoundKeys is the 17 round keys of the 16-round (256-bit key) variant,
// plus one slot so indices can follow the 1-based RFC numbering.
const maxRoundKeys = 18

// KeySchedule holds the ordered round keys for one direction. The round
// count and the key array are fixed together at construction and never
// change, so they cannot disagree. rk[1..rounds+1] are meaningful.
type KeySchedule struct {
	rk     [maxRoundKeys]Block128
	rounds int
	dir    Direction
}

// Rounds returns the round count: 12, 14, or 16. The schedule always
// carries Rounds()+1 round keys.
func (ks *KeySchedule) Rounds() int { return ks.rounds }

// Direction returns the cascade the schedule was built for.
func (ks *KeySchedule) Direction() Direction { return ks.dir }

// InitKeySchedule derives the round keys for the given master key halves,
// direction, and key size in bits. For key sizes of 192 and 256 bits,
// keyRight carries the key bits beyond the first 128, left-aligned and
// zero-padded; for 128-bit keys it must be the zero block.
func InitKeySchedule(keyLeft, keyRight Block128, dir Direction, keySizeBits int) (*KeySchedule, error) {
	var ck1, ck2, ck3 Block128
	var rounds int

	switch keySizeBits {
	case 128:
		ck1, ck2, ck3 = c1, c2, c3
		rounds = 12
	case 192:
		ck1, ck2, ck3 = c2, c3, c1
		rounds = 14
	case 256:
		ck1, ck2, ck3 = c3, c1, c2
		rounds = 16
	default:
		return nil, ErrBadKeySize
	}
	if dir != Encrypt && dir != Decrypt {
		return nil, ErrBadDirection
	}

	// W0..W3: a 3-round Feistel pass over KL || KR (RFC 5794 section 2.2).
	w0 := keyLeft
	w1 := xor(fo(w0, ck1), keyRight)
	w2 := xor(fe(w1, ck2), w0)
	w3 := xor(fo(w2, ck3), w1)

	ks := &KeySchedule{rounds: rounds, dir: dir}
	computeEncryptionKeys(w0, w1, w2, w3, &ks.rk)
	if dir == Decrypt {
		ks.rk = decryptionKeys(ks.rk, rounds)
	}
	return ks, nil
}

// computeEncryptionKeys fills ek[1..17] with the fixed rotate/XOR formulas
// of RFC 5794. Only the first rounds+1 entries are consumed by the cascade.
func computeEncryptionKeys(w0, w1, w2, w3 Block128, ek *[maxRoundKeys]Block128) {
	ek[1] = xor(w0, rotr(w1, 19))
	ek[2] = xor(w1, rotr(w2, 19))
	ek[3] = xor(w2, rotr(w3, 19))
	ek[4] = xor(rotr(w0, 19), w3)
	ek[5] = xor(w0, rotr(w1, 31))
	ek[6] = xor(w1, rotr(w2, 31))
	ek[7] = xor(w2, rotr(w3, 31))
	ek[8] = xor(rotr(w0, 31), w3)
	ek[9] = xor(w0, rotl(w1, 61))
	ek[10] = xor(w1, rotl(w2, 61))
	ek[11] = xor(w2, rotl(w3, 61))
	ek[12] = xor(rotl(w0, 61), w3)
	ek[13] = xor(w0, rotl(w1, 31))
	ek[14] = xor(w1, rotl(w2, 31))
	ek[15] = xor(w2, rotl(w3, 31))
	ek[16] = xor(rotl(w0, 31), w3)
	ek[17] = xor(w0, rotl(w1, 19))
}

// decryptionKeys maps an encryption key array onto the decryption one:
// dk1 = ek{n+1}, dk{n+1} = ek1, and dk{k} = A(ek{n+2-k}) for the interior
// keys. Implemented as a pure function over a fresh array; the RFC vector
// tests pin the index arithmetic down.
func decryptionKeys(ek [maxRoundKeys]Block128, rounds int) [maxRoundKeys]Block128 {
	var dk [maxRoundKeys]Block128
	dk[1] = ek[rounds+1]
	dk[rounds+1] = ek[1]
	for k := 2; k <= rounds; k++ {
		dk[k] = diffuse(ek[rounds+2-k])
	}
	return dk
}
