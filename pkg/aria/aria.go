// Package aria implements the ARIA block cipher as specified in RFC 5794.
// ARIA has a block size of 16 bytes and accepts 16-, 24-, or 32-byte keys
// with 12, 14, or 16 rounds respectively.
//
// The package exposes two levels: InitKeySchedule/Crypt work on Block128
// values and mirror the RFC description, while Cipher provides the usual
// byte-slice Encrypt/Decrypt interface on top of a pair of schedules.
// Neither level implements a mode of operation or padding, and the table
// lookups are not constant time.
package aria

// BlockSize is the ARIA block size in bytes.
const BlockSize = 16

// Crypt runs the round cascade over one block. The same cascade serves
// both directions; whether the result is an encryption or a decryption is
// decided entirely by the schedule's direction. The cascade alternates the
// odd and even round functions and finishes with the substitution plus
// double key addition of the last round.
func (ks *KeySchedule) Crypt(in Block128) Block128 {
	p := fo(in, ks.rk[1])
	for i := 2; i < ks.rounds; {
		p = fe(p, ks.rk[i])
		i++
		p = fo(p, ks.rk[i])
		i++
	}
	return xor(sl2(xor(p, ks.rk[ks.rounds])), ks.rk[ks.rounds+1])
}

// Cipher is a byte-oriented ARIA instance holding one schedule per
// direction. It is immutable after NewCipher and safe for concurrent use.
type Cipher struct {
	enc *KeySchedule
	dec *KeySchedule
}

// NewCipher creates an ARIA cipher with the given 16-, 24-, or 32-byte key.
func NewCipher(key []byte) (*Cipher, error) {
	if key == nil {
		return nil, ErrBadArgument
	}
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, ErrBadKeySize
	}

	var padded [32]byte
	copy(padded[:], key)
	keyLeft, _ := BlockFromBytes(padded[0:16])
	keyRight, _ := BlockFromBytes(padded[16:32])
	bits := len(key) * 8

	enc, err := InitKeySchedule(keyLeft, keyRight, Encrypt, bits)
	if err != nil {
		return nil, err
	}
	dec, err := InitKeySchedule(keyLeft, keyRight, Decrypt, bits)
	if err != nil {
		return nil, err
	}
	return &Cipher{enc: enc, dec: dec}, nil
}

// BlockSize returns the cipher block size in bytes.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt encrypts the 16-byte block src into dst. dst and src may overlap.
func (c *Cipher) Encrypt(dst, src []byte) {
	cryptBytes(c.enc, dst, src)
}

// Decrypt decrypts the 16-byte block src into dst. dst and src may overlap.
func (c *Cipher) Decrypt(dst, src []byte) {
	cryptBytes(c.dec, dst, src)
}

func cryptBytes(ks *KeySchedule, dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("aria: input not full block")
	}
	in, _ := BlockFromBytes(src[:BlockSize])
	out := ks.Crypt(in).Bytes()
	copy(dst[:BlockSize], out[:])
}
