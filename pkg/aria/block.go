package aria

import (
	"encoding/binary"
	"fmt"
)

// Block128 is a 128-bit cipher block held as two 64-bit halves.
// Byte 0 of the block is the most significant byte of Left. Blocks are
// plain values; every operation returns a new one.
type Block128 struct {
	Left  uint64
	Right uint64
}

// rotl rotates x left by cnt bits across the 128-bit ring, 0 < cnt < 64.
func rotl(x Block128, cnt uint) Block128 {
	return Block128{
		Left:  x.Left<<cnt | x.Right>>(64-cnt),
		Right: x.Right<<cnt | x.Left>>(64-cnt),
	}
}

// rotr rotates x right by cnt bits across the 128-bit ring, 0 < cnt < 64.
func rotr(x Block128, cnt uint) Block128 {
	return Block128{
		Left:  x.Left>>cnt | x.Right<<(64-cnt),
		Right: x.Right>>cnt | x.Left<<(64-cnt),
	}
}

func xor(x, y Block128) Block128 {
	return Block128{Left: x.Left ^ y.Left, Right: x.Right ^ y.Right}
}

// BlockFromBytes builds a block from 16 big-endian bytes.
func BlockFromBytes(b []byte) (Block128, error) {
	if len(b) != BlockSize {
		return Block128{}, fmt.Errorf("aria: block must be %d bytes, got %d", BlockSize, len(b))
	}
	return Block128{
		Left:  binary.BigEndian.Uint64(b[0:8]),
		Right: binary.BigEndian.Uint64(b[8:16]),
	}, nil
}

// Bytes returns the block as 16 big-endian bytes.
func (x Block128) Bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[0:8], x.Left)
	binary.BigEndian.PutUint64(b[8:16], x.Right)
	return b
}

// String renders the block as 32 lowercase hex digits.
func (x Block128) String() string {
	return fmt.Sprintf("%016x%016x", x.Left, x.Right)
}
