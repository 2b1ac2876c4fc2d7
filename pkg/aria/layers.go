package aria

// Substitution layer SL1 applies SB1,SB2,SB3,SB4 cyclically across the 16
// bytes of the block (RFC 5794 section 2.4.2, used in odd rounds).
func sl1(x Block128) Block128 {
	b := x.Bytes()
	out := [16]byte{
		sb1[b[0]], sb2[b[1]], sb3[b[2]], sb4[b[3]],
		sb1[b[4]], sb2[b[5]], sb3[b[6]], sb4[b[7]],
		sb1[b[8]], sb2[b[9]], sb3[b[10]], sb4[b[11]],
		sb1[b[12]], sb2[b[13]], sb3[b[14]], sb4[b[15]],
	}
	y, _ := BlockFromBytes(out[:])
	return y
}

// Substitution layer SL2 is the inverse of SL1 (even rounds).
func sl2(x Block128) Block128 {
	b := x.Bytes()
	out := [16]byte{
		sb3[b[0]], sb4[b[1]], sb1[b[2]], sb2[b[3]],
		sb3[b[4]], sb4[b[5]], sb1[b[6]], sb2[b[7]],
		sb3[b[8]], sb4[b[9]], sb1[b[10]], sb2[b[11]],
		sb3[b[12]], sb4[b[13]], sb1[b[14]], sb2[b[15]],
	}
	y, _ := BlockFromBytes(out[:])
	return y
}

// diffuse is the byte diffusion layer A of RFC 5794 section 2.4.3. Each
// output byte XORs exactly seven input bytes; A is an involution.
func diffuse(x Block128) Block128 {
	b := x.Bytes()
	out := [16]byte{
		b[3] ^ b[4] ^ b[6] ^ b[8] ^ b[9] ^ b[13] ^ b[14],
		b[2] ^ b[5] ^ b[7] ^ b[8] ^ b[9] ^ b[12] ^ b[15],
		b[1] ^ b[4] ^ b[6] ^ b[10] ^ b[11] ^ b[12] ^ b[15],
		b[0] ^ b[5] ^ b[7] ^ b[10] ^ b[11] ^ b[13] ^ b[14],
		b[0] ^ b[2] ^ b[5] ^ b[8] ^ b[11] ^ b[14] ^ b[15],
		b[1] ^ b[3] ^ b[4] ^ b[9] ^ b[10] ^ b[14] ^ b[15],
		b[0] ^ b[2] ^ b[7] ^ b[9] ^ b[10] ^ b[12] ^ b[13],
		b[1] ^ b[3] ^ b[6] ^ b[8] ^ b[11] ^ b[12] ^ b[13],
		b[0] ^ b[1] ^ b[4] ^ b[7] ^ b[10] ^ b[13] ^ b[15],
		b[0] ^ b[1] ^ b[5] ^ b[6] ^ b[11] ^ b[12] ^ b[14],
		b[2] ^ b[3] ^ b[5] ^ b[6] ^ b[8] ^ b[13] ^ b[15],
		b[2] ^ b[3] ^ b[4] ^ b[7] ^ b[9] ^ b[12] ^ b[14],
		b[1] ^ b[2] ^ b[6] ^ b[7] ^ b[9] ^ b[11] ^ b[12],
		b[0] ^ b[3] ^ b[6] ^ b[7] ^ b[8] ^ b[10] ^ b[13],
		b[0] ^ b[3] ^ b[4] ^ b[5] ^ b[9] ^ b[11] ^ b[14],
		b[1] ^ b[2] ^ b[4] ^ b[5] ^ b[8] ^ b[10] ^ b[15],
	}
	y, _ := BlockFromBytes(out[:])
	return y
}

// fo is the odd round function: FO(D, RK) = A(SL1(D ^ RK)).
func fo(d, rk Block128) Block128 {
	return diffuse(sl1(xor(d, rk)))
}

// fe is the even round function: FE(D, RK) = A(SL2(D ^ RK)).
func fe(d, rk Block128) Block128 {
	return diffuse(sl2(xor(d, rk)))
}
