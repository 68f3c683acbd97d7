package crypt

// Digest hashes trits without a sponge object. It equals
// NewCurlRounds(rounds).Digest(trits).
func Digest(trits []Trit, rounds int) [HASH_LENGTH]Trit {
	var state [STATE_LENGTH]Trit

	for offset := 0; offset < len(trits); offset += HASH_LENGTH {
		end := offset + HASH_LENGTH
		if end > len(trits) {
			end = len(trits)
		}
		copy(state[:], trits[offset:end])
		transformUnrolled(&state, rounds)
	}

	var hash [HASH_LENGTH]Trit
	copy(hash[:], state[:HASH_LENGTH])
	return hash
}

// transformUnrolled is Transform with the rotation written out as offsets:
// output 2i+1 reads (364-i, 728-i) and output 2i+2 reads (728-i, 363-i).
func transformUnrolled(state *[STATE_LENGTH]Trit, rounds int) {
	var scratch [STATE_LENGTH]Trit
	src, dst := state, &scratch

	for round := 0; round < rounds; round++ {
		dst[0] = truthTable[int(src[0])+int(src[364])<<2+5]
		for i := 0; i < 364; i++ {
			dst[2*i+1] = truthTable[int(src[364-i])+int(src[728-i])<<2+5]
			dst[2*i+2] = truthTable[int(src[728-i])+int(src[363-i])<<2+5]
		}
		src, dst = dst, src
	}

	if src != state {
		*state = *src
	}
}
