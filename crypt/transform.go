package crypt

// Transform applies rounds of the Curl-P permutation to state.
// Each round reads only the previous round's buffer.
func Transform(state *[STATE_LENGTH]Trit, rounds int) {
	var scratch [STATE_LENGTH]Trit
	src, dst := state, &scratch

	for round := 0; round < rounds; round++ {
		for i := 0; i < STATE_LENGTH; i++ {
			dst[i] = truthTable[int(src[rotation[i]])+int(src[rotation[i+1]])<<2+5]
		}
		src, dst = dst, src
	}

	if src != state {
		*state = *src
	}
}

// Scalar is the Permutation over plain trits.
type Scalar struct{}

func (Scalar) Zero() Trit { return 0 }

func (Scalar) Transform(state *[STATE_LENGTH]Trit, rounds int) { Transform(state, rounds) }
