package crypt

// Word is an unsigned machine word holding one lane per bit.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// BCTrit is a binary coded trit carrying one trit per lane of W.
// Per lane (Lo, Hi): (1, 0) = -1, (1, 1) = 0, (0, 1) = 1, (0, 0) is unset.
type BCTrit[W Word] struct {
	Lo W
	Hi W
}

// substitute is the truth table as a boolean circuit over both encodings,
// applied to all lanes at once.
func substitute[W Word](a, b BCTrit[W]) BCTrit[W] {
	delta := (a.Lo | ^b.Hi) & (b.Lo ^ a.Hi)
	return BCTrit[W]{
		Lo: ^delta,
		Hi: (a.Lo ^ b.Hi) | delta,
	}
}

// TransformBCT applies rounds of the Curl-P permutation to every lane of state.
func TransformBCT[W Word](state *[STATE_LENGTH]BCTrit[W], rounds int) {
	var scratch [STATE_LENGTH]BCTrit[W]
	src, dst := state, &scratch

	for round := 0; round < rounds; round++ {
		for i := 0; i < STATE_LENGTH; i++ {
			dst[i] = substitute(src[rotation[i]], src[rotation[i+1]])
		}
		src, dst = dst, src
	}

	if src != state {
		*state = *src
	}
}

// BitSliced is the Permutation over lanes of W.
type BitSliced[W Word] struct{}

func (BitSliced[W]) Zero() BCTrit[W] { return BCTrit[W]{Lo: ^W(0), Hi: ^W(0)} }

func (BitSliced[W]) Transform(state *[STATE_LENGTH]BCTrit[W], rounds int) {
	TransformBCT(state, rounds)
}

// NewBCTCurl returns a sponge hashing Lanes[W]() independent inputs at once.
func NewBCTCurl[W Word](rounds int) *Sponge[BCTrit[W]] {
	return NewSponge[BCTrit[W]](BitSliced[W]{}, rounds)
}
