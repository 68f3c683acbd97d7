package crypt

// Permutation is the round function a Sponge is built on, for one item
// representation: plain trits or bit-sliced lanes of trits.
type Permutation[T any] interface {
	// Zero returns the item encoding trit 0.
	Zero() T
	// Transform applies rounds of the permutation to state in place.
	Transform(state *[STATE_LENGTH]T, rounds int)
}

// Sponge absorbs input into a 729 item state and squeezes output from it,
// HASH_LENGTH items at a time, permuting the state after every chunk.
type Sponge[T any] struct {
	state  [STATE_LENGTH]T
	rounds int
	perm   Permutation[T]
}

// Curl is the scalar Curl-P sponge.
type Curl = Sponge[Trit]

func NewSponge[T any](perm Permutation[T], rounds int) *Sponge[T] {
	sponge := &Sponge[T]{rounds: rounds, perm: perm}
	sponge.Reset()
	return sponge
}

// NewCurl returns a Curl-P-81 sponge.
func NewCurl() *Curl {
	return NewCurlRounds(NUMBER_OF_ROUNDSP81)
}

func NewCurlRounds(rounds int) *Curl {
	return NewSponge[Trit](Scalar{}, rounds)
}

func (sponge *Sponge[T]) Rounds() int {
	return sponge.rounds
}

// Reset zeroes the state. The round count is kept.
func (sponge *Sponge[T]) Reset() {
	zero := sponge.perm.Zero()
	for i := range sponge.state {
		sponge.state[i] = zero
	}
}

// State returns a copy of the current state.
func (sponge *Sponge[T]) State() [STATE_LENGTH]T {
	return sponge.state
}

// Clone returns an independent sponge with the same state and round count.
func (sponge *Sponge[T]) Clone() *Sponge[T] {
	clone := *sponge
	return &clone
}

// Absorb overwrites the state prefix with each chunk of at most HASH_LENGTH
// items and permutes. Positions past a short chunk keep their values.
func (sponge *Sponge[T]) Absorb(items []T) {
	for offset := 0; offset < len(items); offset += HASH_LENGTH {
		end := offset + HASH_LENGTH
		if end > len(items) {
			end = len(items)
		}
		copy(sponge.state[:end-offset], items[offset:end])
		sponge.transform()
	}
}

func (sponge *Sponge[T]) Squeeze() [HASH_LENGTH]T {
	var out [HASH_LENGTH]T
	sponge.SqueezeInto(out[:])
	return out
}

// SqueezeInto fills out from the state prefix, permuting after every chunk.
// When len(out) is not a multiple of HASH_LENGTH the trailing partial chunk
// is copied again from the permuted state and permuted once more.
func (sponge *Sponge[T]) SqueezeInto(out []T) {
	length := len(out)
	for offset := 0; offset < length; offset += HASH_LENGTH {
		end := offset + HASH_LENGTH
		if end > length {
			end = length
		}
		copy(out[offset:end], sponge.state[:end-offset])
		sponge.transform()
	}

	if last := length % HASH_LENGTH; last != 0 {
		copy(out[length-last:], sponge.state[:last])
		sponge.transform()
	}
}

func (sponge *Sponge[T]) Digest(input []T) [HASH_LENGTH]T {
	sponge.Absorb(input)
	return sponge.Squeeze()
}

func (sponge *Sponge[T]) DigestInto(input []T, out []T) {
	sponge.Absorb(input)
	sponge.SqueezeInto(out)
}

func (sponge *Sponge[T]) transform() {
	sponge.perm.Transform(&sponge.state, sponge.rounds)
}
