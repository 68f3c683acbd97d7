package crypt

// Trit is a balanced ternary digit: -1, 0 or 1.
type Trit = int8

const (
	NUMBER_OF_ROUNDSP27 = 27
	NUMBER_OF_ROUNDSP81 = 81
	HASH_LENGTH         = 243
	STATE_LENGTH        = 3 * HASH_LENGTH
	NONCE_LENGTH        = 81

	rotationStep = 364
)

// Indexed by a + 4*b + 5. The entries holding 2 are unreachable for valid trits.
var truthTable = [11]Trit{1, 0, -1, 2, 1, -1, 0, 2, -1, 1, 0}

// rotation[i] and rotation[i+1] are the positions read to produce position i.
// The cursor advances by 364 modulo 729 and visits every position once per round,
// with rotation[STATE_LENGTH] wrapping back to 0.
var rotation = func() (r [STATE_LENGTH + 1]int) {
	for i := 1; i <= STATE_LENGTH; i++ {
		r[i] = (r[i-1] + rotationStep) % STATE_LENGTH
	}
	return r
}()

// TruthTable returns a copy of the substitution table.
func TruthTable() [11]Trit {
	return truthTable
}
