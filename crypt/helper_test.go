package crypt

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/semkodev/curlp/convert"
)

const (
	helloWorld = "HELLOWORLD"
	nullHash   = "999999999999999999999999999999999999999999999999999999999999999999999999999999999"
)

// transactionTrytes is HELLOWORLD repeated over a full 8019 trit transaction.
var transactionTrytes = strings.Repeat(helloWorld, 267) + "HEL"

func trits(t testing.TB, trytes string) []Trit {
	result, err := convert.TrytesToTrits(trytes)
	require.NoError(t, err)
	return result
}

func trytes(trits []Trit) string {
	return convert.TritsToTrytes(trits)
}

func randomTrits(random *rand.Rand, length int) []Trit {
	result := make([]Trit, length)
	for i := range result {
		result[i] = Trit(random.Intn(3) - 1)
	}
	return result
}

func randomState(random *rand.Rand) (state [STATE_LENGTH]Trit) {
	copy(state[:], randomTrits(random, STATE_LENGTH))
	return state
}
