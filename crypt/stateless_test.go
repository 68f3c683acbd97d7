package crypt

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatelessVectors(t *testing.T) {
	hash := Digest(make([]Trit, 8019), NUMBER_OF_ROUNDSP81)
	assert.Equal(t, nullHash, trytes(hash[:]))

	hash = Digest(trits(t, transactionTrytes), NUMBER_OF_ROUNDSP81)
	assert.Equal(t, "NHKOIVLNEKLZHJQHNEZJOFWQYCQVHKQKFIEZNJJVBBNUOWJMQMCBVVXUVBVLUDVCFXROAXQJKYMEUXJQF", trytes(hash[:]))
}

func TestStatelessMatchesSponge(t *testing.T) {
	random := rand.New(rand.NewSource(5))
	for _, length := range []int{0, 1, 100, HASH_LENGTH, HASH_LENGTH + 1, 3 * HASH_LENGTH, 8019} {
		for _, rounds := range []int{1, 2, 27, 81} {
			input := randomTrits(random, length)
			assert.Equal(t, NewCurlRounds(rounds).Digest(input), Digest(input, rounds),
				"length %d rounds %d", length, rounds)
		}
	}
}

func BenchmarkStatelessDigest(b *testing.B) {
	input := randomTrits(rand.New(rand.NewSource(0)), 8019)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Digest(input, NUMBER_OF_ROUNDSP81)
	}
}
