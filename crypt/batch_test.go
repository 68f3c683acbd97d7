package crypt

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigestBatch(t *testing.T) {
	random := rand.New(rand.NewSource(13))

	// 70 inputs of one length overflow a 64 lane word.
	var inputs [][]Trit
	for i := 0; i < 70; i++ {
		inputs = append(inputs, randomTrits(random, 2*HASH_LENGTH))
	}
	inputs = append(inputs, nil, trits(t, helloWorld), randomTrits(random, 10))
	inputs = append(inputs, randomTrits(random, 2*HASH_LENGTH))

	hashes, err := DigestBatch(inputs, NUMBER_OF_ROUNDSP81)
	require.NoError(t, err)
	require.Len(t, hashes, len(inputs))

	for i, input := range inputs {
		assert.Equal(t, Digest(input, NUMBER_OF_ROUNDSP81), hashes[i], "input %d", i)
	}
	assert.Equal(t, "BXGWEJJWOVPJ9PHONY9DVSAZPVYIMABCAARCEPVQFRNNXWSSAKGHHCEYZXPVHUPDJJODKCMIQAXEXOPQ9", trytes(hashes[71][:]))
}

func TestDigestBatchEmpty(t *testing.T) {
	hashes, err := DigestBatch(nil, NUMBER_OF_ROUNDSP81)
	require.NoError(t, err)
	assert.Empty(t, hashes)
}

func TestDigestBatchInvalidTrit(t *testing.T) {
	_, err := DigestBatch([][]Trit{{0, 5}}, NUMBER_OF_ROUNDSP81)
	assert.Error(t, err)
}
