package crypt

import (
	"context"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPoW(t *testing.T) {
	hash := make([]Trit, HASH_LENGTH)
	assert.True(t, IsValidPoW(hash, 14))

	hash[HASH_LENGTH-3] = 1
	assert.True(t, IsValidPoW(hash, 2))
	assert.False(t, IsValidPoW(hash, 3))
	assert.False(t, IsValidPoW(hash, HASH_LENGTH+1))
}

func TestSearchNonce(t *testing.T) {
	random := rand.New(rand.NewSource(14))
	input := randomTrits(random, 3*HASH_LENGTH)
	mwm := 5

	result, err := SearchNonce(context.Background(), input, mwm, NUMBER_OF_ROUNDSP81)
	require.NoError(t, err)
	require.Len(t, result, len(input))

	// Only the nonce may change.
	last := len(input) - NONCE_LENGTH
	assert.Equal(t, input[:last], result[:last])

	hash := Digest(result, NUMBER_OF_ROUNDSP81)
	assert.True(t, IsValidPoW(hash[:], mwm))
}

func TestSearchNonceZeroWeight(t *testing.T) {
	input := trits(t, transactionTrytes)
	result, err := SearchNonce(context.Background(), input, 0, NUMBER_OF_ROUNDSP27)
	require.NoError(t, err)
	assert.Len(t, result, len(input))
}

func TestSearchNonceInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SearchNonce(ctx, make([]Trit, HASH_LENGTH), HASH_LENGTH, NUMBER_OF_ROUNDSP81)
	assert.Equal(t, ErrSearchInterrupted, errors.Cause(err))
}

func TestSearchNonceInvalidInput(t *testing.T) {
	_, err := SearchNonce(context.Background(), make([]Trit, 100), 1, NUMBER_OF_ROUNDSP81)
	assert.Error(t, err)

	_, err = SearchNonce(context.Background(), nil, 1, NUMBER_OF_ROUNDSP81)
	assert.Error(t, err)

	_, err = SearchNonce(context.Background(), make([]Trit, HASH_LENGTH), HASH_LENGTH+1, NUMBER_OF_ROUNDSP81)
	assert.Error(t, err)

	input := make([]Trit, HASH_LENGTH)
	input[7] = -2
	_, err = SearchNonce(context.Background(), input, 1, NUMBER_OF_ROUNDSP81)
	assert.Equal(t, ErrInvalidTrit, errors.Cause(err))
}
