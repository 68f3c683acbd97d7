package crypt

import (
	"context"
	"math/bits"

	"github.com/pkg/errors"
	"gitlab.com/semkodev/curlp/convert"
)

var ErrSearchInterrupted = errors.New("nonce search interrupted")

type powWord = uint64

// IsValidPoW reports whether the last mwm trits of hash are zero.
func IsValidPoW(hash []Trit, mwm int) bool {
	if mwm > len(hash) {
		return false
	}
	for i := len(hash) - mwm; i < len(hash); i++ {
		if hash[i] != 0 {
			return false
		}
	}
	return true
}

// SearchNonce looks for a nonce, written into the last NONCE_LENGTH trits of
// trits, that gives a digest ending in mwm zero trits. Every iteration tries
// one candidate per lane of the bit-sliced sponge. The input is not modified;
// the returned copy carries the nonce.
func SearchNonce(ctx context.Context, trits []Trit, mwm int, rounds int) ([]Trit, error) {
	if len(trits) == 0 || len(trits)%HASH_LENGTH != 0 {
		return nil, errors.Errorf("input of %d trits is not a multiple of %d", len(trits), HASH_LENGTH)
	}
	if mwm < 0 || mwm > HASH_LENGTH {
		return nil, errors.Errorf("min weight magnitude %d out of range", mwm)
	}
	for i, trit := range trits {
		if trit < -1 || trit > 1 {
			return nil, errors.Wrapf(ErrInvalidTrit, "position %d: %d", i, trit)
		}
	}

	last := len(trits) - HASH_LENGTH
	prefix := NewBCTCurl[powWord](rounds)
	prefix.Absorb(Broadcast[powWord](trits[:last]))

	lanes := Lanes[powWord]()
	candidates := make([][]Trit, lanes)
	for lane := range candidates {
		candidates[lane] = make([]Trit, HASH_LENGTH)
		copy(candidates[lane], trits[last:])
	}

	for counter := int64(0); ; counter++ {
		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ErrSearchInterrupted, ctx.Err().Error())
		default:
		}

		for lane, candidate := range candidates {
			nonce := convert.IntToTrits(counter*int64(lanes)+int64(lane), NONCE_LENGTH)
			copy(candidate[HASH_LENGTH-NONCE_LENGTH:], nonce)
		}
		packed, err := Pack[powWord](candidates)
		if err != nil {
			return nil, err
		}

		hash := prefix.Clone().Digest(packed)

		// Trit 0 sets both bits, so a lane survives only if its tail is all zero.
		found := ^powWord(0)
		for i := HASH_LENGTH - mwm; i < HASH_LENGTH; i++ {
			found &= hash[i].Lo & hash[i].Hi
		}
		if found != 0 {
			lane := bits.TrailingZeros64(found)
			result := make([]Trit, len(trits))
			copy(result, trits)
			copy(result[last:], candidates[lane])
			return result, nil
		}
	}
}
