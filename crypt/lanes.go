package crypt

import (
	"math/bits"

	"github.com/pkg/errors"
)

var (
	ErrInvalidTrit = errors.New("invalid trit")
	ErrUnsetTrit   = errors.New("unset binary coded trit")
	ErrLaneCount   = errors.New("wrong number of lanes")
)

// Lanes returns the number of independent lanes in W.
func Lanes[W Word]() int {
	return bits.OnesCount64(uint64(^W(0)))
}

// Pack interleaves equal-length inputs into binary coded trits, input i going
// to lane i. Lanes without an input carry trit 0.
func Pack[W Word](inputs [][]Trit) ([]BCTrit[W], error) {
	if len(inputs) == 0 || len(inputs) > Lanes[W]() {
		return nil, errors.Wrapf(ErrLaneCount, "%d inputs for %d lanes", len(inputs), Lanes[W]())
	}

	size := len(inputs[0])
	packed := Broadcast[W](make([]Trit, size))

	for lane, input := range inputs {
		if len(input) != size {
			return nil, errors.Errorf("lane %d has %d trits, expected %d", lane, len(input), size)
		}
		bit := W(1) << uint(lane)
		for i, trit := range input {
			switch trit {
			case -1:
				packed[i].Hi &^= bit
			case 0:
			case 1:
				packed[i].Lo &^= bit
			default:
				return nil, errors.Wrapf(ErrInvalidTrit, "lane %d position %d: %d", lane, i, trit)
			}
		}
	}
	return packed, nil
}

// Broadcast encodes trits with the same value in every lane.
func Broadcast[W Word](trits []Trit) []BCTrit[W] {
	packed := make([]BCTrit[W], len(trits))
	for i, trit := range trits {
		switch trit {
		case -1:
			packed[i] = BCTrit[W]{Lo: ^W(0)}
		case 1:
			packed[i] = BCTrit[W]{Hi: ^W(0)}
		default:
			packed[i] = BCTrit[W]{Lo: ^W(0), Hi: ^W(0)}
		}
	}
	return packed
}

// Unpack extracts the trits of one lane.
func Unpack[W Word](packed []BCTrit[W], lane int) ([]Trit, error) {
	if lane < 0 || lane >= Lanes[W]() {
		return nil, errors.Wrapf(ErrLaneCount, "lane %d out of %d", lane, Lanes[W]())
	}

	trits := make([]Trit, len(packed))
	for i, p := range packed {
		lo, hi := (p.Lo>>uint(lane))&1, (p.Hi>>uint(lane))&1
		switch {
		case lo == 1 && hi == 1:
			trits[i] = 0
		case lo == 1:
			trits[i] = -1
		case hi == 1:
			trits[i] = 1
		default:
			return nil, errors.Wrapf(ErrUnsetTrit, "lane %d position %d", lane, i)
		}
	}
	return trits, nil
}
