package convert

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	TRYTES          = "NOPQRSTUVWXYZ9ABCDEFGHIJKLM"
	TRITS_PER_TRYTE = 3
	TRITS_PER_BYTE  = 5
)

var ErrInvalidTryte = errors.New("invalid tryte")

// tryteTrits[i] holds the trits of TRYTES[i], whose value is i-13.
var tryteTrits = func() (t [len(TRYTES)][TRITS_PER_TRYTE]int8) {
	for i := range t {
		copy(t[i][:], IntToTrits(int64(i-13), TRITS_PER_TRYTE))
	}
	return t
}()

// TritsToTrytes encodes trits three at a time. A trailing partial tryte is
// padded with zero trits.
func TritsToTrytes(trits []int8) string {
	index := func(i int) int {
		if i >= len(trits) {
			return 0
		}
		return int(trits[i])
	}

	var trytes strings.Builder
	size := (len(trits) + TRITS_PER_TRYTE - 1) / TRITS_PER_TRYTE
	trytes.Grow(size)
	for i := 0; i < size; i++ {
		pos := index(i*3) + index(i*3+1)*3 + index(i*3+2)*9 + 13
		trytes.WriteByte(TRYTES[pos])
	}
	return trytes.String()
}

func TrytesToTrits(trytes string) ([]int8, error) {
	trits := make([]int8, 0, len(trytes)*TRITS_PER_TRYTE)
	for i, char := range trytes {
		pos := strings.IndexRune(TRYTES, char)
		if pos < 0 {
			return nil, errors.Wrapf(ErrInvalidTryte, "%q at %d", char, i)
		}
		trits = append(trits, tryteTrits[pos][:]...)
	}
	return trits, nil
}

func IsTrytes(trytes string, length int) bool {
	if len(trytes) != length {
		return false
	}
	_, err := TrytesToTrits(trytes)
	return err == nil
}

// TritsToInt reads trits as a little endian balanced ternary number.
func TritsToInt(trits []int8) int64 {
	var value int64
	for i := len(trits) - 1; i >= 0; i-- {
		value = value*3 + int64(trits[i])
	}
	return value
}

// IntToTrits writes value as size little endian balanced ternary trits,
// dropping whatever does not fit.
func IntToTrits(value int64, size int) []int8 {
	trits := make([]int8, size)
	negative := value < 0
	if negative {
		value = -value
	}

	for i := 0; i < size && value != 0; i++ {
		remainder := int8(value % 3)
		value /= 3
		if remainder == 2 {
			remainder = -1
			value++
		}
		trits[i] = remainder
	}

	if negative {
		for i := range trits {
			trits[i] = -trits[i]
		}
	}
	return trits
}

// TritsToBytes packs five trits into each byte as the two's complement of
// their balanced value. The last group is padded with zero trits.
func TritsToBytes(trits []int8) []byte {
	bytes := make([]byte, (len(trits)+TRITS_PER_BYTE-1)/TRITS_PER_BYTE)
	for i := range bytes {
		end := (i + 1) * TRITS_PER_BYTE
		if end > len(trits) {
			end = len(trits)
		}
		bytes[i] = byte(int8(TritsToInt(trits[i*TRITS_PER_BYTE : end])))
	}
	return bytes
}

func BytesToTrits(bytes []byte) []int8 {
	trits := make([]int8, 0, len(bytes)*TRITS_PER_BYTE)
	for _, b := range bytes {
		trits = append(trits, IntToTrits(int64(int8(b)), TRITS_PER_BYTE)...)
	}
	return trits
}

func TrytesToBytes(trytes string) ([]byte, error) {
	trits, err := TrytesToTrits(trytes)
	if err != nil {
		return nil, err
	}
	return TritsToBytes(trits), nil
}

func BytesToTrytes(bytes []byte) string {
	return TritsToTrytes(BytesToTrits(bytes))
}
