package convert

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

var helloWorldTrits = []int8{-1, 0, 1, -1, -1, 1, 0, 1, 1, 0, 1, 1, 0, -1, -1, -1, -1, 0, 0, -1, -1, 0, 0, -1, 0, 1, 1, 1, 1, 0}

func TestTrytesToTrits(t *testing.T) {
	trits, err := TrytesToTrits("HELLOWORLD")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(trits, helloWorldTrits) {
		t.Error("Trits wrong!", trits)
	}
}

func TestTrytesToTritsInvalid(t *testing.T) {
	trits, err := TrytesToTrits("HELLOWORLD11sd")
	if errors.Cause(err) != ErrInvalidTryte {
		t.Error("Expected invalid tryte error, got", err)
	}
	if trits != nil {
		t.Error("Trits wrong!")
	}
}

func TestTrytesRoundTrip(t *testing.T) {
	expected := "99DEVIOTA9FIELD9DONATION99"
	trits, err := TrytesToTrits(expected)
	if err != nil {
		t.Fatal(err)
	}
	if result := TritsToTrytes(trits); result != expected {
		t.Error("Trits wrong!", result)
	}
}

func TestTritsToTrytes(t *testing.T) {
	if result := TritsToTrytes(helloWorldTrits); result != "HELLOWORLD" {
		t.Error("Trytes wrong!", result)
	}
}

func TestTritsToTrytesPadding(t *testing.T) {
	// 1 and 1,0,0 are both A.
	if result := TritsToTrytes([]int8{0, 0, 0, 1}); result != "9A" {
		t.Error("Trytes wrong!", result)
	}
}

func TestTritsToBytes(t *testing.T) {
	result := TritsToBytes(helloWorldTrits)
	expected := []byte{156, 37, 152, 171, 228, 40}
	if !reflect.DeepEqual(expected, result) {
		t.Error("Bytes wrong!", result)
	}
}

func TestBytesToTrits(t *testing.T) {
	result := BytesToTrits([]byte{156, 37, 152, 171, 228, 40})
	if !reflect.DeepEqual(helloWorldTrits, result) {
		t.Error("Trits wrong!", result)
	}
}

func TestTrytesToBytes(t *testing.T) {
	expected := "99DEVIOTA9FIELD9DONATION99"
	b, err := TrytesToBytes(expected)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 16 {
		t.Fatal("Wrong byte count", len(b))
	}
	// 78 trits are padded to 80, which adds one trailing tryte.
	if result := BytesToTrytes(b)[:len(expected)]; result != expected {
		t.Error("Bytes wrong!", result)
	}
}

func TestTritsToInt(t *testing.T) {
	expected := int64(33792688625192)
	if result := TritsToInt(helloWorldTrits); result != expected {
		t.Error("Trits int conversion wrong!", expected, result)
	}
}

func TestIntToTrits(t *testing.T) {
	trits := []int8{0, 1, -1, 1, 0, -1, 1, -1, 0, -1, -1, 1, 1, 0, 0, 0, -1, 0, -1, 0, -1, -1, 1, 1, -1, -1, 1}
	value := TritsToInt(trits)
	if value != 1523294944203 {
		t.Error("Trits int conversion wrong!", value)
	}
	if result := IntToTrits(value, len(trits)); !reflect.DeepEqual(trits, result) {
		t.Error("Int trits conversion wrong!", value, result)
	}
}

func TestIntToTritsNegative(t *testing.T) {
	for _, value := range []int64{-1, -13, -121, -1000000} {
		if result := TritsToInt(IntToTrits(value, 20)); result != value {
			t.Error("Negative conversion wrong!", value, result)
		}
	}
}

func TestConversions(t *testing.T) {
	word := "ANSDJDAAODSA999DASDW"
	trits, err := TrytesToTrits(word)
	if err != nil {
		t.Fatal(err)
	}
	result := TritsToTrytes(BytesToTrits(TritsToBytes(trits)))
	if !reflect.DeepEqual(word, result) {
		t.Error("Wrong conversions!", result)
	}
}

func TestIsTrytes(t *testing.T) {
	trytes := "ABCDEF9"
	if !IsTrytes(trytes, len(trytes)) {
		t.Error("Trytes were given but it detected non-trytes")
	}

	if IsTrytes("ABCDEF8", len(trytes)) {
		t.Error("Non-trytes were given but it detected only trytes")
	}

	if IsTrytes(trytes+"RERER", len(trytes)) {
		t.Error("Invalid length provided and it detected only trytes")
	}
}
