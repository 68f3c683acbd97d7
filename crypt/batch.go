package crypt

type batchWord = uint64

// DigestBatch hashes every input through the bit-sliced sponge, one lane per
// input. Inputs of the same length share a sponge. The result at index i is
// Digest(inputs[i], rounds).
func DigestBatch(inputs [][]Trit, rounds int) ([][HASH_LENGTH]Trit, error) {
	hashes := make([][HASH_LENGTH]Trit, len(inputs))

	var lengths []int
	groups := make(map[int][]int)
	for i, input := range inputs {
		if _, ok := groups[len(input)]; !ok {
			lengths = append(lengths, len(input))
		}
		groups[len(input)] = append(groups[len(input)], i)
	}

	lanes := Lanes[batchWord]()
	for _, length := range lengths {
		indexes := groups[length]
		for start := 0; start < len(indexes); start += lanes {
			end := start + lanes
			if end > len(indexes) {
				end = len(indexes)
			}
			batch := indexes[start:end]

			laneInputs := make([][]Trit, len(batch))
			for lane, index := range batch {
				laneInputs[lane] = inputs[index]
			}
			packed, err := Pack[batchWord](laneInputs)
			if err != nil {
				return nil, err
			}

			digest := NewBCTCurl[batchWord](rounds).Digest(packed)
			for lane, index := range batch {
				trits, err := Unpack(digest[:], lane)
				if err != nil {
					return nil, err
				}
				copy(hashes[index][:], trits)
			}
		}
	}
	return hashes, nil
}
