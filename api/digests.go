package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iotaledger/giota"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gitlab.com/semkodev/curlp/convert"
	"gitlab.com/semkodev/curlp/crypt"
	"gitlab.com/semkodev/curlp/logs"
	"gitlab.com/semkodev/curlp/metrics"
)

const maxSqueezeLength = 27 * crypt.HASH_LENGTH

var (
	cache         *digestCache
	defaultRounds int
	maxRounds     int
	maxInputs     int
)

func init() {
	addStartModule(startDigests)

	addAPICall("getDigests", getDigests)
	addAPICall("squeeze", squeeze)
}

func startDigests(apiConfig *viper.Viper) {
	defaultRounds = apiConfig.GetInt("curl.rounds")
	maxRounds = apiConfig.GetInt("curl.maxRounds")
	maxInputs = apiConfig.GetInt("api.maxInputs")
	cache = newDigestCache(apiConfig.GetInt("api.cache.size"), apiConfig.GetInt("api.cache.expire"))

	logs.Log.Debug("defaultRounds:", defaultRounds)
	logs.Log.Debug("maxRounds:", maxRounds)
}

func requestRounds(request Request) (int, error) {
	if request.Rounds == 0 {
		return defaultRounds, nil
	}
	if request.Rounds < 0 || request.Rounds > maxRounds {
		return 0, errors.Errorf("rounds must be within [1, %d]", maxRounds)
	}
	return request.Rounds, nil
}

func toTrits(trytes string) ([]int8, error) {
	if len(trytes) > 0 {
		if _, err := giota.ToTrytes(trytes); err != nil {
			return nil, err
		}
	}
	return convert.TrytesToTrits(trytes)
}

func getDigests(request Request, c *gin.Context, t time.Time) {
	rounds, err := requestRounds(request)
	if err != nil {
		ReplyError(err.Error(), c)
		return
	}
	if len(request.Trytes) == 0 {
		ReplyError("No trytes provided", c)
		return
	}
	if len(request.Trytes) > maxInputs {
		ReplyError("Too many trytes", c)
		return
	}

	hashes := make([]string, len(request.Trytes))
	var missing []int
	var inputs [][]int8
	for i, trytes := range request.Trytes {
		if hash, ok := cache.get(rounds, trytes); ok {
			hashes[i] = hash
			continue
		}
		trits, err := toTrits(trytes)
		if err != nil {
			ReplyError(fmt.Sprintf("Invalid trytes at index %d", i), c)
			return
		}
		missing = append(missing, i)
		inputs = append(inputs, trits)
	}

	digests, err := crypt.DigestBatch(inputs, rounds)
	if err != nil {
		logs.Log.Errorf("Batch digest failed: %v", err)
		ReplyError("Could not compute digests", c)
		return
	}
	metrics.DigestCounter.WithLabelValues("bitsliced").Add(float64(len(inputs)))

	for j, i := range missing {
		hashes[i] = convert.TritsToTrytes(digests[j][:])
		cache.put(rounds, request.Trytes[i], digests[j][:])
	}

	c.JSON(http.StatusOK, gin.H{
		"hashes":   hashes,
		"duration": getDuration(t),
	})
}

func squeeze(request Request, c *gin.Context, t time.Time) {
	rounds, err := requestRounds(request)
	if err != nil {
		ReplyError(err.Error(), c)
		return
	}
	if len(request.Trytes) != 1 {
		ReplyError("Exactly one trytes input required", c)
		return
	}
	if request.Length <= 0 || request.Length%convert.TRITS_PER_TRYTE != 0 || request.Length > maxSqueezeLength {
		ReplyError(fmt.Sprintf("Length must be a positive multiple of %d up to %d", convert.TRITS_PER_TRYTE, maxSqueezeLength), c)
		return
	}
	trits, err := toTrits(request.Trytes[0])
	if err != nil {
		ReplyError("Invalid trytes", c)
		return
	}

	curl := crypt.NewCurlRounds(rounds)
	curl.Absorb(trits)
	out := make([]int8, request.Length)
	curl.SqueezeInto(out)
	metrics.DigestCounter.WithLabelValues("scalar").Inc()

	c.JSON(http.StatusOK, gin.H{
		"trytes":   convert.TritsToTrytes(out),
		"duration": getDuration(t),
	})
}
