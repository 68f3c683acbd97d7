package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gitlab.com/semkodev/curlp/convert"
	"gitlab.com/semkodev/curlp/crypt"
	"gitlab.com/semkodev/curlp/logs"
	"gitlab.com/semkodev/curlp/metrics"
)

var (
	// only one nonce search runs at a time
	searchLock            = &sync.Mutex{}
	cancelLock            = &sync.Mutex{}
	cancelSearch          context.CancelFunc
	maxMinWeightMagnitude = 0
	searchTimeout         time.Duration
)

func init() {
	addStartModule(startPoW)

	addAPICall("searchNonce", searchNonce)
	addAPICall("interruptNonceSearch", interruptNonceSearch)
}

func startPoW(apiConfig *viper.Viper) {
	maxMinWeightMagnitude = apiConfig.GetInt("api.pow.maxMinWeightMagnitude")
	searchTimeout = apiConfig.GetDuration("api.pow.timeout")

	logs.Log.Debug("maxMinWeightMagnitude:", maxMinWeightMagnitude)
	logs.Log.Debug("searchTimeout:", searchTimeout)
}

func interruptSearch() {
	cancelLock.Lock()
	defer cancelLock.Unlock()
	if cancelSearch != nil {
		cancelSearch()
	}
}

func interruptNonceSearch(request Request, c *gin.Context, t time.Time) {
	interruptSearch()
	c.JSON(http.StatusOK, gin.H{})
}

func searchNonce(request Request, c *gin.Context, t time.Time) {
	rounds, err := requestRounds(request)
	if err != nil {
		ReplyError(err.Error(), c)
		return
	}
	if request.MinWeightMagnitude < 0 || request.MinWeightMagnitude > maxMinWeightMagnitude {
		ReplyError("MinWeightMagnitude too high", c)
		return
	}
	if len(request.Trytes) != 1 {
		ReplyError("Exactly one trytes input required", c)
		return
	}
	trits, err := toTrits(request.Trytes[0])
	if err != nil || len(trits) == 0 || len(trits)%crypt.HASH_LENGTH != 0 {
		ReplyError("Invalid trytes", c)
		return
	}

	searchLock.Lock()
	defer searchLock.Unlock()

	var ctx context.Context
	var cancel context.CancelFunc
	if searchTimeout > 0 {
		ctx, cancel = context.WithTimeout(c.Request.Context(), searchTimeout)
	} else {
		ctx, cancel = context.WithCancel(c.Request.Context())
	}
	defer cancel()
	cancelLock.Lock()
	cancelSearch = cancel
	cancelLock.Unlock()

	result, err := crypt.SearchNonce(ctx, trits, request.MinWeightMagnitude, rounds)
	metrics.NonceSearchDuration.Observe(getDuration(t))

	cancelLock.Lock()
	cancelSearch = nil
	cancelLock.Unlock()

	if err != nil {
		if errors.Cause(err) == crypt.ErrSearchInterrupted {
			logs.Log.Info("Nonce search interrupted")
			ReplyError("Nonce search interrupted", c)
			return
		}
		logs.Log.Errorf("Nonce search failed: %v", err)
		ReplyError("Nonce search failed", c)
		return
	}

	hash := crypt.Digest(result, rounds)
	metrics.DigestCounter.WithLabelValues("scalar").Inc()
	c.JSON(http.StatusOK, gin.H{
		"trytes":   convert.TritsToTrytes(result),
		"hash":     convert.TritsToTrytes(hash[:]),
		"duration": getDuration(t),
	})
}
