package api

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"gitlab.com/semkodev/curlp/crypt"
	"gitlab.com/semkodev/curlp/utils"
)

const (
	appName    = "Curl-P Hasher"
	appVersion = "0.1.0"
)

var startTime = time.Now().Unix()

func init() {
	addAPICall("getHasherInfo", getHasherInfo)
}

func getHasherInfo(request Request, c *gin.Context, t time.Time) {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	c.JSON(http.StatusOK, gin.H{
		"appName":             appName,
		"appVersion":          appVersion,
		"availableProcessors": runtime.NumCPU(),
		"currentRoutines":     runtime.NumGoroutine(),
		"allocatedMemory":     stats.Sys,
		"defaultRounds":       defaultRounds,
		"maxRounds":           maxRounds,
		"lanes":               crypt.Lanes[uint64](),
		"hashLength":          crypt.HASH_LENGTH,
		"stateLength":         crypt.STATE_LENGTH,
		"cachedDigests":       cache.entryCount(),
		"startTime":           startTime,
		"startTimeReadable":   utils.GetHumanReadableTime(startTime),
		"time":                time.Now().Unix(),
		"duration":            getDuration(t),
	})
}
