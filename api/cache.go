package api

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
	"github.com/coocood/freecache"
	"gitlab.com/semkodev/curlp/convert"
	"gitlab.com/semkodev/curlp/crypt"
	"gitlab.com/semkodev/curlp/logs"
	"gitlab.com/semkodev/curlp/metrics"
)

// digestCache maps (rounds, input trytes) to the packed digest trits.
type digestCache struct {
	cache  *freecache.Cache
	expire int
}

func newDigestCache(size int, expire int) *digestCache {
	return &digestCache{cache: freecache.NewCache(size), expire: expire}
}

func (d *digestCache) key(rounds int, trytes string) []byte {
	h := xxhash.New()
	var prefix [4]byte
	binary.BigEndian.PutUint32(prefix[:], uint32(rounds))
	h.Write(prefix[:])
	h.Write([]byte(trytes))

	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, h.Sum64())
	return key
}

func (d *digestCache) get(rounds int, trytes string) (string, bool) {
	value, err := d.cache.Get(d.key(rounds, trytes))
	if err != nil {
		metrics.CacheCounter.WithLabelValues("miss").Inc()
		return "", false
	}
	metrics.CacheCounter.WithLabelValues("hit").Inc()
	return convert.TritsToTrytes(convert.BytesToTrits(value)[:crypt.HASH_LENGTH]), true
}

func (d *digestCache) put(rounds int, trytes string, hash []int8) {
	if err := d.cache.Set(d.key(rounds, trytes), convert.TritsToBytes(hash), d.expire); err != nil {
		logs.Log.Warningf("Could not cache digest: %v", err)
	}
}

func (d *digestCache) entryCount() int64 {
	return d.cache.EntryCount()
}
