package syncutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShardedMutex_MutualExclusion(t *testing.T) {
	var m ShardedMutex
	var wg sync.WaitGroup
	counter := 0
	const n = 200

	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			unlock := m.Lock("user-1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, n, counter)
}

func TestShardedMutex_SameKeySameShard(t *testing.T) {
	var m ShardedMutex
	assert.Same(t, m.shard("user-42"), m.shard("user-42"))
}
