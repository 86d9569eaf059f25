// Package syncutil - примитивы синхронизации, разделяемые сервисами.
package syncutil

import (
	"hash/fnv"
	"sync"
)

const shardCount = 256

// ShardedMutex - фиксированный пул мьютексов, выбираемых по ключу.
// Память не растет с числом ключей; ключи с одинаковым хешем делят мьютекс.
type ShardedMutex struct {
	shards [shardCount]sync.Mutex
}

// Lock захватывает мьютекс ключа и возвращает функцию освобождения
func (s *ShardedMutex) Lock(key string) func() {
	mu := s.shard(key)
	mu.Lock()
	return mu.Unlock
}

func (s *ShardedMutex) shard(key string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return &s.shards[h.Sum32()%shardCount]
}
