package warnsink

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/KasumiMercury/primind-timebomb/timebomb"
)

const defaultMemoryCapacity = 1024

// MemorySink is the single-process counterpart of RedisSink.
type MemorySink struct {
	mu       sync.Mutex
	seen     *expirable.LRU[string, struct{}]
	interval time.Duration
	next     timebomb.Sink
}

func NewMemorySink(interval time.Duration, next timebomb.Sink) *MemorySink {
	return &MemorySink{
		seen:     expirable.NewLRU[string, struct{}](defaultMemoryCapacity, nil, interval),
		interval: interval,
		next:     next,
	}
}

func (s *MemorySink) Warn(msg string) {
	if s.interval <= 0 {
		s.next(msg)
		return
	}

	key := dedupKey(msg)

	s.mu.Lock()
	if s.seen.Contains(key) {
		s.mu.Unlock()
		return
	}
	s.seen.Add(key, struct{}{})
	s.mu.Unlock()

	s.next(msg)
}

func (s *MemorySink) Sink() timebomb.Sink {
	return s.Warn
}
