package warnsink

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-timebomb/internal/observability/tracing"
	"github.com/KasumiMercury/primind-timebomb/timebomb"
)

const (
	dedupKeyPrefix      = "timebomb:warned:"
	defaultRedisTimeout = 500 * time.Millisecond
)

// RedisSink forwards a warning only if no replica sharing the Redis instance
// forwarded the identical message within the interval. Redis failures fall
// back to forwarding, so warnings are never lost to an outage.
type RedisSink struct {
	client   redis.Cmdable
	interval time.Duration
	timeout  time.Duration
	next     timebomb.Sink
}

func NewRedisSink(client redis.Cmdable, interval time.Duration, next timebomb.Sink) *RedisSink {
	return &RedisSink{
		client:   client,
		interval: interval,
		timeout:  defaultRedisTimeout,
		next:     next,
	}
}

func (s *RedisSink) Warn(msg string) {
	if s.interval <= 0 {
		s.next(msg)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	key := dedupKey(msg)

	ctx, span := tracing.StartRedisOperationSpan(ctx, "setnx", key)
	defer span.End()

	first, err := s.client.SetNX(ctx, key, time.Now().Unix(), s.interval).Result()
	if err != nil {
		slog.WarnContext(ctx, "failed to check warning de-duplication, forwarding",
			slog.String("event", "timebomb.warnsink.redis.fail"),
			slog.String("error", err.Error()),
		)
		span.RecordError(err)
		s.next(msg)
		return
	}

	if !first {
		slog.DebugContext(ctx, "suppressed duplicate timebomb warning",
			slog.String("key", key),
		)
		return
	}

	s.next(msg)
}

func (s *RedisSink) Sink() timebomb.Sink {
	return s.Warn
}

func dedupKey(msg string) string {
	return dedupKeyPrefix + strconv.FormatUint(xxhash.Sum64String(msg), 16)
}
