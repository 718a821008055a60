package ratelimit

import (
	"context"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ACBRI/veritas.ia/pkg/e"
)

// Limiter is a per-client fixed-window admission control backed by Redis.
// The window starts at the first request from a client and resets only by
// natural key expiry, so a burst straddling the boundary is possible and
// accepted (fixed window, not sliding).
type Limiter struct {
	client   *goredis.Client
	logger   *slog.Logger
	max      int
	window   time.Duration
	failOpen bool
}

// The whole get/compare/increment sequence runs server-side in one EVAL so
// two racing requests from the same client can never both read max-1.
// Rejections do not increment the counter.
var allowScript = goredis.NewScript(`
local count = redis.call('GET', KEYS[1])
if not count then
  redis.call('SET', KEYS[1], 1, 'PX', ARGV[2])
  return 1
end
if tonumber(count) >= tonumber(ARGV[1]) then
  return 0
end
redis.call('INCR', KEYS[1])
return 1
`)

func New(client *goredis.Client, logger *slog.Logger, max int, window time.Duration, failOpen bool) *Limiter {
	if max < 1 {
		max = 5
	}
	if window <= 0 {
		window = 5 * time.Minute
	}
	return &Limiter{
		client:   client,
		logger:   logger,
		max:      max,
		window:   window,
		failOpen: failOpen,
	}
}

// Allow reports whether the client may make another request in its current
// window. An exhausted limit is a normal false result, never an error. A
// counter-store outage is returned as an error unless the limiter was built
// fail-open, in which case the request is admitted with a warning.
func (l *Limiter) Allow(ctx context.Context, clientID string) (bool, error) {
	const op = "ratelimit.Allow"

	key := "rate_limit:" + clientID

	res, err := allowScript.Run(ctx, l.client,
		[]string{key}, l.max, l.window.Milliseconds()).Int()
	if err != nil {
		if l.failOpen {
			l.logger.Warn("rate limit store unavailable, failing open",
				slog.String("client", clientID),
				slog.Any("error", err),
			)
			return true, nil
		}
		l.logger.Error("rate limit store unavailable",
			slog.String("client", clientID),
			slog.Any("error", err),
		)
		return false, e.Wrap(op, err)
	}

	if res == 0 {
		l.logger.Warn("rate limit exceeded", slog.String("client", clientID))
		return false, nil
	}
	return true, nil
}
