package handlers

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// availabilityCache keeps rendered availability responses in redis for a
// short TTL. Writes to a slot invalidate every calendar day the written
// interval touches, so reads never serve a stale conflict picture longer
// than the TTL.
type availabilityCache struct {
	Client *redis.Client
	TTL    time.Duration
	Loc    *time.Location
	Logger *zap.Logger
}

func (a *availabilityCache) enabled() bool {
	return a != nil && a.Client != nil && a.TTL > 0
}

func (a *availabilityCache) key(date string) string {
	return "availability:" + date
}

// Get returns the cached JSON body for a date, or nil on miss.
func (a *availabilityCache) Get(ctx context.Context, date string) []byte {
	if !a.enabled() {
		return nil
	}
	body, err := a.Client.Get(ctx, a.key(date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			a.Logger.Warn("availability cache read failed", zap.Error(err))
		}
		return nil
	}
	return body
}

// Set stores the rendered JSON body for a date.
func (a *availabilityCache) Set(ctx context.Context, date string, body []byte) {
	if !a.enabled() {
		return
	}
	if err := a.Client.Set(ctx, a.key(date), body, a.TTL).Err(); err != nil {
		a.Logger.Warn("availability cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached days covered by [start, end).
func (a *availabilityCache) Invalidate(ctx context.Context, start, end time.Time) {
	if !a.enabled() {
		return
	}
	keys := make([]string, 0, 2)
	local := start.In(a.Loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, a.Loc)
	for day.Before(end.In(a.Loc)) {
		keys = append(keys, a.key(day.Format("2006-01-02")))
		day = day.AddDate(0, 0, 1)
	}
	if len(keys) == 0 {
		return
	}
	if err := a.Client.Del(ctx, keys...).Err(); err != nil {
		a.Logger.Warn("availability cache invalidation failed", zap.Error(err))
	}
}
