package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
)

// Source is the store behind the cache.
type Source interface {
	domain.AvailabilityStore
	domain.AvailabilityAdmin
}

// AvailabilityCache is a read-through redis cache over Source. Writes go to
// Source and then drop the affected keys. Redis failures fall back to
// Source.
type AvailabilityCache struct {
	rdb  *redis.Client
	next Source
	ttl  time.Duration
	log  *zap.Logger
}

const keyPrefix = "availability:"

func NewAvailabilityCache(rdb *redis.Client, next Source, ttl time.Duration, log *zap.Logger) *AvailabilityCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &AvailabilityCache{rdb: rdb, next: next, ttl: ttl, log: log}
}

func weeklyKey(providerID string) string {
	return keyPrefix + "weekly:" + providerID
}

func overrideKey(providerID string, date domain.Date) string {
	return keyPrefix + "override:" + providerID + ":" + date.String()
}

// -------- reads --------

func (c *AvailabilityCache) GetWeeklyAvailability(ctx context.Context, providerID string) (domain.WeeklyAvailability, error) {
	var w domain.WeeklyAvailability
	if c.get(ctx, weeklyKey(providerID), &w) {
		return w, nil
	}

	w, err := c.next.GetWeeklyAvailability(ctx, providerID)
	if err != nil {
		return w, err
	}
	c.set(ctx, weeklyKey(providerID), w)
	return w, nil
}

// GetDateOverride caches absent overrides as JSON null so that "no
// override" is remembered too.
func (c *AvailabilityCache) GetDateOverride(ctx context.Context, providerID string, date domain.Date) (*domain.DateOverride, error) {
	var o *domain.DateOverride
	if c.get(ctx, overrideKey(providerID, date), &o) {
		return o, nil
	}

	o, err := c.next.GetDateOverride(ctx, providerID, date)
	if err != nil {
		return nil, err
	}
	c.set(ctx, overrideKey(providerID, date), o)
	return o, nil
}

func (c *AvailabilityCache) ListDateOverrides(ctx context.Context, providerID string, from, to domain.Date) (map[domain.Date]domain.DateOverride, error) {
	return c.next.ListDateOverrides(ctx, providerID, from, to)
}

// -------- writes --------

func (c *AvailabilityCache) ReplaceWeeklyAvailability(ctx context.Context, providerID string, weekly domain.WeeklyAvailability) error {
	if err := c.next.ReplaceWeeklyAvailability(ctx, providerID, weekly); err != nil {
		return err
	}
	c.invalidate(ctx, weeklyKey(providerID))
	return nil
}

func (c *AvailabilityCache) UpsertDateOverride(ctx context.Context, providerID string, override domain.DateOverride) error {
	if err := c.next.UpsertDateOverride(ctx, providerID, override); err != nil {
		return err
	}
	c.invalidate(ctx, overrideKey(providerID, override.Date))
	return nil
}

func (c *AvailabilityCache) DeleteDateOverride(ctx context.Context, providerID string, date domain.Date) error {
	if err := c.next.DeleteDateOverride(ctx, providerID, date); err != nil {
		return err
	}
	c.invalidate(ctx, overrideKey(providerID, date))
	return nil
}

// -------- redis --------

func (c *AvailabilityCache) get(ctx context.Context, key string, dst any) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		c.log.Warn("availability cache read", zap.String("key", key), zap.Error(err))
		return false
	}

	if err := decodeEntry(raw, dst); err != nil {
		c.log.Warn("availability cache decode", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *AvailabilityCache) set(ctx context.Context, key string, v any) {
	raw, err := encodeEntry(v)
	if err != nil {
		c.log.Warn("availability cache encode", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("availability cache write", zap.String("key", key), zap.Error(err))
	}
}

// encodeEntry and decodeEntry define the stored value format. A nil
// *DateOverride encodes as null and decodes back to nil.
func encodeEntry(v any) ([]byte, error) {
	return json.Marshal(v)
}

func decodeEntry(raw []byte, dst any) error {
	return json.Unmarshal(raw, dst)
}

func (c *AvailabilityCache) invalidate(ctx context.Context, keys ...string) {
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("availability cache invalidate", zap.Strings("keys", keys), zap.Error(err))
	}
}

var _ Source = (*AvailabilityCache)(nil)
