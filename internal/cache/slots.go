package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/jmkbeauty/salon-booking/internal/metrics"
	ucbooking "github.com/jmkbeauty/salon-booking/internal/usecase/booking"
)

// SlotCache is a short-TTL Redis cache in front of availability
// computation. Slots are a pure function of booking state, so writes
// invalidate the whole date. Every Redis failure degrades to a miss.
type SlotCache struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

func NewSlotCache(rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *SlotCache {
	return &SlotCache{rdb: rdb, ttl: ttl, log: log}
}

func slotKey(date string, serviceID uint, stylistID *uint) string {
	if stylistID != nil {
		return fmt.Sprintf("slots:%s:%d:%d", date, serviceID, *stylistID)
	}
	return fmt.Sprintf("slots:%s:%d:any", date, serviceID)
}

func (c *SlotCache) GetSlots(
	ctx context.Context,
	date string,
	serviceID uint,
	stylistID *uint,
) (*ucbooking.AvailabilityResult, bool) {

	raw, err := c.rdb.Get(ctx, slotKey(date, serviceID, stylistID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("slot cache read failed")
		}
		metrics.IncSlotCacheMiss()
		return nil, false
	}

	var res ucbooking.AvailabilityResult
	if err := json.Unmarshal(raw, &res); err != nil {
		metrics.IncSlotCacheMiss()
		return nil, false
	}

	metrics.IncSlotCacheHit()
	return &res, true
}

func (c *SlotCache) SetSlots(
	ctx context.Context,
	date string,
	serviceID uint,
	stylistID *uint,
	res *ucbooking.AvailabilityResult,
) {

	raw, err := json.Marshal(res)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, slotKey(date, serviceID, stylistID), raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("slot cache write failed")
	}
}

// InvalidateDate drops every cached grid for the date, across services
// and stylists.
func (c *SlotCache) InvalidateDate(ctx context.Context, date string) {
	iter := c.rdb.Scan(ctx, 0, "slots:"+date+":*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.Warn().Err(err).Str("key", iter.Val()).Msg("slot cache invalidation failed")
			return
		}
	}
	if err := iter.Err(); err != nil {
		c.log.Warn().Err(err).Msg("slot cache scan failed")
	}
}

var _ ucbooking.SlotCache = (*SlotCache)(nil)
