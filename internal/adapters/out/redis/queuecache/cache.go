// Package queuecache caches work center queues in Redis. Operator
// terminals poll their queue every few seconds; the cache absorbs those
// polls and is invalidated whenever a step at the work center moves.
package queuecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "shopfloor:wcqueue:"

// RedisWorkCenterQueueCache implements ports.WorkCenterQueueCache on a
// Redis client.
type RedisWorkCenterQueueCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisWorkCenterQueueCache creates a cache with the given TTL.
func NewRedisWorkCenterQueueCache(client *redis.Client, ttl time.Duration) *RedisWorkCenterQueueCache {
	return &RedisWorkCenterQueueCache{
		client: client,
		ttl:    ttl,
	}
}

// queueItemJSON is the cached wire shape of one queue row.
type queueItemJSON struct {
	OrderID      string     `json:"orderId"`
	LineID       string     `json:"lineId"`
	StepID       string     `json:"stepId"`
	StepCode     string     `json:"stepCode"`
	StepName     string     `json:"stepName"`
	StepSequence int        `json:"stepSequence"`
	StepState    string     `json:"stepState"`
	ScanInUtc    *time.Time `json:"scanInUtc,omitempty"`
}

// Get returns the cached queue for a work center, reporting ok=false on
// a miss.
func (c *RedisWorkCenterQueueCache) Get(
	ctx context.Context,
	workCenterID kernel.UUID,
) ([]ports.WorkCenterQueueItem, bool, error) {
	payload, err := c.client.Get(ctx, key(workCenterID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var rows []queueItemJSON
	if err := json.Unmarshal(payload, &rows); err != nil {
		return nil, false, err
	}

	items := make([]ports.WorkCenterQueueItem, 0, len(rows))
	for _, row := range rows {
		item, convErr := row.toItem()
		if convErr != nil {
			return nil, false, convErr
		}
		items = append(items, item)
	}
	return items, true, nil
}

// Put stores a freshly computed queue with the cache's TTL.
func (c *RedisWorkCenterQueueCache) Put(
	ctx context.Context,
	workCenterID kernel.UUID,
	items []ports.WorkCenterQueueItem,
) error {
	rows := make([]queueItemJSON, 0, len(items))
	for _, item := range items {
		rows = append(rows, queueItemJSON{
			OrderID:      item.OrderID.String(),
			LineID:       item.LineID.String(),
			StepID:       item.StepID.String(),
			StepCode:     item.StepCode,
			StepName:     item.StepName,
			StepSequence: item.StepSequence,
			StepState:    item.StepState,
			ScanInUtc:    item.ScanInUtc,
		})
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key(workCenterID), payload, c.ttl).Err()
}

// Invalidate drops the cached queue for a work center.
func (c *RedisWorkCenterQueueCache) Invalidate(ctx context.Context, workCenterID kernel.UUID) error {
	return c.client.Del(ctx, key(workCenterID)).Err()
}

func key(workCenterID kernel.UUID) string {
	return fmt.Sprintf("%s%s", keyPrefix, workCenterID.String())
}

func (row queueItemJSON) toItem() (ports.WorkCenterQueueItem, error) {
	orderID, err := kernel.UUIDFromString(row.OrderID)
	if err != nil {
		return ports.WorkCenterQueueItem{}, err
	}
	lineID, err := kernel.UUIDFromString(row.LineID)
	if err != nil {
		return ports.WorkCenterQueueItem{}, err
	}
	stepID, err := kernel.UUIDFromString(row.StepID)
	if err != nil {
		return ports.WorkCenterQueueItem{}, err
	}

	return ports.WorkCenterQueueItem{
		OrderID:      orderID,
		LineID:       lineID,
		StepID:       stepID,
		StepCode:     row.StepCode,
		StepName:     row.StepName,
		StepSequence: row.StepSequence,
		StepState:    row.StepState,
		ScanInUtc:    row.ScanInUtc,
	}, nil
}
