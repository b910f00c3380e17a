package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"virtual-payment-gateway/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// realtimeChannel is the pub/sub channel observing clients subscribe to.
const realtimeChannel = "vpg:events"

// RealtimePublisher implements ports.RealtimePublisher over Redis pub/sub.
// Events with no subscriber are dropped, which is the intended semantics
// for progress notifications.
type RealtimePublisher struct {
	client *goredis.Client
}

// NewRealtimePublisher creates a new Redis-backed realtime publisher.
func NewRealtimePublisher(client *goredis.Client) *RealtimePublisher {
	return &RealtimePublisher{client: client}
}

// Publish serializes the event and fans it out on the shared channel.
func (p *RealtimePublisher) Publish(ctx context.Context, event ports.RealtimeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal realtime event: %w", err)
	}
	if err := p.client.Publish(ctx, realtimeChannel, payload).Err(); err != nil {
		return fmt.Errorf("publish realtime event: %w", err)
	}
	return nil
}
