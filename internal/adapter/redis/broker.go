// Package redis relays domain events between server instances over Redis
// pub/sub.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
)

// LocalPublisher receives the events read from Redis. *event.Hub satisfies it.
type LocalPublisher interface {
	Publish(ctx context.Context, e domain.Event) error
}

// Broker publishes events to a Redis channel and republishes every message
// from that channel into the local hub, including its own.
type Broker struct {
	client  *redis.Client
	channel string
	local   LocalPublisher
	log     *slog.Logger
	done    chan struct{}
}

// NewBroker connects to redisURL and pings it.
func NewBroker(ctx context.Context, redisURL, channel string, local LocalPublisher, logger *slog.Logger) (*Broker, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Broker{
		client:  client,
		channel: channel,
		local:   local,
		log:     logger.With("adapter", "redis"),
		done:    make(chan struct{}),
	}, nil
}

// Start subscribes to the channel and relays messages until ctx is done.
// It returns once the subscription is confirmed by the server.
func (b *Broker) Start(ctx context.Context) error {
	pubsub := b.client.Subscribe(ctx, b.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return fmt.Errorf("redis subscribe %s: %w", b.channel, err)
	}

	go func() {
		defer close(b.done)
		defer pubsub.Close()

		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				b.relay(ctx, msg.Payload)
			}
		}
	}()

	b.log.Info("redis event relay started", slog.String("channel", b.channel))
	return nil
}

func (b *Broker) relay(ctx context.Context, payload string) {
	var e domain.Event
	if err := json.Unmarshal([]byte(payload), &e); err != nil {
		b.log.WarnContext(ctx, "redis: bad event payload", slog.String("error", err.Error()))
		return
	}
	if err := b.local.Publish(ctx, e); err != nil {
		b.log.WarnContext(ctx, "redis: local publish failed", slog.String("error", err.Error()))
	}
}

// Publish sends e to every instance subscribed to the channel.
func (b *Broker) Publish(ctx context.Context, e domain.Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("redis: encode event: %w", err)
	}
	if err := b.client.Publish(ctx, b.channel, data).Err(); err != nil {
		return fmt.Errorf("redis: publish: %w", err)
	}
	return nil
}

// Ping checks the connection; used by the readiness check.
func (b *Broker) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

// Close closes the Redis client. The relay goroutine stops when the context
// passed to Start is cancelled.
func (b *Broker) Close() error {
	return b.client.Close()
}

// Done is closed after the relay goroutine exits.
func (b *Broker) Done() <-chan struct{} {
	return b.done
}
