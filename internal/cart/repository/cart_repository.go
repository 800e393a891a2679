package repository

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"breadlab/internal/domain"
)

const (
	keyPrefix = "cart:"

	// ChangeChannel carries the cart ID of every persisted mutation so other
	// open storefront views can re-read and re-render.
	ChangeChannel = "cart.changed"
)

type RedisCartRepository struct {
	client *goredis.Client
}

func NewRedisCartRepository(client *goredis.Client) *RedisCartRepository {
	return &RedisCartRepository{client: client}
}

// Load reads the persisted item list. A missing key or a value that does not
// parse yields an empty cart, never an error; only transport failures are
// reported, and callers treat those as best-effort too.
func (r *RedisCartRepository) Load(ctx context.Context, cartID string) (domain.Cart, error) {
	raw, err := r.client.Get(ctx, keyPrefix+cartID).Result()
	if err == goredis.Nil {
		return domain.Cart{}, nil
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("reading cart %q: %w", cartID, err)
	}

	var items []domain.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		// Corrupted state is discarded rather than surfaced.
		return domain.Cart{}, nil
	}

	return domain.Cart{Items: items}, nil
}

// Save writes the full item list as a JSON array and announces the change.
func (r *RedisCartRepository) Save(ctx context.Context, cartID string, cart domain.Cart) error {
	items := cart.Items
	if items == nil {
		items = []domain.CartItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding cart %q: %w", cartID, err)
	}

	if err := r.client.Set(ctx, keyPrefix+cartID, data, 0).Err(); err != nil {
		return fmt.Errorf("writing cart %q: %w", cartID, err)
	}

	r.publishChange(ctx, cartID)
	return nil
}

// Clear deletes the persisted cart entirely.
func (r *RedisCartRepository) Clear(ctx context.Context, cartID string) error {
	if err := r.client.Del(ctx, keyPrefix+cartID).Err(); err != nil {
		return fmt.Errorf("clearing cart %q: %w", cartID, err)
	}

	r.publishChange(ctx, cartID)
	return nil
}

func (r *RedisCartRepository) publishChange(ctx context.Context, cartID string) {
	// Notification is best-effort; a lost message only delays a re-render.
	_ = r.client.Publish(ctx, ChangeChannel, cartID).Err()
}

// SubscribeChanges opens a pub/sub subscription on the change channel.
func (r *RedisCartRepository) SubscribeChanges(ctx context.Context) *goredis.PubSub {
	return r.client.Subscribe(ctx, ChangeChannel)
}
