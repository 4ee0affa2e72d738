package repositories

import (
	"context"
	"encoding/json"
	"sync"

	"swift-courier/models"

	"github.com/redis/go-redis/v9"
)

// The whole cart lives in one slot under this key, encoded as a JSON array
// of {id, qty} objects.
const cartKey = "cart"

// CartRepository reads and writes the persisted cart slot. Get never fails:
// absent or malformed data reads as an empty cart.
type CartRepository interface {
	Get() []models.CartLine
	Set(lines []models.CartLine) error
}

// NewCartRepository returns the redis-backed store when redis is connected,
// otherwise an in-memory store scoped to the process.
func NewCartRepository() CartRepository {
	if models.RedisClient != nil {
		return NewRedisCartRepository(models.RedisClient)
	}
	return NewMemoryCartRepository()
}

type RedisCartRepository struct {
	client *redis.Client
}

func NewRedisCartRepository(client *redis.Client) *RedisCartRepository {
	return &RedisCartRepository{client: client}
}

func (r *RedisCartRepository) Get() []models.CartLine {
	raw, err := r.client.Get(context.Background(), cartKey).Bytes()
	if err != nil {
		return []models.CartLine{}
	}
	return decodeCart(raw)
}

func (r *RedisCartRepository) Set(lines []models.CartLine) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return r.client.Set(context.Background(), cartKey, raw, 0).Err()
}

// MemoryCartRepository keeps the slot as a raw byte value so it behaves
// exactly like the redis slot, including the malformed-data path.
type MemoryCartRepository struct {
	mu  sync.Mutex
	raw []byte
}

func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{}
}

func (r *MemoryCartRepository) Get() []models.CartLine {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.raw == nil {
		return []models.CartLine{}
	}
	return decodeCart(r.raw)
}

func (r *MemoryCartRepository) Set(lines []models.CartLine) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.raw = raw
	r.mu.Unlock()
	return nil
}

// Seed stores a raw value directly, bypassing encoding. Tests use it to
// simulate corrupted persisted data.
func (r *MemoryCartRepository) Seed(raw []byte) {
	r.mu.Lock()
	r.raw = raw
	r.mu.Unlock()
}

func decodeCart(raw []byte) []models.CartLine {
	var lines []models.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		return []models.CartLine{}
	}
	if lines == nil {
		lines = []models.CartLine{}
	}
	return lines
}
