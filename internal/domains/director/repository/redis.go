package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mkigikm/director-api/internal/domains/director"
)

const (
	directorKeyPrefix = "directors:"
	directorsIndexKey = "directors:index"
)

// RedisRepository persists directors as JSON blobs keyed by livestream id,
// with a set of all keys as the enumeration index.
type RedisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

func directorKey(livestreamID string) string {
	return directorKeyPrefix + livestreamID
}

func (r *RedisRepository) FindByID(ctx context.Context, livestreamID string) (*director.Director, error) {
	raw, err := r.client.Get(ctx, directorKey(livestreamID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, director.ErrDirectorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", directorKey(livestreamID), err)
	}

	var d director.Director
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return nil, fmt.Errorf("decode director %s: %w", livestreamID, err)
	}
	return &d, nil
}

// Save writes the record and its index membership in one transaction so a
// persisted director is always reachable through both.
func (r *RedisRepository) Save(ctx context.Context, d *director.Director) error {
	d.EnsureDefaults()

	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode director %s: %w", d.LivestreamID, err)
	}

	key := directorKey(d.LivestreamID)
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, raw, 0)
	pipe.SAdd(ctx, directorsIndexKey, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis save %s: %w", key, err)
	}
	return nil
}

// All enumerates via SORT BY nosort GET *, fetching every record in one
// round trip. Order follows the index set and is not significant.
func (r *RedisRepository) All(ctx context.Context) ([]*director.Director, error) {
	raws, err := r.client.Sort(ctx, directorsIndexKey, &redis.Sort{
		By:  "nosort",
		Get: []string{"*"},
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("redis sort %s: %w", directorsIndexKey, err)
	}

	directors := make([]*director.Director, 0, len(raws))
	for _, raw := range raws {
		if raw == "" {
			// index member whose record key has vanished
			continue
		}
		var d director.Director
		if err := json.Unmarshal([]byte(raw), &d); err != nil {
			return nil, fmt.Errorf("decode director listing: %w", err)
		}
		directors = append(directors, &d)
	}
	return directors, nil
}
