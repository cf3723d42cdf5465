package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"newsdash/internal/model"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func articlesKey(query string) string {
	return fmt.Sprintf("newsdash:articles:%s", query)
}

// payoutsKey is the fixed key the finalized payout list persists under.
const payoutsKey = "newsdash:payouts"

// SaveArticles caches a fetched result set as a single JSON value, replacing
// any previous set for the query.
func (s *RedisStore) SaveArticles(ctx context.Context, query string, articles []model.Article, ttl time.Duration) error {
	b, err := json.Marshal(articles)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, articlesKey(query), b, ttl).Err()
}

// LoadArticles returns the cached result set for a query, or nil when
// nothing has been fetched yet.
func (s *RedisStore) LoadArticles(ctx context.Context, query string) ([]model.Article, error) {
	b, err := s.rdb.Get(ctx, articlesKey(query)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var articles []model.Article
	if err := json.Unmarshal(b, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// SavePayouts writes the full finalized entry list atomically as one value.
// No TTL: payouts survive across sessions until overwritten.
func (s *RedisStore) SavePayouts(ctx context.Context, entries []model.PayoutEntry) error {
	b, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, payoutsKey, b, 0).Err()
}

// LoadPayouts reads back the persisted entry list in the shape it was saved.
func (s *RedisStore) LoadPayouts(ctx context.Context) ([]model.PayoutEntry, error) {
	b, err := s.rdb.Get(ctx, payoutsKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var entries []model.PayoutEntry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
