package repository

import (
	"salon-scheduler/internal/infra"
	"salon-scheduler/internal/pkg/config"
	"salon-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// IdempotencyStore keeps completed booking results in an expiring go-cache.
type IdempotencyStore struct {
	cache *cache.Cache
}

func NewIdempotencyStore(cfg config.Config) *IdempotencyStore {
	ttl := cfg.Idempotency.TTL
	return &IdempotencyStore{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (s *IdempotencyStore) Get(key uuid.UUID) (*shared.IdempotencyRecord, bool) {
	v, found := s.cache.Get(key.String())
	if !found {
		return nil, false
	}
	rec, ok := v.(shared.IdempotencyRecord)
	if !ok {
		return nil, false
	}
	return &rec, true
}

// Put refuses to overwrite a live record for the same key.
func (s *IdempotencyStore) Put(rec shared.IdempotencyRecord) error {
	if err := s.cache.Add(rec.Key.String(), rec, cache.DefaultExpiration); err != nil {
		return infra.WrapRepoErr(infra.KindDuplicateKey, "idempotency key already recorded", err)
	}
	return nil
}

func (s *IdempotencyStore) Len() int {
	return s.cache.ItemCount()
}
