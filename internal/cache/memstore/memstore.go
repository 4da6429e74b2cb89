// Package memstore is the in-process covering cache tier.
package memstore

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type Store struct {
	lru *expirable.LRU[string, []byte]
}

// New builds an LRU store holding up to size entries for at most ttl.
func New(size int, ttl time.Duration) *Store {
	if size <= 0 {
		size = 4096
	}
	return &Store{lru: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := s.lru.Get(key)
	return v, ok, nil
}

// Set stores val. The ttl argument is accepted for interface parity; the
// store-wide ttl chosen at construction applies.
func (s *Store) Set(_ context.Context, key string, val []byte, _ time.Duration) error {
	s.lru.Add(key, val)
	return nil
}

func (s *Store) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		s.lru.Remove(k)
	}
	return nil
}

func (s *Store) Len() int { return s.lru.Len() }
