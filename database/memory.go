package database

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemoryStore keeps records in process as BSON, so what comes back out has
// been through the same encoding as a MongoDB round trip.
type MemoryStore[T Record] struct {
	mu    sync.RWMutex
	order []string
	docs  map[string][][]byte
}

func NewMemoryStore[T Record]() *MemoryStore[T] {
	return &MemoryStore[T]{docs: make(map[string][][]byte)}
}

func (s *MemoryStore[T]) Put(ctx context.Context, record T) error {
	raw, err := bson.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	key := record.RecordKey()

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[key]; !ok {
		s.order = append(s.order, key)
	}
	s.docs[key] = append(s.docs[key], raw)
	return nil
}

func (s *MemoryStore[T]) Get(ctx context.Context, key string) (T, error) {
	var record T
	s.mu.RLock()
	versions := s.docs[key]
	s.mu.RUnlock()
	if len(versions) == 0 {
		return record, ErrNotFound
	}
	if err := bson.Unmarshal(versions[len(versions)-1], &record); err != nil {
		return record, fmt.Errorf("failed to decode record: %w", err)
	}
	return record, nil
}

// List returns every stored record, oldest key first.
func (s *MemoryStore[T]) List(ctx context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]T, 0, len(s.order))
	for _, key := range s.order {
		for _, raw := range s.docs[key] {
			var record T
			if err := bson.Unmarshal(raw, &record); err != nil {
				return nil, fmt.Errorf("failed to decode record: %w", err)
			}
			records = append(records, record)
		}
	}
	return records, nil
}
