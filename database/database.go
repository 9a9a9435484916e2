package database

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("record not found")

// Record is a document addressed by a key, the course code for every record
// this service stores.
type Record interface {
	RecordKey() string
}

// DocumentStore persists records of one collection. Put never overwrites:
// storing a key twice keeps both records and Get returns the newest one.
type DocumentStore[T Record] interface {
	Put(ctx context.Context, record T) error
	Get(ctx context.Context, key string) (T, error)
	List(ctx context.Context) ([]T, error)
}
