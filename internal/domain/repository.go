package domain

import "context"

// Fields carries the column values for a create or a partial update. A key
// that is missing from the map is left untouched by UpdateByID; a key mapped
// to nil is written as SQL NULL.
type Fields map[string]any

// Filter is a predicate on one column. List applies every supplied filter
// conjunctively. A filter must never be built from an absent parameter:
// "column = NULL" matches nothing, so callers omit the filter instead of
// passing a nil value.
type Filter struct {
	Column string
	Value  any
	// Contains tests array membership (Value is an element of the array
	// column) instead of equality.
	Contains bool
}

// Entity is implemented by every persisted record type; it exposes the
// generated primary key.
type Entity interface {
	EntityID() int64
}

// Repository is the per-entity persistence contract. Absence is a normal
// return value, not an error: GetByID and UpdateByID return (nil, nil) and
// DeleteByID returns (false, nil) when no row matches.
type Repository[T any] interface {
	GetByID(ctx context.Context, id int64) (*T, error)
	// List returns rows matching all filters, in storage order. offset
	// defaults to 0 and limit to 100 when zero.
	List(ctx context.Context, filters []Filter, offset, limit uint64) ([]*T, error)
	Create(ctx context.Context, fields Fields) (*T, error)
	UpdateByID(ctx context.Context, id int64, fields Fields) (*T, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

// Sessions scopes a group of repository calls to one database transaction.
// The transaction is committed when fn returns nil and rolled back otherwise;
// it is released on every exit path. Repository calls made with the context
// passed to fn share the transaction.
type Sessions interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
