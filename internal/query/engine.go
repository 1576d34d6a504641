package query

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors returned by the engine. Handlers map these to HTTP
// statuses with errors.Is.
var (
	// ErrNotFound means the requested order does not exist.
	ErrNotFound = errors.New("order not found")

	// ErrInvalidFilter means a filter value is malformed or outside the
	// supported set. Invalid filters are rejected, never silently ignored.
	ErrInvalidFilter = errors.New("invalid filter value")

	// ErrMissingReference means an order or line item points at a customer
	// or product that no longer exists. This is a data-integrity fault, not
	// a user error, and fails the whole request with no partial result.
	ErrMissingReference = errors.New("missing reference")
)

// Engine answers the back-office read queries against the shop database.
// It holds no state beyond the connection and is safe for concurrent use.
type Engine struct {
	db *gorm.DB
}

// NewEngine wraps an open database handle.
func NewEngine(db *gorm.DB) *Engine {
	return &Engine{db: db}
}
