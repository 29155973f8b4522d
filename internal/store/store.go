// Package store is a namespaced key-value blob store for paper attempts.
// The namespace is a dotted identifier tuple (owner id, paper id) and the
// key is the attempt's test id; values are opaque JSON.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned by Get when no record exists under the
// namespace/key pair. Callers must not treat it as an empty value.
var ErrNotFound = errors.New("store: not found")

// Record is one stored blob with its placement and timestamps.
type Record struct {
	Namespace string          `json:"namespace"`
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Namespace joins identifier parts into a dotted prefix.
func Namespace(parts ...string) string { return strings.Join(parts, ".") }

// Store is the persistence contract the quiz core consumes. Put is an
// upsert and bumps the record's update timestamp. Search matches any record
// whose namespace contains the given fragment, so callers can scope by
// owner, by paper, or by the full (owner, paper) pair.
type Store interface {
	Get(ctx context.Context, namespace, key string) (json.RawMessage, error)
	Put(ctx context.Context, namespace, key string, value json.RawMessage) error
	Search(ctx context.Context, namespace string) ([]Record, error)
}
