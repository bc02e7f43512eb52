package kvstore

import "context"

// Store is the boundary to a key-value collaborator. The storefront keeps
// the user profile and the serialized order collection behind this port.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Well-known keys.
const (
	KeyUserDetails = "userDetails"
	KeyOrders      = "orders"
)
