package repositories

import "context"

// StateKey names one of the persisted blobs.
type StateKey string

const (
	UserKey           StateKey = "user"
	ClientsKey        StateKey = "clients"
	InvoicesKey       StateKey = "invoices"
	PaymentMethodsKey StateKey = "paymentMethods"
)

// StateStore is the durable key-value port behind the collections. Each key holds one
// JSON document that is replaced as a whole on every write. Several processes may share
// one store, so writes go through Update. There are no transactions across keys.
type StateStore interface {
	// Load decodes the blob stored under key into dest. It reports false, and leaves
	// dest untouched, when nothing has ever been stored under key.
	Load(ctx context.Context, key StateKey, dest any) (bool, error)

	// Save replaces the blob stored under key.
	Save(ctx context.Context, key StateKey, value any) error

	// Update loads key into dest, calls fn with whether it was found, and stores the
	// value fn returns. No other Update or Save on key interleaves. When fn returns an
	// error nothing is stored and that error is returned unchanged.
	Update(ctx context.Context, key StateKey, dest any, fn func(found bool) (any, error)) error

	// Delete removes the blob stored under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key StateKey) error
}
