package booking

import "context"

// Locker serialises commits per provider. Lock blocks until the key is
// held or ctx is done.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

func lockKey(providerID string) string {
	return "booking:provider:" + providerID
}
