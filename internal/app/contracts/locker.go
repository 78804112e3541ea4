package contracts

import (
	"context"
	"time"
)

// LockerService guards short critical sections across instances, e.g. the
// slot check and insert of one (treatment, date) pair.
type LockerService interface {
	// TryLock returns acquired=false without error when another owner holds key.
	// The returned lockValue identifies this owner and must be passed to Unlock.
	TryLock(ctx context.Context, key string, expiration time.Duration) (acquired bool, lockValue string, err error)
	// Unlock releases key only while it still holds lockValue. An expired lock
	// is not an error.
	Unlock(ctx context.Context, key, lockValue string) error
}
