package repositories

import (
	"MediClinica/database"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

const (
	lockExpiry     = 10 * time.Second
	lockMaxRetries = 3
	lockRetryDelay = 2 * time.Second
)

// withLock runs fn while holding the distributed lock for key. It guards the
// check-then-insert sequences so two concurrent creates cannot both pass the
// uniqueness pre-check.
func withLock(ctx context.Context, locker *database.Locker, key string, fn func() error) error {
	lockValue := uuid.New().String()

	var locked bool
	var err error
	for i := 0; i < lockMaxRetries; i++ {
		locked, err = locker.Acquire(ctx, key, lockValue, lockExpiry)
		if err == nil && locked {
			break
		}
		if i < lockMaxRetries-1 {
			time.Sleep(lockRetryDelay)
		}
	}
	if !locked {
		if err != nil {
			return fmt.Errorf("failed to acquire lock after retries: %w", err)
		}
		return errors.New("failed to acquire lock after retries")
	}

	defer func() {
		if err := locker.Release(ctx, key, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	return fn()
}
