package console

import (
	"context"
	"time"
)

// Pacer holds the cosmetic delays used between printed lines.
type Pacer struct {
	Short  time.Duration
	Medium time.Duration
	Long   time.Duration
}

// NoDelay is a Pacer that never sleeps.
var NoDelay = Pacer{}

// Pause blocks for d or until ctx is done.
func (p Pacer) Pause(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
