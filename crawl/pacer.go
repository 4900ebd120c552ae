package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/jobkpi"
)

// Default courtesy pauses after each request to the job board.
const (
	DefaultListPause   = 2 * time.Second
	DefaultDetailPause = 1 * time.Second
)

var _ jobkpi.Pacer = FixedPacer(0)

// FixedPacer pauses for a fixed duration. A zero FixedPacer does not pause.
type FixedPacer time.Duration

// Pause sleeps for the pacer's duration or until ctx is done.
func (p FixedPacer) Pause(ctx context.Context) {
	if p <= 0 {
		return
	}
	t := time.NewTimer(time.Duration(p))
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
