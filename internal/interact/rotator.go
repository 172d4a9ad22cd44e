package interact

import (
	"context"
	"sync"
	"time"
)

// RotatorTiming paces the title animation.
type RotatorTiming struct {
	Type   time.Duration // per character typed
	Hold   time.Duration // full title on screen
	Delete time.Duration // per character removed
	Pause  time.Duration // empty line between titles
}

// DefaultRotatorTiming is the pace used on the live page.
var DefaultRotatorTiming = RotatorTiming{
	Type:   80 * time.Millisecond,
	Hold:   2 * time.Second,
	Delete: 40 * time.Millisecond,
	Pause:  500 * time.Millisecond,
}

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// TitleRotator types and erases each title in turn, forever, until
// stopped.
type TitleRotator struct {
	titles []string
	timing RotatorTiming
	sleep  SleepFunc
	write  func(string)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewTitleRotator writes each animation frame through write. A nil sleep
// uses the wall clock.
func NewTitleRotator(titles []string, timing RotatorTiming, sleep SleepFunc, write func(string)) *TitleRotator {
	if sleep == nil {
		sleep = sleepCtx
	}
	return &TitleRotator{titles: titles, timing: timing, sleep: sleep, write: write}
}

// Start launches the animation. It is a no-op without titles or when
// already running.
func (r *TitleRotator) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.titles) == 0 || r.cancel != nil {
		return
	}
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})
	go r.run(ctx, r.done)
}

// Stop cancels the animation and waits for it to exit.
func (r *TitleRotator) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (r *TitleRotator) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	for i := 0; ; i = (i + 1) % len(r.titles) {
		runes := []rune(r.titles[i])
		for n := 1; n <= len(runes); n++ {
			r.write(string(runes[:n]))
			if r.sleep(ctx, r.timing.Type) != nil {
				return
			}
		}
		if r.sleep(ctx, r.timing.Hold) != nil {
			return
		}
		for n := len(runes) - 1; n >= 0; n-- {
			r.write(string(runes[:n]))
			if r.sleep(ctx, r.timing.Delete) != nil {
				return
			}
		}
		if r.sleep(ctx, r.timing.Pause) != nil {
			return
		}
	}
}
