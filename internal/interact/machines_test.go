package interact

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualSchedulerOrderAndCancel(t *testing.T) {
	s := NewManualScheduler()
	var got []string

	s.AfterFunc(30*time.Millisecond, func() { got = append(got, "c") })
	s.AfterFunc(10*time.Millisecond, func() {
		got = append(got, "a")
		s.AfterFunc(5*time.Millisecond, func() { got = append(got, "a2") })
	})
	cancel := s.AfterFunc(20*time.Millisecond, func() { got = append(got, "b") })
	cancel()

	s.Advance(20 * time.Millisecond)
	assert.Equal(t, []string{"a", "a2"}, got)
	assert.Equal(t, 1, s.Pending())

	s.Advance(10 * time.Millisecond)
	assert.Equal(t, []string{"a", "a2", "c"}, got)
	assert.Equal(t, 0, s.Pending())
}

func TestRealSchedulerCancel(t *testing.T) {
	fired := make(chan struct{}, 1)
	cancel := RealScheduler{}.AfterFunc(time.Hour, func() { fired <- struct{}{} })
	cancel()
	select {
	case <-fired:
		t.Fatal("canceled task fired")
	default:
	}
}

func TestIntersectionObserverCrossings(t *testing.T) {
	o := NewIntersectionObserver(SpyThresholds...)
	assert.Nil(t, o.Scroll(0), "nothing is reported before a layout arrives")

	entries := o.SetLayout(800, []Rect{
		{ID: "a", Top: 0, Height: 600},
		{ID: "b", Top: 600, Height: 1000},
		{ID: "c", Top: 1600, Height: 400},
	})
	require.Len(t, entries, 3, "every target is reported once on layout")
	assert.Equal(t, IntersectionEntry{ID: "a", Height: 600, Ratio: 1, Intersecting: true}, entries[0])
	assert.Equal(t, 200.0, entries[1].Height)
	assert.InDelta(t, 0.2, entries[1].Ratio, 1e-9)
	assert.False(t, entries[2].Intersecting)

	entries = o.Scroll(10)
	require.Len(t, entries, 1, "b stays in the same threshold band")
	assert.Equal(t, "a", entries[0].ID)
	assert.Equal(t, 590.0, entries[0].Height)

	entries = o.Scroll(900)
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestRevealThreshold(t *testing.T) {
	o := NewIntersectionObserver(RevealThresholds...)
	o.SetLayout(1000, []Rect{{ID: "a", Top: 950, Height: 1000}})
	assert.Empty(t, o.Scroll(40), "5% to 9% stays in the same band")
	entries := o.Scroll(100)
	require.Len(t, entries, 1)
	assert.InDelta(t, 0.15, entries[0].Ratio, 1e-9)
}

func TestLineEstimator(t *testing.T) {
	assert.False(t, DefaultMeasurer.Truncated("A short line.", 1280))
	assert.False(t, DefaultMeasurer.Truncated("", 0))
	assert.True(t, DefaultMeasurer.Truncated(strings.Repeat("word ", 400), 1280))

	text := strings.Repeat("x", 160)
	assert.False(t, DefaultMeasurer.Truncated(text, 1280))
	assert.True(t, DefaultMeasurer.Truncated(text, 200), "narrow screens wrap sooner")

	paras := strings.Repeat("Para.\n\n", 5)
	assert.True(t, DefaultMeasurer.Truncated(paras, 1280), "each paragraph takes a line")
}

func TestMailtoURL(t *testing.T) {
	assert.Equal(t,
		"mailto:me@example.com?subject=Inquiry%20from%20Portfolio&body=a%2Bb%3Dc%0Anext",
		MailtoURL("me@example.com", "a+b=c\nnext"))
}

func TestParseTheme(t *testing.T) {
	assert.Equal(t, ThemeDark, ParseTheme("dark"))
	assert.Equal(t, ThemeLight, ParseTheme("light"))
	assert.Equal(t, ThemeLight, ParseTheme("purple"))
}

type recordingSleep struct {
	mu      sync.Mutex
	limit   int
	waits   []time.Duration
	reached chan struct{}
}

func (r *recordingSleep) sleep(ctx context.Context, d time.Duration) error {
	r.mu.Lock()
	r.waits = append(r.waits, d)
	n := len(r.waits)
	r.mu.Unlock()
	if n < r.limit {
		return nil
	}
	if n == r.limit {
		close(r.reached)
	}
	<-ctx.Done()
	return ctx.Err()
}

func TestTitleRotatorFrames(t *testing.T) {
	rec := &recordingSleep{limit: 9, reached: make(chan struct{})}
	var (
		mu     sync.Mutex
		frames []string
	)
	r := NewTitleRotator([]string{"Go", "Py"}, DefaultRotatorTiming, rec.sleep, func(s string) {
		mu.Lock()
		frames = append(frames, s)
		mu.Unlock()
	})

	r.Start(context.Background())
	<-rec.reached
	r.Stop()

	assert.Equal(t, []string{"G", "Go", "G", "", "P", "Py"}, frames)
	ms := time.Millisecond
	assert.Equal(t, []time.Duration{80 * ms, 80 * ms, 2 * time.Second, 40 * ms, 40 * ms, 500 * ms, 80 * ms, 80 * ms, 2 * time.Second}, rec.waits)
}

func TestTitleRotatorStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := NewTitleRotator([]string{"x"}, RotatorTiming{Type: time.Hour, Hold: time.Hour, Delete: time.Hour, Pause: time.Hour}, nil, func(string) {})
	r.Start(ctx)
	cancel()
	r.Stop()
	r.Stop()
}

func TestTitleRotatorWithoutTitles(t *testing.T) {
	r := NewTitleRotator(nil, DefaultRotatorTiming, nil, func(string) { t.Fatal("unexpected frame") })
	r.Start(context.Background())
	r.Stop()
}
