package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvierd/countdown-cli/internal/domain"
	"github.com/xvierd/countdown-cli/internal/ports"
)

type frame struct {
	lines  []string
	paused bool
}

type fakeScreen struct {
	frames []frame
	err    error
}

func (s *fakeScreen) Size() (int, int, error) { return 80, 24, nil }

func (s *fakeScreen) Draw(lines []string, paused bool) error {
	if s.err != nil {
		return s.err
	}
	s.frames = append(s.frames, frame{lines: lines, paused: paused})
	return nil
}

func (s *fakeScreen) texts() []string {
	var out []string
	for _, f := range s.frames {
		out = append(out, f.lines[0])
	}
	return out
}

// fakeKeys returns scripted key events for each poll, one entry per frame.
type fakeKeys struct {
	polls [][]ports.KeyEvent
	n     int
}

func (k *fakeKeys) Poll() []ports.KeyEvent {
	defer func() { k.n++ }()
	if k.n < len(k.polls) {
		return k.polls[k.n]
	}
	return nil
}

type fakeBanner struct {
	err error
}

func (b *fakeBanner) Render(text string) ([]string, error) {
	if b.err != nil {
		return nil, b.err
	}
	return []string{"<" + text + ">", "----"}, nil
}

var epoch = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

// newTestRunner builds a runner on a fake clock that only moves when the
// runner sleeps.
func newTestRunner(total time.Duration, screen *fakeScreen, keys *fakeKeys) *Runner {
	clock := epoch
	r := NewRunner(domain.NewCountdown(total, clock), screen, keys)
	r.SetFrameInterval(250 * time.Millisecond)
	r.now = func() time.Time { return clock }
	r.sleep = func(d time.Duration) { clock = clock.Add(d) }
	return r
}

func TestRunner_RunsToCompletion(t *testing.T) {
	screen := &fakeScreen{}
	r := newTestRunner(time.Second, screen, &fakeKeys{})

	finished, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, finished)

	// Elapsed equal to the total still draws a final 0s frame.
	assert.Equal(t, []string{"1s", "0s", "0s", "0s", "0s"}, screen.texts())
	for _, f := range screen.frames {
		assert.False(t, f.paused)
	}
}

func TestRunner_FirstFrameShowsPaddedValue(t *testing.T) {
	for _, input := range []string{"1m30s", "1h", "2d3h", "0s"} {
		t.Run(input, func(t *testing.T) {
			d, err := domain.ParseDuration(input)
			require.NoError(t, err)

			screen := &fakeScreen{}
			keys := &fakeKeys{polls: [][]ports.KeyEvent{{ports.KeyQuit}}}
			r := newTestRunner(d+time.Second, screen, keys)

			_, err = r.Run(context.Background())
			require.NoError(t, err)
			require.Len(t, screen.frames, 1)

			shown, err := domain.ParseDuration(screen.frames[0].lines[0])
			require.NoError(t, err)
			assert.Equal(t, d, shown-time.Second)
		})
	}
}

func TestRunner_QuitCancels(t *testing.T) {
	screen := &fakeScreen{}
	keys := &fakeKeys{polls: [][]ports.KeyEvent{nil, {ports.KeyOther, ports.KeyQuit, ports.KeyTogglePause}}}
	r := newTestRunner(time.Hour, screen, keys)

	finished, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, finished)
	assert.Len(t, screen.frames, 2)
	assert.False(t, r.countdown.Paused)
}

func TestRunner_PauseFreezesCountdown(t *testing.T) {
	screen := &fakeScreen{}
	pause := []ports.KeyEvent{ports.KeyTogglePause}
	keys := &fakeKeys{polls: [][]ports.KeyEvent{
		nil,   // frame 0: 10s
		pause, // frame 1: 9s, then paused
		nil,   // frame 2: paused
		nil,   // frame 3: paused
		pause, // frame 4: paused, then resumed
		nil,   // frame 5: running again
		{ports.KeyQuit},
	}}
	r := newTestRunner(10*time.Second, screen, keys)
	r.SetFrameInterval(time.Second)

	finished, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, finished)

	assert.Equal(t, []string{"10s", "9s", "9s", "9s", "9s", "8s", "7s"}, screen.texts())
	assert.Equal(t, []bool{false, false, true, true, true, false, false}, pausedFlags(screen))
	assert.Equal(t, 3*time.Second, r.countdown.Elapsed)
}

func pausedFlags(s *fakeScreen) []bool {
	var out []bool
	for _, f := range s.frames {
		out = append(out, f.paused)
	}
	return out
}

func TestRunner_DrainsAllQueuedKeys(t *testing.T) {
	screen := &fakeScreen{}
	keys := &fakeKeys{polls: [][]ports.KeyEvent{
		{ports.KeyTogglePause, ports.KeyTogglePause, ports.KeyTogglePause},
		{ports.KeyQuit},
	}}
	r := newTestRunner(time.Minute, screen, keys)

	_, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, r.countdown.Paused)
	assert.Equal(t, []bool{false, true}, pausedFlags(screen))
}

func TestRunner_Banner(t *testing.T) {
	screen := &fakeScreen{}
	r := newTestRunner(5*time.Second, screen, &fakeKeys{polls: [][]ports.KeyEvent{{ports.KeyQuit}}})
	r.SetBanner(&fakeBanner{})

	_, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, screen.frames, 1)
	assert.Equal(t, []string{"<5s>", "----"}, screen.frames[0].lines)
}

func TestRunner_BannerFailureFallsBack(t *testing.T) {
	screen := &fakeScreen{}
	r := newTestRunner(5*time.Second, screen, &fakeKeys{polls: [][]ports.KeyEvent{nil, {ports.KeyQuit}}})
	r.SetBanner(&fakeBanner{err: errors.New("no font")})

	_, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, screen.frames, 2)
	assert.Equal(t, []string{"5s"}, screen.frames[0].lines)
	assert.True(t, r.bannerFailed)
}

func TestRunner_DrawError(t *testing.T) {
	screen := &fakeScreen{err: errors.New("broken pipe")}
	r := newTestRunner(time.Minute, screen, &fakeKeys{})

	finished, err := r.Run(context.Background())
	require.Error(t, err)
	assert.False(t, finished)
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestRunner_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	screen := &fakeScreen{}
	r := newTestRunner(time.Minute, screen, &fakeKeys{})

	finished, err := r.Run(ctx)
	require.NoError(t, err)
	assert.False(t, finished)
	assert.Len(t, screen.frames, 1)
}

func TestRunner_ZeroCountdown(t *testing.T) {
	screen := &fakeScreen{}
	r := newTestRunner(0, screen, &fakeKeys{})

	finished, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, finished)
	assert.Equal(t, []string{"0s"}, screen.texts())
}
