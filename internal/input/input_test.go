package input

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyMovementKeys(t *testing.T) {
	s := newStream()
	now := time.Now()

	in := s.apply([]byte("wd"), now)
	assert.True(t, in.Up)
	assert.True(t, in.Right)
	assert.False(t, in.Down)
	assert.False(t, in.Left)
	assert.False(t, in.Fire)
}

func TestApplyArrowKeys(t *testing.T) {
	s := newStream()
	in := s.apply([]byte("\x1b[A\x1b[D"), time.Now())

	assert.True(t, in.Up)
	assert.True(t, in.Left)
	assert.False(t, in.Menu, "arrow sequences are not a bare escape")
}

func TestMovementHeldUntilTimeout(t *testing.T) {
	s := newStream()
	now := time.Now()

	s.apply([]byte("s"), now)

	in := s.apply(nil, now.Add(keyHoldDuration/2))
	assert.True(t, in.Down, "still held between auto-repeats")

	in = s.apply(nil, now.Add(keyHoldDuration))
	assert.False(t, in.Down, "released once no repeat arrives")
}

func TestOneShotKeysLastOneFrame(t *testing.T) {
	s := newStream()
	now := time.Now()

	in := s.apply([]byte(" p\rrmq"), now)
	assert.True(t, in.Fire)
	assert.True(t, in.Pause)
	assert.True(t, in.Start)
	assert.True(t, in.Restart)
	assert.True(t, in.Menu)
	assert.True(t, in.Quit)

	in = s.apply(nil, now.Add(time.Millisecond))
	assert.False(t, in.Fire)
	assert.False(t, in.Pause)
	assert.False(t, in.Quit)
}

func TestFocusReports(t *testing.T) {
	s := newStream()

	in := s.apply([]byte("\x1b[O"), time.Now())
	assert.True(t, in.FocusLost)
	assert.False(t, in.FocusGained)

	in = s.apply([]byte("\x1b[I"), time.Now())
	assert.True(t, in.FocusGained)
}

func TestBareEscapeIsMenu(t *testing.T) {
	s := newStream()
	now := time.Now()

	in := s.apply([]byte{'\x1b'}, now)
	assert.False(t, in.Menu, "escape at the end of a frame waits for the next one")
	assert.True(t, in.Any())

	in = s.apply(nil, now.Add(16*time.Millisecond))
	assert.True(t, in.Menu)
	assert.False(t, in.Up)

	in = s.apply([]byte("\x1bw"), now.Add(32*time.Millisecond))
	assert.True(t, in.Menu, "escape followed by another key is bare")
	assert.True(t, in.Up)
}

func TestArrowSplitAcrossFrames(t *testing.T) {
	s := newStream()
	now := time.Now()

	in := s.apply([]byte{'\x1b'}, now)
	assert.False(t, in.Menu)

	in = s.apply([]byte("[A"), now.Add(16*time.Millisecond))
	assert.True(t, in.Up)
	assert.False(t, in.Left)
	assert.False(t, in.Menu)
}

func TestArrowSplitAfterBracket(t *testing.T) {
	s := newStream()
	now := time.Now()

	in := s.apply([]byte(" \x1b["), now)
	assert.True(t, in.Fire)
	assert.False(t, in.Menu)

	in = s.apply([]byte("C"), now.Add(16*time.Millisecond))
	assert.True(t, in.Right)
	assert.False(t, in.Menu)
	assert.False(t, in.Fire)
}

func TestResetDropsHeldEscape(t *testing.T) {
	s := newStream()
	now := time.Now()
	s.apply([]byte{'\x1b'}, now)

	ResetKeyInput(s)

	in := s.apply(nil, now.Add(16*time.Millisecond))
	assert.False(t, in.Menu)
}

func TestCtrlCQuits(t *testing.T) {
	s := newStream()
	in := s.apply([]byte{'\x03'}, time.Now())
	assert.True(t, in.Quit)
	assert.True(t, in.Any())
}

func TestResetKeyInput(t *testing.T) {
	s := newStream()
	now := time.Now()
	s.apply([]byte("a"), now)
	s.ch <- ' '

	ResetKeyInput(s)

	in := s.apply(nil, now)
	assert.False(t, in.Left)
	assert.Empty(t, s.ch)
}

func TestStreamClosesOnEOF(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("w")))

	require.Eventually(t, func() bool {
		ReadInput(s)
		return s.Closed()
	}, time.Second, 5*time.Millisecond)
}

// endlessReader never runs out of keys.
type endlessReader struct{}

func (endlessReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 'w'
	}
	return len(p), nil
}

func TestCloseStopsReader(t *testing.T) {
	s := StartStream(bufio.NewReader(endlessReader{}))

	require.Eventually(t, func() bool {
		return len(s.ch) == cap(s.ch)
	}, time.Second, 5*time.Millisecond, "buffer fills while nobody reads")

	s.Close()
	s.Close()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("reader goroutine still blocked after Close")
	}
}
