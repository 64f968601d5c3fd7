package debounce

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, cmd tea.Cmd) Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(Msg)
	require.True(t, ok, "command should deliver a debounce.Msg")
	return msg
}

func TestOnlyLatestScheduleIsAccepted(t *testing.T) {
	d := NewWithDelay(time.Millisecond)

	var cmds []tea.Cmd
	for i := 0; i < 5; i++ {
		cmds = append(cmds, d.Schedule())
	}

	accepted := 0
	for _, cmd := range cmds {
		if d.Accept(run(t, cmd)) {
			accepted++
		}
	}
	assert.Equal(t, 1, accepted, "a burst should run exactly one pass")
}

func TestAcceptIsOneShot(t *testing.T) {
	d := NewWithDelay(time.Millisecond)
	msg := run(t, d.Schedule())

	assert.True(t, d.Accept(msg))
	assert.False(t, d.Accept(msg))
}

func TestCancelSupersedesPending(t *testing.T) {
	d := NewWithDelay(time.Millisecond)
	cmd := d.Schedule()
	d.Cancel()

	assert.False(t, d.Accept(run(t, cmd)))
}

func TestZeroMsgIsRejected(t *testing.T) {
	assert.False(t, New().Accept(Msg{}))
}

func TestScheduleWaitsForDelay(t *testing.T) {
	d := NewWithDelay(20 * time.Millisecond)
	start := time.Now()
	run(t, d.Schedule())

	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, 225*time.Millisecond, New().Delay())
}
