package terminal

import (
	"strings"
	"testing"
	"time"

	cfg "github.com/automoto/squadfall/config"
	"github.com/automoto/squadfall/session"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newHost(t *testing.T) (*Host, *clock) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 30)

	s := session.New(session.WithSeed(5), session.WithViewport(960, 600))
	h := NewHost(screen, s, 60)
	c := &clock{t: time.Unix(1000, 0)}
	h.now = c.now
	return h, c
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// startRun walks the menus with the keyboard until the first wave runs.
func startRun(t *testing.T, h *Host) {
	t.Helper()
	h.handle(key(tcell.KeyEnter))
	h.step()
	h.handle(key(tcell.KeyEnter))
	h.step()
	require.Equal(t, cfg.StatusShop, h.snap.Status)
	h.handle(char(' '))
	h.step()
	h.step()
	require.Equal(t, cfg.StatusPlaying, h.snap.Status)
}

func TestKeysDriveTheMenus(t *testing.T) {
	h, _ := newHost(t)
	startRun(t, h)
	assert.Equal(t, cfg.AllAllyTypes[0], h.snap.Player.Champion)

	h.handle(key(tcell.KeyEscape))
	h.step()
	assert.Equal(t, cfg.StatusPaused, h.snap.Status)

	h.handle(char('m'))
	h.step()
	assert.Equal(t, cfg.StatusIdle, h.snap.Status)
}

func TestHeldKeysExpire(t *testing.T) {
	h, c := newHost(t)
	startRun(t, h)
	x := h.snap.Player.Box.X

	h.handle(char('D'))
	h.step()
	moved := h.snap.Player.Box.X
	assert.Greater(t, moved, x)

	c.t = c.t.Add(cfg.Input.TerminalHold + time.Millisecond)
	h.step()
	assert.Equal(t, moved, h.snap.Player.Box.X)
	assert.Empty(t, h.held)
}

func TestCtrlCQuits(t *testing.T) {
	h, _ := newHost(t)
	assert.True(t, h.handle(char('x')))
	assert.False(t, h.handle(key(tcell.KeyCtrlC)))
}

func screenText(screen tcell.Screen) string {
	cols, rows := screen.Size()
	var b strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func TestRenderShowsTheRun(t *testing.T) {
	h, _ := newHost(t)
	startRun(t, h)

	Render(h.screen, &h.snap, 0)
	out := screenText(h.screen)
	assert.Equal(t, 1, strings.Count(out, "@"))
	assert.Contains(t, out, "Wave 1")
	assert.Contains(t, out, "HP 30/30")
}

func TestRenderShop(t *testing.T) {
	h, _ := newHost(t)
	h.handle(key(tcell.KeyEnter))
	h.step()
	h.handle(key(tcell.KeyEnter))
	h.step()

	Render(h.screen, &h.snap, 0)
	out := screenText(h.screen)
	assert.Contains(t, out, "Shop  $0")
	assert.Contains(t, out, h.snap.Shop[0].Name)
}
