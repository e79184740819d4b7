package tui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/render/tui"
)

func startedView(t *testing.T) render.View {
	t.Helper()
	e, err := engine.New(engine.Options{Width: 10, Height: 20, Rand: engine.SeededRand(11)})
	require.NoError(t, err)
	e.Start()
	return render.View{Snapshot: e.Snapshot()}
}

func plain(t *testing.T) {
	t.Helper()
	prev := color.Enable
	color.Disable()
	t.Cleanup(func() { color.Enable = prev })
}

func TestFrameDrawsBoardPieceGhostAndPanel(t *testing.T) {
	plain(t)
	v := startedView(t)
	r := tui.New(&bytes.Buffer{}, render.MustLoadLocale("en"))
	require.NoError(t, r.Init())

	frame := r.Frame(v)
	lines := strings.Split(strings.TrimSuffix(frame, "\x1b[K\r\n"), "\x1b[K\r\n")
	require.Len(t, lines, v.Height+2)
	assert.True(t, strings.HasPrefix(lines[0], "+"+strings.Repeat("--", v.Width)+"+"))

	// Active piece plus three previews.
	assert.Equal(t, 4+engine.PreviewSize*4, strings.Count(frame, tui.GlyphBlock))
	assert.Equal(t, 4, strings.Count(frame, tui.GlyphGhost))
	assert.Contains(t, frame, "HOLD")
	assert.Contains(t, frame, "NEXT")
	assert.Contains(t, frame, "SCORE   0")
	assert.NotContains(t, frame, "PAUSED")
}

func TestFrameShowsBannerAndCallouts(t *testing.T) {
	plain(t)
	v := startedView(t)
	v.State = engine.StateGameOver
	v.Callouts = []render.Callout{{Text: "DOUBLE"}}

	frame := tui.New(&bytes.Buffer{}, render.MustLoadLocale("es")).Frame(v)

	assert.Contains(t, frame, "FIN DE LA PARTIDA")
	assert.Contains(t, frame, "Pulsa Espacio para reiniciar")
	assert.Contains(t, frame, "DOUBLE")
}

func TestRenderFrameChecksTerminalSize(t *testing.T) {
	plain(t)
	v := startedView(t)
	var buf bytes.Buffer
	r := tui.New(&buf, render.MustLoadLocale("en")).WithSize(func() (int, int) { return 30, 10 })

	r.RenderFrame(v)

	cols, rows := tui.Required(10, 20)
	assert.Equal(t, 46, cols)
	assert.Equal(t, 22, rows)
	assert.Contains(t, buf.String(), "Terminal too small: need 46x22")
	assert.True(t, strings.HasPrefix(buf.String(), "\x1b[2J\x1b[H"), "first frame clears the screen")

	buf.Reset()
	r.RenderFrame(v)
	assert.True(t, strings.HasPrefix(buf.String(), "\x1b[H"))

	buf.Reset()
	require.NoError(t, r.Close())
	assert.Contains(t, buf.String(), "\x1b[?25h")
}
