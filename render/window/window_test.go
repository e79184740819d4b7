package window

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/render"
)

func TestScreenSize(t *testing.T) {
	w, h := ScreenSize(10, 20)
	assert.Equal(t, 3*Margin+10*CellSize+PanelWidth, w)
	assert.Equal(t, 2*Margin+20*CellSize, h)
}

func TestFallOffset(t *testing.T) {
	s := engine.Snapshot{Active: &engine.Piece{Kind: engine.T, Y: 3}, GhostY: 10, FallRatio: 0.5}
	assert.Equal(t, float32(CellSize)/2, fallOffset(s))

	s.GhostY = 3
	assert.Zero(t, fallOffset(s), "resting pieces are drawn in their cell")

	assert.Zero(t, fallOffset(engine.Snapshot{FallRatio: 0.9}))
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, Margin+(10*CellSize-6*6)/2, centerText("PAUSED", 10))
	assert.Equal(t, Margin, centerText("a very long line that cannot fit on a narrow board", 4))
}

func TestRenderFrameKeepsLatestView(t *testing.T) {
	r := New(render.MustLoadLocale("en"))
	_, ok := r.View()
	assert.False(t, ok)

	r.RenderFrame(render.View{Snapshot: engine.Snapshot{Width: 10}})
	r.RenderFrame(render.View{Snapshot: engine.Snapshot{Width: 12}})

	v, ok := r.View()
	assert.True(t, ok)
	assert.Equal(t, 12, v.Width)
}
