// Package window draws the game into an ebiten window.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/render"
)

const (
	CellSize   = 28
	MiniCell   = 14
	Margin     = 24
	PanelWidth = 200
	lineHeight = 16
)

// ScreenSize returns the window size needed for a board.
func ScreenSize(width, height int) (int, int) {
	return Margin*3 + width*CellSize + PanelWidth, Margin*2 + height*CellSize
}

// Renderer keeps the latest view from the engine's render system and draws
// it when ebiten asks for a frame. Update and Draw run on the same
// goroutine, so no locking is needed.
type Renderer struct {
	locale *render.Locale
	view   render.View
	ready  bool
}

// New creates a window renderer.
func New(locale *render.Locale) *Renderer {
	return &Renderer{locale: locale}
}

func (r *Renderer) Init() error  { return nil }
func (r *Renderer) Close() error { return nil }

func (r *Renderer) RenderFrame(v render.View) {
	r.view = v
	r.ready = true
}

// View returns the most recent view and whether one has been rendered.
func (r *Renderer) View() (render.View, bool) {
	return r.view, r.ready
}

// Draw paints the latest view onto screen.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(render.BackgroundEven)
	if !r.ready {
		return
	}
	v := r.view

	boardW := float32(v.Width * CellSize)
	boardH := float32(v.Height * CellSize)
	vector.StrokeRect(screen, Margin-2, Margin-2, boardW+4, boardH+4, 2, render.Frame, false)

	for y, row := range v.Cells {
		for x, kind := range row {
			px, py := cellOrigin(x, y)
			if kind == engine.Empty {
				vector.DrawFilledRect(screen, px, py, CellSize, CellSize, checker(x, y), false)
				continue
			}
			drawBlock(screen, px, py, CellSize, kind)
		}
	}

	if v.Active != nil {
		for _, p := range v.GhostCells() {
			if p.Y < 0 {
				continue
			}
			px, py := cellOrigin(p.X, p.Y)
			vector.DrawFilledRect(screen, px, py, CellSize, CellSize, render.Ghost(v.Active.Kind), false)
		}
		offset := fallOffset(v.Snapshot)
		for _, p := range v.ActiveAt {
			if p.Y < 0 {
				continue
			}
			px, py := cellOrigin(p.X, p.Y)
			drawBlock(screen, px, py+offset, CellSize, v.Active.Kind)
		}
	}

	r.drawPanel(screen, v)
	r.drawBanner(screen, v)
}

func cellOrigin(x, y int) (float32, float32) {
	return float32(Margin + x*CellSize), float32(Margin + y*CellSize)
}

func checker(x, y int) color.RGBA {
	if (x+y)%2 == 0 {
		return render.BackgroundEven
	}
	return render.BackgroundOdd
}

// fallOffset is how far, in pixels, the active piece is drawn below its
// cell so gravity looks smooth. Pieces resting on the stack are not offset.
func fallOffset(s engine.Snapshot) float32 {
	if s.Active == nil || s.GhostY <= s.Active.Y {
		return 0
	}
	return float32(s.FallRatio) * CellSize
}

func drawBlock(dst *ebiten.Image, x, y, size float32, kind engine.Kind) {
	s := render.ShadesOf(kind)
	bevel := size / 6
	vector.DrawFilledRect(dst, x, y, size, size, s.Edge, false)
	vector.DrawFilledRect(dst, x+1, y+1, size-2, size-2, s.Shadow, false)
	vector.DrawFilledRect(dst, x+1, y+1, size-2-bevel, size-2-bevel, s.Highlight, false)
	vector.DrawFilledRect(dst, x+1+bevel, y+1+bevel, size-2-2*bevel, size-2-2*bevel, s.Base, false)
}

func (r *Renderer) drawPanel(screen *ebiten.Image, v render.View) {
	x := Margin*2 + v.Width*CellSize
	y := Margin

	ebitenutil.DebugPrintAt(screen, r.locale.Get("HOLD"), x, y)
	y += lineHeight
	drawMini(screen, float32(x), float32(y), v.Held)
	y += 3 * MiniCell

	ebitenutil.DebugPrintAt(screen, r.locale.Get("NEXT"), x, y)
	y += lineHeight
	for _, kind := range v.Next {
		drawMini(screen, float32(x), float32(y), kind)
		y += 3 * MiniCell
	}

	y += lineHeight
	for _, s := range render.Stats(v, r.locale) {
		ebitenutil.DebugPrintAt(screen, s.Label, x, y)
		ebitenutil.DebugPrintAt(screen, s.Value, x+80, y)
		y += lineHeight
	}

	// Level progress bar.
	progress := float32(render.LevelProgress(v.Stats))
	vector.StrokeRect(screen, float32(x), float32(y+4), PanelWidth-Margin, 8, 1, render.Frame, false)
	vector.DrawFilledRect(screen, float32(x+1), float32(y+5), (PanelWidth-Margin-2)*progress, 6, render.ShadesOf(engine.I).Base, false)
	y += 2 * lineHeight

	for _, c := range v.Callouts {
		ebitenutil.DebugPrintAt(screen, c.Text, x, y)
		y += lineHeight
	}
}

func (r *Renderer) drawBanner(screen *ebiten.Image, v render.View) {
	title, hint := render.Banner(v, r.locale)
	if title == "" && hint == "" {
		return
	}
	boardW := float32(v.Width * CellSize)
	midY := float32(Margin + v.Height*CellSize/2)
	vector.DrawFilledRect(screen, Margin, midY-2*lineHeight, boardW, 4*lineHeight, color.RGBA{A: 0xc0}, false)
	if title != "" {
		ebitenutil.DebugPrintAt(screen, title, centerText(title, v.Width), int(midY)-lineHeight-4)
	}
	ebitenutil.DebugPrintAt(screen, hint, centerText(hint, v.Width), int(midY)+4)
}

// centerText returns the x at which the debug font centres s over the board.
// The debug font is 6 pixels wide per glyph.
func centerText(s string, boardWidth int) int {
	x := Margin + (boardWidth*CellSize-6*len([]rune(s)))/2
	return max(x, Margin)
}

// drawMini draws kind's spawn orientation at a small scale. Empty draws
// nothing.
func drawMini(dst *ebiten.Image, x, y float32, kind engine.Kind) {
	shape := engine.ShapeOf(kind, 0)
	top := -1
	for r, row := range shape {
		for _, filled := range row {
			if filled && top < 0 {
				top = r
			}
		}
	}
	if top < 0 {
		return
	}
	for r := top; r < len(shape) && r < top+2; r++ {
		for c, filled := range shape[r] {
			if filled {
				drawBlock(dst, x+float32(c*MiniCell), y+float32((r-top)*MiniCell), MiniCell, kind)
			}
		}
	}
}
