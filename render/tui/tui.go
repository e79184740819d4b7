// Package tui draws the game into an ANSI terminal.
package tui

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"
	"golang.org/x/term"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/render"
)

// Glyphs, two columns per board cell.
const (
	GlyphBlock = "[]"
	GlyphGhost = "::"
	GlyphEmpty = " ."
	GlyphBlank = "  "
)

const (
	panelGap   = 2
	panelWidth = 22
	miniCols   = 4
)

// Renderer is the terminal renderer. It redraws the whole frame in place
// on every call.
type Renderer struct {
	out    io.Writer
	locale *render.Locale
	// size reports the terminal's columns and rows.
	size func() (int, int)

	colorFrame  color.Style
	colorLabel  color.Style
	colorValue  color.Style
	colorBanner color.Style
	colorGood   color.Style
	colorSubtle color.Style

	lastCols, lastRows int
}

// New creates a terminal renderer writing to out.
func New(out io.Writer, locale *render.Locale) *Renderer {
	return &Renderer{
		out:    out,
		locale: locale,
		size:   stdoutSize,
	}
}

// WithSize overrides terminal size detection.
func (t *Renderer) WithSize(size func() (cols, rows int)) *Renderer {
	t.size = size
	return t
}

func stdoutSize() (int, int) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80, 24
	}
	return cols, rows
}

// Init sets up styles and hides the cursor.
func (t *Renderer) Init() error {
	t.colorFrame = color.Style{color.FgGray}
	t.colorLabel = color.Style{color.FgCyan, color.OpBold}
	t.colorValue = color.Style{color.FgWhite}
	t.colorBanner = color.Style{color.FgYellow, color.OpBold}
	t.colorGood = color.Style{color.FgGreen, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	_, err := io.WriteString(t.out, "\x1b[?25l\x1b[2J")
	return err
}

// Close restores the cursor.
func (t *Renderer) Close() error {
	_, err := io.WriteString(t.out, "\x1b[0m\x1b[?25h\r\n")
	return err
}

// RenderFrame draws v from the top-left corner of the screen.
func (t *Renderer) RenderFrame(v render.View) {
	cols, rows := t.size()
	var b strings.Builder
	if cols != t.lastCols || rows != t.lastRows {
		b.WriteString("\x1b[2J")
		t.lastCols, t.lastRows = cols, rows
	}
	b.WriteString("\x1b[H")

	needCols, needRows := Required(v.Width, v.Height)
	if cols < needCols || rows < needRows {
		b.WriteString(t.locale.Get("TERMINAL_TOO_SMALL", needCols, needRows))
		b.WriteString("\x1b[K")
	} else {
		b.WriteString(t.Frame(v))
	}
	io.WriteString(t.out, b.String())
}

// Required returns the terminal size needed for a board.
func Required(width, height int) (cols, rows int) {
	return 2 + 2*width + panelGap + panelWidth, height + 2
}

// Frame renders v to a string, one "\r\n" terminated line per screen row.
func (t *Renderer) Frame(v render.View) string {
	active := mapset.New[engine.Point]()
	for _, p := range v.ActiveAt {
		active.Put(p)
	}
	ghost := mapset.New[engine.Point]()
	for _, p := range v.GhostCells() {
		if !active.Has(p) {
			ghost.Put(p)
		}
	}
	var activeKind engine.Kind
	if v.Active != nil {
		activeKind = v.Active.Kind
	}

	panel := t.panel(v)
	lines := make([]string, 0, v.Height+2)
	border := t.colorFrame.Sprint("+" + strings.Repeat("--", v.Width) + "+")
	lines = append(lines, border)
	for y := 0; y < v.Height; y++ {
		var row strings.Builder
		row.WriteString(t.colorFrame.Sprint("|"))
		for x := 0; x < v.Width; x++ {
			p := engine.Point{X: x, Y: y}
			switch {
			case active.Has(p):
				row.WriteString(block(activeKind))
			case v.Cells[y][x] != engine.Empty:
				row.WriteString(block(v.Cells[y][x]))
			case ghost.Has(p):
				c := render.ShadesOf(activeKind).Base
				row.WriteString(color.RGB(c.R, c.G, c.B).Sprint(GlyphGhost))
			default:
				row.WriteString(t.colorSubtle.Sprint(GlyphEmpty))
			}
		}
		row.WriteString(t.colorFrame.Sprint("|"))
		lines = append(lines, row.String())
	}
	lines = append(lines, border)

	var b strings.Builder
	for i, line := range lines {
		b.WriteString(line)
		if i < len(panel) {
			b.WriteString(strings.Repeat(" ", panelGap))
			b.WriteString(panel[i])
		}
		b.WriteString("\x1b[K\r\n")
	}
	return b.String()
}

func block(kind engine.Kind) string {
	s := render.ShadesOf(kind)
	return color.NewRGBStyle(
		color.RGB(s.Highlight.R, s.Highlight.G, s.Highlight.B),
		color.RGB(s.Base.R, s.Base.G, s.Base.B),
	).Sprint(GlyphBlock)
}

// panel returns the side panel lines: hold slot, preview, stats, banner and
// callouts.
func (t *Renderer) panel(v render.View) []string {
	var lines []string
	lines = append(lines, t.colorLabel.Sprint(t.locale.Get("HOLD")))
	lines = append(lines, mini(v.Held)...)
	lines = append(lines, "", t.colorLabel.Sprint(t.locale.Get("NEXT")))
	for _, kind := range v.Next {
		lines = append(lines, mini(kind)...)
	}
	lines = append(lines, "")
	for _, s := range render.Stats(v, t.locale) {
		lines = append(lines, fmt.Sprintf("%s %s",
			t.colorLabel.Sprintf("%-7s", s.Label), t.colorValue.Sprint(s.Value)))
	}
	if title, hint := render.Banner(v, t.locale); title != "" || hint != "" {
		lines = append(lines, "")
		if title != "" {
			lines = append(lines, t.colorBanner.Sprint(title))
		}
		lines = append(lines, t.colorSubtle.Sprint(hint))
	}
	for _, c := range v.Callouts {
		style := t.colorValue
		if c.Good {
			style = t.colorGood
		}
		lines = append(lines, style.Sprint(c.Text))
	}
	return lines
}

// mini draws kind's spawn orientation in a two-row box. An empty kind draws
// blank rows.
func mini(kind engine.Kind) []string {
	rows := [2]strings.Builder{}
	shape := engine.ShapeOf(kind, 0)
	top := -1
	for r, row := range shape {
		if slices.Contains(row, true) {
			top = r
			break
		}
	}
	for i := range rows {
		for c := 0; c < miniCols; c++ {
			r := top + i
			if top >= 0 && r < len(shape) && c < len(shape[r]) && shape[r][c] {
				rows[i].WriteString(block(kind))
			} else {
				rows[i].WriteString(GlyphBlank)
			}
		}
	}
	return []string{rows[0].String(), rows[1].String()}
}
