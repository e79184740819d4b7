package render

import (
	"image/color"

	"github.com/plus3/blockfall/engine"
)

// Shades is the set of tones used to draw one piece kind.
type Shades struct {
	Base      color.RGBA
	Highlight color.RGBA
	Shadow    color.RGBA
	Edge      color.RGBA
}

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

var palette = map[engine.Kind]Shades{
	engine.I: {Base: rgb(0x18D0E6), Highlight: rgb(0x5FEFFF), Shadow: rgb(0x0F6B85), Edge: rgb(0x0A3C4A)},
	engine.O: {Base: rgb(0xF7C62F), Highlight: rgb(0xFFE45F), Shadow: rgb(0x8F6A10), Edge: rgb(0x4A3905)},
	engine.T: {Base: rgb(0x7040F2), Highlight: rgb(0x9A70FF), Shadow: rgb(0x351A75), Edge: rgb(0x220E4D)},
	engine.L: {Base: rgb(0xF2922A), Highlight: rgb(0xFFB366), Shadow: rgb(0x8C4208), Edge: rgb(0x4D2203)},
	engine.J: {Base: rgb(0x2E6CF3), Highlight: rgb(0x5D95FF), Shadow: rgb(0x0E2F73), Edge: rgb(0x081946)},
	engine.S: {Base: rgb(0x22B366), Highlight: rgb(0x4DDB8B), Shadow: rgb(0x0B4D2C), Edge: rgb(0x042618)},
	engine.Z: {Base: rgb(0xE23B33), Highlight: rgb(0xFF726B), Shadow: rgb(0x6A1410), Edge: rgb(0x350807)},
}

// Background tones of the playfield checkerboard.
var (
	BackgroundEven = rgb(0x050505)
	BackgroundOdd  = rgb(0x0A0A0A)
	Frame          = rgb(0x3A3F4B)
)

// ShadesOf returns the tones for kind. Empty cells get the background.
func ShadesOf(kind engine.Kind) Shades {
	if s, ok := palette[kind]; ok {
		return s
	}
	return Shades{Base: BackgroundEven, Highlight: BackgroundOdd, Shadow: BackgroundEven, Edge: BackgroundEven}
}

// Ghost returns the translucent landing-preview colour for kind.
func Ghost(kind engine.Kind) color.RGBA {
	c := ShadesOf(kind).Base
	const alpha = 0x50
	// Premultiplied, as image/color expects.
	return color.RGBA{
		R: uint8(uint16(c.R) * alpha / 0xff),
		G: uint8(uint16(c.G) * alpha / 0xff),
		B: uint8(uint16(c.B) * alpha / 0xff),
		A: alpha,
	}
}
