package debugui

import (
	"github.com/plus3/blockfall/engine"
)

type PerformanceStats struct {
	engine        *engine.Engine
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	timer         *FrameTimer
}

type Inspector struct {
	engine     *engine.Engine
	cellSize   float32
	showGhost  bool
	lastEvents []string
	maxEvents  int
}

var _ engine.Observer = (*Inspector)(nil)
