package render

import (
	"fmt"

	"github.com/plus3/blockfall/engine"
)

// StatLine is one label/value row of the side panel.
type StatLine struct {
	Label string
	Value string
}

// Stats returns the side panel rows for v in display order.
func Stats(v View, l *Locale) []StatLine {
	return []StatLine{
		{l.Get("SCORE"), groupThousands(v.Stats.Score)},
		{l.Get("LEVEL"), fmt.Sprint(v.Stats.Level)},
		{l.Get("LINES"), fmt.Sprint(v.Stats.Lines)},
		{l.Get("HIGH"), groupThousands(v.HighScore)},
	}
}

// Banner returns the overlay text for non-running states, or "" while
// playing.
func Banner(v View, l *Locale) (title, hint string) {
	switch v.State {
	case engine.StateIdle:
		return "", l.Get("PRESS_START")
	case engine.StatePaused:
		return l.Get("PAUSED"), l.Get("PRESS_START")
	case engine.StateGameOver:
		return l.Get("GAME_OVER"), l.Get("PRESS_RESTART")
	}
	return "", ""
}

// groupThousands formats n with comma separators.
func groupThousands(n int) string {
	s := fmt.Sprint(n)
	neg := n < 0
	if neg {
		s = s[1:]
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	for i := range len(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// LevelProgress returns how far the player is through the current level,
// 0 to 1.
func LevelProgress(s engine.Stats) float64 {
	return float64(s.Lines%engine.LinesPerLevel) / engine.LinesPerLevel
}
