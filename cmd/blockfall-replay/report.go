package main

import (
	"io"
	"text/template"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/engine"
)

type Report struct {
	// Configuration
	Width     int
	Height    int
	Seed      uint64
	MaxPieces int

	// Results
	Games       []GameResult
	GameTime    Stats
	TotalTime   time.Duration
	BestScore   int
	HighScore   int
	PieceCounts []PieceCount
	Bags        BagAudit
	Systems     *ecs.SchedulerStats
}

type GameResult struct {
	Stats  engine.Stats
	Pieces int
	Capped bool
}

type PieceCount struct {
	Kind  engine.Kind
	Count int
}

// BagAudit counts the complete bags seen in the spawn order and how many of
// them repeated a kind.
type BagAudit struct {
	Checked    int
	Violations int
}

// Add audits spawned, the kinds of one game in spawn order. A trailing
// partial bag is ignored.
func (a *BagAudit) Add(spawned []engine.Kind) {
	for start := 0; start+engine.BagSize <= len(spawned); start += engine.BagSize {
		kinds := mapset.New[engine.Kind]()
		for _, k := range spawned[start : start+engine.BagSize] {
			kinds.Put(k)
		}
		a.Checked++
		if kinds.Size() != engine.BagSize {
			a.Violations++
		}
	}
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// AverageScore returns the mean final score.
func (r *Report) AverageScore() float64 {
	if len(r.Games) == 0 {
		return 0
	}
	total := 0
	for _, g := range r.Games {
		total += g.Stats.Score
	}
	return float64(total) / float64(len(r.Games))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Replay Report

## Configuration
- **Board:** {{.Width}}x{{.Height}}
- **Seed:** {{.Seed}}
- **Games:** {{len .Games}}
- **Piece Cap:** {{.MaxPieces}}

## Games
{{range $i, $g := .Games -}}
- Game {{inc $i}}: score {{$g.Stats.Score}}, level {{$g.Stats.Level}}, lines {{$g.Stats.Lines}}, pieces {{$g.Pieces}}{{if $g.Capped}} (capped){{end}}
{{end}}
## Results
- **Best Score:** {{.BestScore}}
- **Average Score:** {{printf "%.1f" .AverageScore}}
- **Stored High Score:** {{.HighScore}}
- **Total Time:** {{.TotalTime}}
- **Game Time:**
  - **Avg:** {{.GameTime.Avg}}
  - **Min:** {{.GameTime.Min}}
  - **Max:** {{.GameTime.Max}}

## Pieces
{{range .PieceCounts -}}
- {{.Kind}}: {{.Count}}
{{end}}
- **Bags Checked:** {{.Bags.Checked}}
- **Bag Violations:** {{.Bags.Violations}}
{{if .Systems}}
## Systems
{{range .Systems.Systems -}}
- {{.Name}} ({{.Phase}}): {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}{{end}}`

	fm := template.FuncMap{
		"inc": func(i int) int {
			return i + 1
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
