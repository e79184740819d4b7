package render_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/render"
)

type recordingRenderer struct {
	views []render.View
}

func (r *recordingRenderer) Init() error               { return nil }
func (r *recordingRenderer) RenderFrame(v render.View) { r.views = append(r.views, v) }
func (r *recordingRenderer) Close() error              { return nil }

func TestLocales(t *testing.T) {
	assert.Equal(t, []string{"en", "es"}, render.Locales())

	en, err := render.LoadLocale("en")
	require.NoError(t, err)
	assert.Equal(t, "GAME OVER", en.Get("GAME_OVER"))
	assert.Equal(t, "TETRIS +1200", en.Get("CALLOUT_TETRIS", 1200))

	es, err := render.LoadLocale("es_ES")
	require.NoError(t, err)
	assert.Equal(t, "es", es.Lang())
	assert.Equal(t, "NIVEL 3", es.Get("CALLOUT_LEVEL", 3))

	_, err = render.LoadLocale("tlh")
	assert.Error(t, err)
	assert.Equal(t, "en", render.MustLoadLocale("tlh").Lang())

	var none *render.Locale
	assert.Equal(t, "SCORE", none.Get("SCORE"))
}

func TestStatsAndBanner(t *testing.T) {
	en := render.MustLoadLocale("en")
	v := render.View{Snapshot: engine.Snapshot{
		Stats:     engine.Stats{Score: 1234567, Level: 3, Lines: 27},
		HighScore: 999,
		State:     engine.StatePaused,
	}}

	assert.Equal(t, []render.StatLine{
		{Label: "SCORE", Value: "1,234,567"},
		{Label: "LEVEL", Value: "3"},
		{Label: "LINES", Value: "27"},
		{Label: "HIGH", Value: "999"},
	}, render.Stats(v, en))

	title, hint := render.Banner(v, en)
	assert.Equal(t, "PAUSED", title)
	assert.Equal(t, "Press Space to start", hint)

	v.State = engine.StateRunning
	title, hint = render.Banner(v, en)
	assert.Empty(t, title)
	assert.Empty(t, hint)

	assert.InDelta(t, 0.7, render.LevelProgress(v.Stats), 1e-9)
}

func TestCalloutsFollowLineClears(t *testing.T) {
	c := render.NewCallouts(render.MustLoadLocale("en"))

	c.Notify(engine.StatsUpdated{Stats: engine.Stats{Score: 140, Level: 1}})
	c.Notify(engine.LineCleared{Cleared: 4, Points: 1200, Stats: engine.Stats{Score: 1340, Level: 1, Lines: 4}})
	c.Notify(engine.LevelUp{Level: 2})

	active := c.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "TETRIS +1200", active[0].Text, "drop points are not part of the clear")
	assert.True(t, active[0].Good)
	assert.Equal(t, "LEVEL 2", active[1].Text)
	assert.Equal(t, 1.0, active[0].Fade())

	c.Execute(&ecs.UpdateFrame{Elapsed: 1800 * time.Millisecond})
	active = c.Active()
	require.Len(t, active, 1, "level callout expired first")
	assert.Equal(t, "TETRIS +1200", active[0].Text)
	assert.InDelta(t, 100.0/1900.0, active[0].Fade(), 1e-9)

	c.Notify(engine.GameOver{})
	assert.Empty(t, c.Active())
}

func TestCalloutsClearOnReset(t *testing.T) {
	e, err := engine.New(engine.Options{Width: 10, Height: 20, Rand: engine.SeededRand(9), Headless: true})
	require.NoError(t, err)
	c := render.NewCallouts(nil)
	e.AddObserver(c)

	c.Notify(engine.LineCleared{Cleared: 2, Points: 300})
	require.Len(t, c.Active(), 1)

	e.Reset(true)
	assert.Empty(t, c.Active())
}

func TestCalloutsKeepTheNewestFew(t *testing.T) {
	c := render.NewCallouts(nil)
	for i := 1; i <= 6; i++ {
		c.Notify(engine.LineCleared{Cleared: 1 + i%2})
	}
	active := c.Active()
	require.Len(t, active, 4)
	assert.Equal(t, "CALLOUT_LINE", active[3].Text)
}

func TestAttachFeedsRendererAfterEffects(t *testing.T) {
	e, err := engine.New(engine.Options{Width: 10, Height: 20, Rand: engine.SeededRand(9)})
	require.NoError(t, err)
	r := &recordingRenderer{}
	render.Attach(e, r, render.NewCallouts(nil))
	e.Start()

	e.Tick(16 * time.Millisecond)

	require.Len(t, r.views, 1)
	v := r.views[0]
	assert.Equal(t, engine.StateRunning, v.State)
	require.NotNil(t, v.Active)
	assert.Len(t, v.Next, engine.PreviewSize)

	systems := e.SchedulerStats().Systems
	require.Len(t, systems, 5)
	assert.Equal(t, "Callouts", systems[3].Name)
	assert.Equal(t, ecs.PhaseUpdate, systems[3].Phase)
	assert.Equal(t, "RenderSystem", systems[4].Name)
	assert.Equal(t, ecs.PhaseRender, systems[4].Phase)
}

func TestPalette(t *testing.T) {
	for _, k := range engine.Kinds {
		s := render.ShadesOf(k)
		assert.Equal(t, uint8(0xff), s.Base.A, "kind %s", k)
		assert.NotEqual(t, render.BackgroundEven, s.Base)
		g := render.Ghost(k)
		assert.Less(t, g.A, uint8(0xff))
		assert.LessOrEqual(t, g.R, g.A)
	}
	assert.Equal(t, render.BackgroundEven, render.ShadesOf(engine.Empty).Base)
}
