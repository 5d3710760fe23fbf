package crawl

import (
	"strings"
	"testing"

	"github.com/daedalus-crawl/daedalus/internal/core"
	"github.com/daedalus-crawl/daedalus/internal/dungeon"
)

// corridorGen carves a single straight corridor on row 1:
// entrance at (1,1), exit at (1, cols-2). Gives tests a map whose
// every cell is known.
type corridorGen struct{}

func (corridorGen) Method() dungeon.Method { return dungeon.MethodNaive }
func (corridorGen) Title() string          { return "corridor" }

func (corridorGen) Generate(d *dungeon.Dungeon) error {
	for j := 1; j < d.Cols()-1; j++ {
		if err := d.SetTile(1, j, dungeon.Floor); err != nil {
			return err
		}
	}
	if err := d.SetEntrance(1, 1); err != nil {
		return err
	}
	return d.SetExit(1, d.Cols()-2)
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New(5, 8, dungeon.MethodNaive)
	g.SetGenerator(corridorGen{})
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 12, Seed: 7})
	if g.genErr != nil {
		t.Fatalf("generation failed: %v", g.genErr)
	}
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestResetPlacesPlayerAtEntrance(t *testing.T) {
	g := newTestGame(t)

	if g.Player() != dungeon.At(1, 1) {
		t.Errorf("Player = %v, want (1, 1)", g.Player())
	}
	st := g.State()
	if st.Steps != 0 || st.Won || st.GameOver || st.Paused {
		t.Errorf("Fresh state = %+v, want zeroed", st)
	}
	if g.PathLen() == 0 {
		t.Error("Expected corridor to be solved at generation time")
	}
}

func TestMovementAndStepCounting(t *testing.T) {
	g := newTestGame(t)

	g.Step(frame(core.ActionMoveRight))
	if g.Player() != dungeon.At(1, 2) {
		t.Errorf("After right: player = %v, want (1, 2)", g.Player())
	}
	if g.State().Steps != 1 {
		t.Errorf("Steps = %d, want 1", g.State().Steps)
	}

	g.Step(frame(core.ActionMoveLeft))
	if g.Player() != dungeon.At(1, 1) {
		t.Errorf("After left: player = %v, want (1, 1)", g.Player())
	}
	if g.State().Steps != 2 {
		t.Errorf("Steps = %d, want 2 (backtracking still counts)", g.State().Steps)
	}
}

func TestWallsBlockMovement(t *testing.T) {
	g := newTestGame(t)

	// Up, down, and left from the entrance are all walls
	for _, a := range []core.Action{core.ActionMoveUp, core.ActionMoveDown, core.ActionMoveLeft} {
		g.Step(frame(a))
		if g.Player() != dungeon.At(1, 1) {
			t.Fatalf("%v moved the player into a wall: %v", a, g.Player())
		}
	}
	if g.State().Steps != 0 {
		t.Errorf("Blocked moves counted as steps: %d", g.State().Steps)
	}
}

func TestWinOnReachingExit(t *testing.T) {
	g := newTestGame(t)

	// Corridor from (1,1) to (1,6): five steps to the exit
	for i := 0; i < 5; i++ {
		g.Step(frame(core.ActionMoveRight))
	}

	st := g.State()
	if !st.Won || !st.GameOver {
		t.Fatalf("State after reaching exit = %+v, want won", st)
	}
	if st.Steps != 5 {
		t.Errorf("Steps = %d, want 5", st.Steps)
	}

	// Movement is frozen after winning
	g.Step(frame(core.ActionMoveLeft))
	if g.Player() != dungeon.At(1, 6) {
		t.Error("Player moved after winning")
	}
}

func TestRestartAfterWin(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 5; i++ {
		g.Step(frame(core.ActionMoveRight))
	}
	if !g.State().Won {
		t.Fatal("Expected win before restart")
	}

	seed := g.Seed()
	g.Step(frame(core.ActionRestart))

	if g.State().Won || g.State().Steps != 0 {
		t.Errorf("State after restart = %+v, want fresh", g.State())
	}
	if g.Player() != dungeon.At(1, 1) {
		t.Errorf("Player after restart = %v, want entrance", g.Player())
	}
	if g.Seed() != seed {
		t.Error("Restart should keep the same dungeon")
	}
}

func TestPauseBlocksMovement(t *testing.T) {
	g := newTestGame(t)

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("Expected paused state")
	}

	g.Step(frame(core.ActionMoveRight))
	if g.Player() != dungeon.At(1, 1) {
		t.Error("Player moved while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("Expected unpaused state")
	}
}

func TestRegenerateProducesNewMap(t *testing.T) {
	g := New(20, 32, dungeon.MethodDrunkenWalk)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: 11})
	if g.genErr != nil {
		t.Fatalf("generation failed: %v", g.genErr)
	}

	before := g.Dungeon().Export(nil)
	beforeSeed := g.Seed()

	g.Step(frame(core.ActionRegenerate))
	if g.genErr != nil {
		t.Fatalf("regeneration failed: %v", g.genErr)
	}

	if g.Seed() == beforeSeed {
		t.Error("Regeneration should draw a new seed")
	}
	after := g.Dungeon().Export(nil)
	same := true
	for k := range before {
		if before[k] != after[k] {
			same = false
			break
		}
	}
	if same {
		t.Error("Regenerated map is identical to the old one")
	}
	if g.State().Steps != 0 {
		t.Error("Regeneration should reset the step counter")
	}
	if ent, ok := g.Dungeon().EntrancePos(); !ok || g.Player() != ent {
		t.Error("Player should start at the new entrance")
	}
}

func TestDeterministicReset(t *testing.T) {
	a := New(18, 28, dungeon.MethodCellularAutomata)
	a.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: 321})
	b := New(18, 28, dungeon.MethodCellularAutomata)
	b.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: 321})

	ta := a.Dungeon().Export(nil)
	tb := b.Dungeon().Export(nil)
	for k := range ta {
		if ta[k] != tb[k] {
			t.Fatalf("Same seed produced different maps at index %d", k)
		}
	}
}

func TestRenderShowsPlayerAndPathToggle(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(40, 12)

	g.Render(screen)
	out := screen.String()
	if !strings.ContainsRune(out, GlyphPlayer) {
		t.Error("Rendered screen missing player glyph")
	}
	if !strings.ContainsRune(out, GlyphExit) {
		t.Error("Rendered screen missing exit glyph")
	}
	if strings.ContainsRune(out, GlyphPath) {
		t.Error("Path overlay drawn before toggling it on")
	}

	g.Step(frame(core.ActionTogglePath))
	g.Render(screen)
	if !strings.ContainsRune(screen.String(), GlyphPath) {
		t.Error("Path overlay missing after toggle")
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := New(20, 60, dungeon.MethodBSP)
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 10, Seed: 5})

	if !g.tooSmall {
		t.Fatal("Expected tooSmall for a 30x10 screen and 60-wide map")
	}

	// Movement is disabled rather than panicking off-screen
	before := g.Player()
	g.Step(frame(core.ActionMoveRight))
	if g.Player() != before {
		t.Error("Player moved while screen too small")
	}

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("Expected too-small overlay message")
	}
}
