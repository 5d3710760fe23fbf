// Package crawl implements the dungeon crawl game: the player starts at the
// entrance of a procedurally generated dungeon and walks to the exit.
// It contains no terminal code; rendering goes through core.Screen and the
// platform layer decides how cells reach the terminal.
package crawl

import (
	"fmt"
	"math/rand"

	"github.com/daedalus-crawl/daedalus/internal/core"
	"github.com/daedalus-crawl/daedalus/internal/dungeon"
)

// Glyphs used on the map.
const (
	GlyphWall     = '#'
	GlyphFloor    = '·'
	GlyphEntrance = '<'
	GlyphExit     = '>'
	GlyphPath     = '*'
	GlyphPlayer   = '@'
)

// Game is one crawl through a generated dungeon.
type Game struct {
	rows   int
	cols   int
	method dungeon.Method
	gen    dungeon.Generator // Optional parameterized generator; overrides method

	rng  *rand.Rand
	dun  *dungeon.Dungeon
	seed int64

	player dungeon.Coord
	steps  int

	// Solver overlay
	showPath  bool
	pathCells map[dungeon.Coord]bool
	pathLen   int

	// Screen layout
	screenW    int
	screenH    int
	hudHeight  int
	mapOffsetX int
	mapOffsetY int

	won      bool
	paused   bool
	tooSmall bool
	genErr   error
}

// New creates a crawl over maps generated by the given method with the
// generator's default parameters.
func New(rows, cols int, method dungeon.Method) *Game {
	return &Game{
		rows:   rows,
		cols:   cols,
		method: method,
	}
}

// SetGenerator replaces the default generator with a parameterized one.
// Takes effect on the next Reset or regeneration.
func (g *Game) SetGenerator(gen dungeon.Generator) {
	g.gen = gen
	if gen != nil {
		g.method = gen.Method()
	}
}

// Method returns the generation method in use.
func (g *Game) Method() dungeon.Method {
	return g.method
}

// Title returns the display name.
func (g *Game) Title() string {
	return fmt.Sprintf("Dungeon Crawl (%s)", g.method)
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2
	g.steps = 0
	g.won = false
	g.paused = false
	g.showPath = false

	g.regenerate(cfg.Seed)
}

// regenerate carves a fresh dungeon with the given seed and moves the
// player to its entrance.
func (g *Game) regenerate(seed int64) {
	g.seed = seed
	g.steps = 0
	g.won = false
	g.pathCells = nil
	g.pathLen = 0
	g.genErr = nil

	d, err := dungeon.New(g.rows, g.cols, seed)
	if err != nil {
		g.genErr = err
		return
	}
	if g.gen != nil {
		err = d.GenerateWith(g.gen)
	} else {
		err = d.Generate(g.method)
	}
	if err != nil {
		g.genErr = err
		return
	}
	g.dun = d

	entrance, ok := d.EntrancePos()
	if !ok {
		g.genErr = dungeon.ErrNoEntrance
		return
	}
	g.player = entrance

	// Solve up front so the overlay and run stats are always available.
	if path, err := d.Solve(); err == nil {
		g.pathCells = make(map[dungeon.Coord]bool, len(path))
		for _, c := range path {
			g.pathCells[c] = true
		}
		g.pathLen = len(path)
	}

	g.layout()
}

// layout centers the map under the HUD and flags undersized screens.
func (g *Game) layout() {
	requiredW := g.cols
	requiredH := g.rows + g.hudHeight + 1
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.mapOffsetX = (g.screenW - g.cols) / 2
	g.mapOffsetY = g.hudHeight
}

// Dungeon exposes the current map, for persistence by the platform layer.
func (g *Game) Dungeon() *dungeon.Dungeon {
	return g.dun
}

// Seed returns the seed the current map was carved with.
func (g *Game) Seed() int64 {
	return g.seed
}

// PathLen returns the shortest-path length computed at generation time,
// or 0 when the map had no solvable route.
func (g *Game) PathLen() int {
	return g.pathLen
}

// Player returns the player's current position.
func (g *Game) Player() dungeon.Coord {
	return g.player
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.GameState {
	// Restart after winning: same dungeon, back to the entrance
	if input.Has(core.ActionRestart) && g.won {
		g.won = false
		g.steps = 0
		if ent, ok := g.dun.EntrancePos(); ok {
			g.player = ent
		}
		return g.State()
	}

	if input.Has(core.ActionRegenerate) {
		g.regenerate(g.rng.Int63())
		return g.State()
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if input.Has(core.ActionTogglePath) {
		g.showPath = !g.showPath
	}

	if g.won || g.paused || g.tooSmall || g.genErr != nil {
		return g.State()
	}

	g.processMove(input)
	return g.State()
}

// processMove applies at most one movement action per tick.
func (g *Game) processMove(input core.InputFrame) {
	next := g.player
	switch {
	case input.Has(core.ActionMoveUp):
		next = g.player.Add(-1, 0)
	case input.Has(core.ActionMoveDown):
		next = g.player.Add(1, 0)
	case input.Has(core.ActionMoveLeft):
		next = g.player.Add(0, -1)
	case input.Has(core.ActionMoveRight):
		next = g.player.Add(0, 1)
	default:
		return
	}

	// Walls and map edges block; IsWall treats out-of-bounds as wall.
	if g.dun.IsWall(next.Row, next.Col) {
		return
	}

	g.player = next
	g.steps++

	if g.dun.IsExit(next.Row, next.Col) {
		g.won = true
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	switch {
	case g.genErr != nil:
		g.renderOverlay(dst, "Generation failed", g.genErr.Error())
		return
	case g.tooSmall:
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d characters", g.cols, g.rows+g.hudHeight+1))
		return
	}

	g.renderMap(dst)

	switch {
	case g.won:
		g.renderOverlay(dst, "You escaped!",
			fmt.Sprintf("Steps: %d  (shortest: %d)  R to restart, G for a new map", g.steps, g.pathLen))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	overlay := "off"
	if g.showPath {
		overlay = "on"
	}
	hud := fmt.Sprintf(" %s | Steps: %d  Seed: %d  Path: %s", g.Title(), g.steps, g.seed, overlay)
	dst.DrawText(0, 0, hud)
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// renderMap draws the dungeon tiles, the solver overlay, and the player.
func (g *Game) renderMap(dst *core.Screen) {
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			tile, err := g.dun.TileAt(i, j)
			if err != nil {
				continue
			}
			cell := tileCell(tile)
			if g.showPath && tile == dungeon.Floor && g.pathCells[dungeon.At(i, j)] {
				cell = core.Cell{Rune: GlyphPath, Color: core.ColorYellow}
			}
			dst.SetCell(g.mapOffsetX+j, g.mapOffsetY+i, cell)
		}
	}

	dst.SetCell(g.mapOffsetX+g.player.Col, g.mapOffsetY+g.player.Row,
		core.Cell{Rune: GlyphPlayer, Color: core.ColorBrightWhite})
}

// tileCell maps a tile code to its glyph and color.
func tileCell(t dungeon.Tile) core.Cell {
	switch t {
	case dungeon.Wall:
		return core.Cell{Rune: GlyphWall, Color: core.ColorGray}
	case dungeon.Entrance:
		return core.Cell{Rune: GlyphEntrance, Color: core.ColorGreen}
	case dungeon.Exit:
		return core.Cell{Rune: GlyphExit, Color: core.ColorRed}
	default:
		return core.Cell{Rune: GlyphFloor, Color: core.ColorDefault}
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Steps:    g.steps,
		Won:      g.won,
		GameOver: g.won,
		Paused:   g.paused,
	}
}
