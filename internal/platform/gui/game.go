// Package gui hosts the tutorial in a desktop window through Ebiten.
// Sprites are drawn as coloured boxes the size of their colliders; texts use
// Ebiten's debug font.
package gui

import (
	"cmp"
	"image/color"
	"io"
	"math"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/sprite-tutorial/internal/config"
	"github.com/vovakirdan/sprite-tutorial/internal/core"
	"github.com/vovakirdan/sprite-tutorial/internal/engine"
	"github.com/vovakirdan/sprite-tutorial/internal/games/tutorial"
	"github.com/vovakirdan/sprite-tutorial/internal/registry"
)

// Debug font cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

var background = color.RGBA{R: 24, G: 24, B: 32, A: 255}

// Options configures a window run.
type Options struct {
	TickRate int   // Frames per second, 0 keeps Ebiten's default
	Seed     int64 // 0 seeds from the clock
	Logger   *log.Logger
	Mute     bool
}

// Game adapts a tutorial game to ebiten.Game.
type Game struct {
	game   *engine.Game[tutorial.GameState]
	sounds *soundPlayer
	logger *log.Logger
	dims   core.Vec2
	title  string
	played time.Duration
}

// NewGame creates a window host around a fresh tutorial game.
func NewGame(cfg config.TutorialConfig, opts Options) *Game {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	dims := core.Vec2{X: float32(cfg.Window.Width), Y: float32(cfg.Window.Height)}
	e := engine.New(
		engine.WithLogger(opts.Logger),
		engine.WithSeed(opts.Seed),
		engine.WithWindowDimensions(dims),
	)

	g := &Game{
		game:   tutorial.New(e, cfg),
		logger: opts.Logger,
		dims:   dims,
	}
	if !opts.Mute {
		g.sounds = newSoundPlayer(opts.Logger)
	}
	return g
}

// Update runs one engine frame per Ebiten tick.
func (g *Game) Update() error {
	e := g.game.Engine()
	if e.WindowTitle != g.title {
		g.title = e.WindowTitle
		ebiten.SetWindowTitle(g.title)
	}

	delta := time.Second / time.Duration(ebiten.TPS())
	running := g.game.Frame(pollInput(delta, g.dims))
	g.played += delta

	reqs := e.Audio.Drain()
	if g.sounds != nil {
		g.sounds.handle(reqs)
	}

	if !running {
		if g.sounds != nil {
			g.sounds.close()
		}
		return ebiten.Termination
	}
	return nil
}

// Draw renders sprites lowest layer first, then texts.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	e := g.game.Engine()

	sprites := make([]*engine.Sprite, 0, len(e.Sprites))
	for _, sp := range e.Sprites {
		sprites = append(sprites, sp)
	}
	slices.SortFunc(sprites, func(a, b *engine.Sprite) int {
		return cmp.Or(cmp.Compare(a.Layer, b.Layer), cmp.Compare(a.Label, b.Label))
	})
	for _, sp := range sprites {
		g.drawSprite(screen, sp)
	}

	texts := make([]*engine.Text, 0, len(e.Texts))
	for _, t := range e.Texts {
		texts = append(texts, t)
	}
	slices.SortFunc(texts, func(a, b *engine.Text) int {
		return cmp.Or(cmp.Compare(a.Layer, b.Layer), cmp.Compare(a.Label, b.Label))
	})
	for _, t := range texts {
		x, y := core.WorldToWindow(t.Translation, g.dims)
		w := len([]rune(t.Value)) * glyphW
		ebitenutil.DebugPrintAt(screen, t.Value, int(x)-w/2, int(y)-glyphH/2)
	}
}

func (g *Game) drawSprite(screen *ebiten.Image, sp *engine.Sprite) {
	p, err := registry.LookupPreset(sp.Preset)
	if err != nil {
		return
	}

	r, gr, b := p.Color.RGB()
	fill := color.RGBA{R: r, G: gr, B: b, A: 255}

	box := sp.Collider()
	x, y := core.WorldToWindow(core.Vec2{X: box.Min().X, Y: box.Max().Y}, g.dims)
	vector.DrawFilledRect(screen, x, y, box.Half.X*2, box.Half.Y*2, fill, false)

	if p.Directional {
		// Nose line from the centre along the rotation
		cx, cy := core.WorldToWindow(sp.Translation, g.dims)
		reach := float64(max(box.Half.X, box.Half.Y))
		dx := float32(math.Cos(float64(sp.Rotation)) * reach)
		dy := float32(-math.Sin(float64(sp.Rotation)) * reach)
		vector.StrokeLine(screen, cx, cy, cx+dx, cy+dy, 3, color.White, false)
	}
}

// Layout follows the outside size so the world grows with the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.dims = core.Vec2{X: float32(outsideWidth), Y: float32(outsideHeight)}
	return outsideWidth, outsideHeight
}

// Summary returns the run summary so far.
func (g *Game) Summary() tutorial.RunSummary {
	return tutorial.Summarize(*g.game.State(), g.played)
}

// Run opens the window and blocks until the game exits or the window closes.
func Run(cfg config.TutorialConfig, opts Options) (tutorial.RunSummary, error) {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	g := NewGame(cfg, opts)
	if err := ebiten.RunGame(g); err != nil {
		return g.Summary(), err
	}
	return g.Summary(), nil
}
