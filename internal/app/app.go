//go:build ebiten

package app

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifeview/internal/core"
	"lifeview/internal/render"
	"lifeview/internal/session"
	"lifeview/internal/ui"
	"lifeview/internal/viewport"
)

var keyMap = map[ebiten.Key]viewport.Key{
	ebiten.KeySpace: viewport.KeySpace,
	ebiten.KeyP:     viewport.KeyP,
}

var buttonMap = map[ebiten.MouseButton]viewport.Button{
	ebiten.MouseButtonLeft:   viewport.ButtonLeft,
	ebiten.MouseButtonRight:  viewport.ButtonRight,
	ebiten.MouseButtonMiddle: viewport.ButtonMiddle,
}

// Game adapts a viewer session to the ebiten.Game interface.
type Game struct {
	s       *session.Session
	canvas  *render.ScreenCanvas
	hud     *ui.HUD
	overlay *ui.Overlay
	step    *core.FixedStep

	win      viewport.Size
	cursor   image.Point
	tickOnce bool
}

// New constructs a Game stepping the session at tps generations per second.
func New(s *session.Session, tps int) *Game {
	return &Game{
		s:       s,
		canvas:  render.NewScreenCanvas(),
		hud:     ui.NewHUD(),
		overlay: ui.NewOverlay(),
		step:    core.NewFixedStep(tps),
		cursor:  image.Pt(-1, -1),
	}
}

// Size reports the current window size; Game is the controller's Window.
func (g *Game) Size() viewport.Size { return g.win }

// Update feeds this frame's input to the controller and advances the
// automaton.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	ctrl := g.s.Ctrl
	for ek, vk := range keyMap {
		if inpututil.IsKeyJustPressed(ek) {
			ctrl.KeyPress(vk)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ctrl.ResetView()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.s.Reseed(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	// Move before buttons so a press lands on the current cell.
	if x, y := ebiten.CursorPosition(); x != g.cursor.X || y != g.cursor.Y {
		g.cursor = image.Pt(x, y)
		ctrl.MouseMove(viewport.Point{X: float64(x), Y: float64(y)})
	}
	for eb, vb := range buttonMap {
		if inpututil.IsMouseButtonJustPressed(eb) {
			ctrl.MousePress(vb, g.s.Sim, g)
		}
		if inpututil.IsMouseButtonJustReleased(eb) {
			ctrl.MouseRelease(vb)
		}
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		ctrl.MouseScroll(viewport.Point{Y: wy})
	}

	g.overlay.Update()

	if g.step.ShouldStep() || g.tickOnce {
		g.s.Advance(g.tickOnce)
		g.tickOnce = false
	}
	g.hud.Update(ui.StatusOf(ctrl, g.s.Sim, g.win))
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Begin(screen)
	g.s.Ctrl.Render(g.s.Sim, g, g.canvas)
	g.overlay.Draw(screen, g.s.Ctrl, g.win)
	g.hud.Draw(screen)
}

// Layout uses the outside size as the logical screen so window dimensions
// are current on every frame.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.win = viewport.Size{W: float64(outsideWidth), H: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}
