package main

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"elrs-hud/internal/instrument"
	"elrs-hud/internal/layout"
	"elrs-hud/internal/render/ebitencanvas"
	"elrs-hud/internal/style"
)

// View modes
const (
	modeHUD   = iota // full-screen HUD
	modeSplit        // panel + HUD
	modePanel        // panel only
	modeCount
)

const statusBarH = 24

// App is the main application
type App struct {
	src    *TelemetrySource
	hud    *instrument.HUD
	hudBox *slot
	panel  *Panel
	canvas *ebitencanvas.Canvas

	touchControls *TouchControls

	window     layout.Window
	width      int
	height     int
	fullscreen bool

	mode          int
	showHelp      bool
	showTouchBtns bool

	// Invalidations reported by the widgets
	invalidations int
}

// NewApp creates a new application
func NewApp(src *TelemetrySource, st style.File, width, height int, fullscreen bool) (*App, error) {
	cv, err := ebitencanvas.New()
	if err != nil {
		return nil, err
	}
	panel, err := NewPanel(st)
	if err != nil {
		return nil, err
	}
	hud := instrument.NewHUD(st.HUD)

	app := &App{
		src:           src,
		hud:           hud,
		hudBox:        &slot{w: hud},
		panel:         panel,
		canvas:        cv,
		touchControls: NewTouchControls(),
		width:         width,
		height:        height,
		fullscreen:    fullscreen,
		mode:          modeSplit,
	}
	invalidate := func() { app.invalidations++ }
	hud.SetInvalidator(invalidate)
	panel.SetInvalidator(invalidate)

	// Setup touch buttons (still available if enabled)
	app.touchControls.SetupDefaultButtons(app)
	return app, nil
}

// Run starts the application
func (a *App) Run() error {
	ebiten.SetWindowSize(a.width, a.height)
	ebiten.SetWindowTitle("ELRS HUD")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if a.fullscreen {
		ebiten.SetFullscreen(true)
	}

	a.src.Start()
	err := ebiten.RunGame(a)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

// Shutdown cleans up resources
func (a *App) Shutdown() {
	a.src.Stop()
}

// Update handles input and logic updates
func (a *App) Update() error {
	// Handle touch input first (before keyboard to allow touch override)
	if a.showTouchBtns {
		a.touchControls.UpdateLayout(a.width, a.height)
		a.touchControls.Update()
		a.touchControls.UpdateButtonStates(a)
	}

	// Handle keyboard input
	if err := a.handleKeyboard(); err != nil {
		return err
	}

	state := a.src.GetState()
	if state != a.hud.Telemetry() {
		a.hud.SetTelemetry(state)
	}
	a.panel.Update(state)
	return nil
}

// Draw renders the application
func (a *App) Draw(screen *ebiten.Image) {
	// Clear screen
	screen.Fill(color.RGBA{30, 30, 30, 255})

	if a.mode != modeHUD {
		a.panel.Draw(screen, a.canvas)
	}
	if a.mode != modePanel {
		a.hudBox.draw(screen, a.canvas)
	}

	// Draw help overlay
	if a.showHelp {
		a.drawHelp(screen)
	}

	// Draw touch buttons
	if a.showTouchBtns {
		a.touchControls.Draw(screen)
	}

	// Draw status bar
	a.drawStatusBar(screen)
}

// Layout returns the screen dimensions and sizes the widgets to match.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.window.Resize(outsideWidth, outsideHeight) {
		a.width, a.height = outsideWidth, outsideHeight
		a.relayout()
	}
	return outsideWidth, outsideHeight
}

func (a *App) relayout() {
	a.panel.Layout(a.height)

	left := 0
	if a.mode == modeSplit {
		left = a.panel.GetPanelWidth()
	}
	a.hudBox.setRect(image.Rect(left, 0, max(left, a.width), max(0, a.height-statusBarH)))
	log.Printf("Layout %dx%d, HUD %v", a.width, a.height, a.hudBox.rect)
}

func (a *App) cycleMode() {
	a.mode = (a.mode + 1) % modeCount
	a.relayout()
}

func (a *App) handleKeyboard() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// Toggles
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.src.SetDemo(!a.src.Demo())
		log.Printf("Demo sweep: %v", a.src.Demo())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		a.hud.SetEnabled(!a.hud.Enabled())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		a.cycleMode()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		a.showTouchBtns = !a.showTouchBtns
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		a.showHelp = !a.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.fullscreen = !a.fullscreen
		ebiten.SetFullscreen(a.fullscreen)
	}

	if a.src.Demo() {
		return nil
	}

	// Manual control
	a.src.Nudge(func(t *instrument.Telemetry) {
		step := func(plus, minus ebiten.Key, v *float64, d float64) {
			if ebiten.IsKeyPressed(plus) {
				*v += d
			}
			if ebiten.IsKeyPressed(minus) {
				*v -= d
			}
		}
		step(ebiten.KeyUp, ebiten.KeyDown, &t.Pitch, 0.2)
		step(ebiten.KeyRight, ebiten.KeyLeft, &t.Roll, 0.5)
		step(ebiten.KeyD, ebiten.KeyA, &t.Yaw, 1)
		step(ebiten.KeyW, ebiten.KeyS, &t.Airspeed, 0.5)
		step(ebiten.KeyR, ebiten.KeyF, &t.Altitude, 0.5)
		step(ebiten.KeyT, ebiten.KeyG, &t.TargetSpeed, 0.5)
		step(ebiten.KeyX, ebiten.KeyZ, &t.VerticalSpeed, 0.1)
	})
	return nil
}

func (a *App) drawStatusBar(screen *ebiten.Image) {
	// Bottom status bar
	barY := a.height - statusBarH

	vector.DrawFilledRect(screen, 0, float32(barY), float32(a.width), float32(statusBarH), color.RGBA{0, 0, 0, 200}, false)

	demoStr := "Manual"
	if a.src.Demo() {
		demoStr = "Demo"
	}
	hudStr := "HUD:OFF"
	if a.hud.Enabled() {
		hudStr = "HUD:ON"
	}
	viewStr := [...]string{"VIEW:HUD", "VIEW:SPLIT", "VIEW:PANEL"}[a.mode]

	state := a.src.GetState()
	redraws := a.hudBox.redraws + a.panel.Redraws()
	status := fmt.Sprintf(" %s | %s | %s | HDG %03.0f | Redraws: %s | Invalidations: %s | F1=Help",
		demoStr, hudStr, viewStr, state.Yaw,
		humanize.Comma(int64(redraws)), humanize.Comma(int64(a.invalidations)))

	ebitenutil.DebugPrintAt(screen, status, 5, barY+5)
}

func (a *App) drawHelp(screen *ebiten.Image) {
	help := []string{
		"=== ELRS HUD ===",
		"",
		"Space   Toggle demo sweep",
		"Enter   Enable/disable HUD",
		"Up/Dn   Pitch",
		"Lt/Rt   Roll",
		"A/D     Yaw",
		"W/S     Airspeed",
		"T/G     Target speed",
		"R/F     Altitude",
		"Z/X     Vertical speed",
		"V       Cycle view (HUD/Split/Panel)",
		"B       Toggle touch buttons",
		"F11     Toggle fullscreen",
		"F1      Toggle this help",
		"Esc     Quit",
	}

	panelW := 250
	panelH := len(help)*16 + 20
	panelX := 10
	panelY := 10

	vector.DrawFilledRect(screen, float32(panelX), float32(panelY), float32(panelW), float32(panelH), color.RGBA{0, 0, 0, 200}, false)

	y := panelY + 10
	for _, line := range help {
		ebitenutil.DebugPrintAt(screen, line, panelX+10, y)
		y += 16
	}
}
