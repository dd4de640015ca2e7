package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TouchButton represents an on-screen touch button
type TouchButton struct {
	X, Y, W, H int
	Label      string
	Active     bool // Toggle state for toggle buttons
	Visible    bool
	OnPress    func()
}

// TouchControls manages touch UI elements
type TouchControls struct {
	buttons  []*TouchButton
	screenW  int
	screenH  int
	btnColor color.RGBA
	actColor color.RGBA
	txtColor color.RGBA
}

// NewTouchControls creates touch control manager
func NewTouchControls() *TouchControls {
	return &TouchControls{
		buttons:  make([]*TouchButton, 0),
		btnColor: color.RGBA{60, 60, 60, 200},
		actColor: color.RGBA{0, 150, 0, 200},
		txtColor: color.RGBA{255, 255, 255, 255},
	}
}

// AddButton adds a touch button
func (tc *TouchControls) AddButton(w, h int, label string, onPress func()) *TouchButton {
	btn := &TouchButton{
		W:       w,
		H:       h,
		Label:   label,
		Visible: true,
		OnPress: onPress,
	}
	tc.buttons = append(tc.buttons, btn)
	return btn
}

// Update checks for touch/click events
func (tc *TouchControls) Update() {
	// Handle mouse clicks
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		tc.handlePress(mx, my)
	}

	// Handle touch
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	for _, id := range touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		tc.handlePress(tx, ty)
	}
}

func (tc *TouchControls) handlePress(x, y int) {
	for _, btn := range tc.buttons {
		if !btn.Visible {
			continue
		}
		if x >= btn.X && x <= btn.X+btn.W && y >= btn.Y && y <= btn.Y+btn.H {
			if btn.OnPress != nil {
				btn.OnPress()
			}
			break
		}
	}
}

// Draw renders all touch buttons
func (tc *TouchControls) Draw(screen *ebiten.Image) {
	for _, btn := range tc.buttons {
		if !btn.Visible {
			continue
		}

		// Background
		bgColor := tc.btnColor
		if btn.Active {
			bgColor = tc.actColor
		}
		vector.DrawFilledRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), bgColor, true)

		// Border
		vector.StrokeRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), 2, tc.txtColor, true)

		// Label
		labelX := btn.X + btn.W/2 - len(btn.Label)*3
		labelY := btn.Y + btn.H/2 - 6
		ebitenutil.DebugPrintAt(screen, btn.Label, labelX, labelY)
	}
}

// UpdateLayout lines the buttons up along the bottom right, above the
// status bar.
func (tc *TouchControls) UpdateLayout(screenW, screenH int) {
	if tc.screenW == screenW && tc.screenH == screenH {
		return // No change
	}
	tc.screenW = screenW
	tc.screenH = screenH

	margin := 5
	x := screenW
	for i := len(tc.buttons) - 1; i >= 0; i-- {
		btn := tc.buttons[i]
		x -= btn.W + margin
		btn.X, btn.Y = x, screenH-statusBarH-btn.H-margin
	}
}

// SetupDefaultButtons creates the standard control buttons
func (tc *TouchControls) SetupDefaultButtons(app *App) {
	tc.AddButton(60, 45, "DEMO", func() {
		app.src.SetDemo(!app.src.Demo())
	})

	tc.AddButton(60, 45, "HUD", func() {
		app.hud.SetEnabled(!app.hud.Enabled())
	})

	tc.AddButton(60, 45, "VIEW", func() {
		app.cycleMode()
	})
}

// UpdateButtonStates updates active states based on app state
func (tc *TouchControls) UpdateButtonStates(app *App) {
	for _, btn := range tc.buttons {
		switch btn.Label {
		case "DEMO":
			btn.Active = app.src.Demo()
		case "HUD":
			btn.Active = app.hud.Enabled()
		case "VIEW":
			btn.Active = app.mode != modeHUD
		}
	}
}
