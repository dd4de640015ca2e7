// Package style holds the construction-time options of every instrument.
//
// Each widget takes a copy of its style struct. The Default constructors
// return the stock look; Load overlays a YAML document on top of them so
// that keys missing from the file keep their defaults.
package style

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultStrokeWidth is the pen width of the simple widgets.
const DefaultStrokeWidth = 2

// HUD styles the full head-up display.
type HUD struct {
	Enabled bool `yaml:"enabled"`

	GroundColor         Color `yaml:"groundColor"`
	SkyColor            Color `yaml:"skyColor"`
	DisabledGroundColor Color `yaml:"disabledGroundColor"`
	DisabledSkyColor    Color `yaml:"disabledSkyColor"`

	TextColor Color   `yaml:"textColor"`
	TextSize  float64 `yaml:"textSize"`

	ReticleColor       Color   `yaml:"reticleColor"`
	ReticleRadius      float64 `yaml:"reticleRadius"`
	ReticleStrokeWidth float64 `yaml:"reticleStrokeWidth"`

	PitchScaleWidth float64 `yaml:"pitchScaleWidth"`

	TopBarColor  Color   `yaml:"topBarBgColor"`
	TopBarHeight float64 `yaml:"topBarHeight"`

	ScrollerHeight               float64 `yaml:"scrollerHeight"`
	ScrollerWidth                float64 `yaml:"scrollerWidth"`
	ScrollerColor                Color   `yaml:"scrollerBgColor"`
	ScrollerArrowHeight          float64 `yaml:"scrollerArrowHeight"`
	ScrollerTicWidth             float64 `yaml:"scrollerTicWidth"`
	ScrollerTextHorizontalMargin float64 `yaml:"scrollerTextHorizontalMargin"`
	ScrollerTextVerticalMargin   float64 `yaml:"scrollerTextVerticalMargin"`

	TargetColor       Color   `yaml:"targetColor"`
	TargetStrokeWidth float64 `yaml:"targetStrokeWidth"`
	VSIColor          Color   `yaml:"vsiColor"`
}

// DefaultHUD returns the stock HUD look. Note that a HUD starts disabled and
// renders its grey sky and ground until enabled.
func DefaultHUD() HUD {
	return HUD{
		Enabled:                      false,
		GroundColor:                  ARGB(220, 148, 193, 31),
		SkyColor:                     ARGB(220, 0, 113, 188),
		DisabledGroundColor:          DkGray,
		DisabledSkyColor:             LtGray,
		TextColor:                    White,
		TextSize:                     25,
		ReticleColor:                 Red,
		ReticleRadius:                10,
		ReticleStrokeWidth:           3,
		PitchScaleWidth:              30,
		TopBarColor:                  Black,
		TopBarHeight:                 30,
		ScrollerHeight:               200,
		ScrollerWidth:                96,
		ScrollerColor:                ARGB(64, 255, 255, 255),
		ScrollerArrowHeight:          25,
		ScrollerTicWidth:             16,
		ScrollerTextHorizontalMargin: 23,
		ScrollerTextVerticalMargin:   10,
		TargetColor:                  Green,
		TargetStrokeWidth:            6,
		VSIColor:                     RGB(0, 50, 250),
	}
}

// PitchRoll styles the simple pitch/roll indicator. A nil Pitch or Roll
// starts the widget at the middle of its range.
type PitchRoll struct {
	TextSize float64 `yaml:"textSize"`

	PitchMin         float64  `yaml:"pitchMin"`
	PitchMax         float64  `yaml:"pitchMax"`
	Pitch            *float64 `yaml:"pitch"`
	PitchScaleWidth  float64  `yaml:"pitchScaleWidth"`
	PitchScaleMargin float64  `yaml:"pitchScaleMargin"`
	PitchColor       Color    `yaml:"pitchColor"`

	RollMin   float64  `yaml:"rollMin"`
	RollMax   float64  `yaml:"rollMax"`
	Roll      *float64 `yaml:"roll"`
	RollColor Color    `yaml:"rollColor"`

	ReticleRadius float64 `yaml:"reticleRadius"`
	ReticleColor  Color   `yaml:"reticleColor"`

	StrokeWidth float64 `yaml:"strokeWidth"`
}

func DefaultPitchRoll() PitchRoll {
	return PitchRoll{
		TextSize:         20,
		PitchMin:         -5,
		PitchMax:         5,
		PitchScaleWidth:  30,
		PitchScaleMargin: 8,
		PitchColor:       White,
		RollMin:          -45,
		RollMax:          45,
		RollColor:        White,
		ReticleRadius:    10,
		ReticleColor:     Red,
		StrokeWidth:      DefaultStrokeWidth,
	}
}

// Yaw styles the simple heading strip.
type Yaw struct {
	TicksPosition      TickPosition `yaml:"ticksPosition"`
	TextSize           float64      `yaml:"textSize"`
	TicksColor         Color        `yaml:"ticksColor"`
	Yaw                float64      `yaml:"yaw"`
	YawNeedleColor     Color        `yaml:"yawNeedleColor"`
	YawNeedleThickness float64      `yaml:"yawNeedleThickness"`
	StrokeWidth        float64      `yaml:"strokeWidth"`
}

func DefaultYaw() Yaw {
	return Yaw{
		TicksPosition:      Bottom,
		TextSize:           25,
		TicksColor:         White,
		YawNeedleColor:     Red,
		YawNeedleThickness: DefaultStrokeWidth,
		StrokeWidth:        DefaultStrokeWidth,
	}
}

// Scroller styles the simple tape.
type Scroller struct {
	Handedness           Handedness `yaml:"handedness"`
	ArrowHeight          float64    `yaml:"arrowHeight"`
	TicWidth             float64    `yaml:"ticWidth"`
	TextHorizontalMargin float64    `yaml:"textHorizontalMargin"`
	TextVerticalMargin   float64    `yaml:"textVerticalMargin"`
	StrokeColor          Color      `yaml:"strokeColor"`
	TextSize             float64    `yaml:"textSize"`
	ArrowStrokeColor     Color      `yaml:"arrowStrokeColor"`
	ArrowBgColor         Color      `yaml:"arrowBgColor"`
	TargetColor          Color      `yaml:"targetColor"`
	ScrollTo             float64    `yaml:"scrollTo"`
	ScrollToRange        float64    `yaml:"scrollToRange"`
	StrokeWidth          float64    `yaml:"strokeWidth"`
}

func DefaultScroller() Scroller {
	return Scroller{
		Handedness:           Left,
		ArrowHeight:          25,
		TicWidth:             16,
		TextHorizontalMargin: 23,
		TextVerticalMargin:   10,
		StrokeColor:          White,
		TextSize:             25,
		ArrowStrokeColor:     White,
		ArrowBgColor:         Black,
		TargetColor:          Green,
		ScrollTo:             0,
		ScrollToRange:        26,
		StrokeWidth:          DefaultStrokeWidth,
	}
}

// File is the layout of a style document.
type File struct {
	HUD       HUD       `yaml:"hud"`
	PitchRoll PitchRoll `yaml:"pitchRoll"`
	Yaw       Yaw       `yaml:"yaw"`
	Speed     Scroller  `yaml:"speed"`
	Altitude  Scroller  `yaml:"altitude"`
}

// Default returns a document holding every default. The altitude scroller
// is right-handed.
func Default() File {
	alt := DefaultScroller()
	alt.Handedness = Right
	return File{
		HUD:       DefaultHUD(),
		PitchRoll: DefaultPitchRoll(),
		Yaw:       DefaultYaw(),
		Speed:     DefaultScroller(),
		Altitude:  alt,
	}
}

// Parse overlays data onto the defaults.
func Parse(data []byte) (File, error) {
	f := Default()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse style: %w", err)
	}
	return f, nil
}

// Load reads and parses a style document.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read style: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}
