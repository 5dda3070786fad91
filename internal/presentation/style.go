package presentation

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Animation is how an icon moves between frames
type Animation int

const (
	AnimationNone Animation = iota
	AnimationPulse
	AnimationBounce
	AnimationFade
)

// Icon describes how a condition is drawn
type Icon struct {
	Kind      IconKind
	Glyph     string
	Label     string
	Glow      string // hex colour of the glow around the glyph
	Animation Animation
}

var icons = map[IconKind]Icon{
	IconThunderstorm: {Kind: IconThunderstorm, Glyph: "⛈", Label: "Thunderstorm", Glow: "#0000ff", Animation: AnimationPulse},
	IconDrizzle:      {Kind: IconDrizzle, Glyph: "🌦", Label: "Drizzle", Glow: "#add8e6", Animation: AnimationBounce},
	IconRain:         {Kind: IconRain, Glyph: "🌧", Label: "Rain", Glow: "#0000ff", Animation: AnimationPulse},
	IconSnow:         {Kind: IconSnow, Glyph: "❄", Label: "Snow", Glow: "#ffffff", Animation: AnimationPulse},
	IconFog:          {Kind: IconFog, Glyph: "🌫", Label: "Fog", Glow: "#808080", Animation: AnimationFade},
	IconClear:        {Kind: IconClear, Glyph: "☀", Label: "Clear sky", Glow: "#ffff00", Animation: AnimationPulse},
	IconCloudy:       {Kind: IconCloudy, Glyph: "⛅", Label: "Cloudy", Glow: "#ffa500", Animation: AnimationPulse},
	IconUnknown:      {Kind: IconUnknown, Glyph: "☁", Label: "Weather", Glow: "#808080", Animation: AnimationNone},
}

// IconFor returns the icon for a condition code
func IconFor(code int) Icon {
	return icons[ClassifyCondition(code)]
}

// Gradient is a three stop colour ramp
type Gradient struct {
	Kind          GradientKind
	From, Via, To string
}

var gradients = map[GradientKind]Gradient{
	GradientNone:       {Kind: GradientNone, From: "#60a5fa", Via: "#93c5fd", To: "#bfdbfe"},
	GradientStorm:      {Kind: GradientStorm, From: "#111827", Via: "#581c87", To: "#312e81"},
	GradientRain:       {Kind: GradientRain, From: "#2563eb", Via: "#6366f1", To: "#c084fc"},
	GradientSnow:       {Kind: GradientSnow, From: "#dbeafe", Via: "#eff6ff", To: "#ffffff"},
	GradientAtmosphere: {Kind: GradientAtmosphere, From: "#9ca3af", Via: "#d1d5db", To: "#e5e7eb"},
	GradientClear:      {Kind: GradientClear, From: "#facc15", Via: "#fdba74", To: "#93c5fd"},
	GradientCloudy:     {Kind: GradientCloudy, From: "#d1d5db", Via: "#e5e7eb", To: "#bfdbfe"},
}

// GradientFor returns the gradient for a gradient kind
func GradientFor(kind GradientKind) Gradient {
	g, ok := gradients[kind]
	if !ok {
		return gradients[GradientNone]
	}
	return g
}

// At returns the hex colour at position t in [0, 1] along the ramp
func (g Gradient) At(t float64) string {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	from, via, to := mustHex(g.From), mustHex(g.Via), mustHex(g.To)
	var c colorful.Color
	if t <= 0.5 {
		c = from.BlendRgb(via, t*2)
	} else {
		c = via.BlendRgb(to, (t-0.5)*2)
	}
	return c.Clamped().Hex()
}

// IsDark reports whether text on this gradient should be light
func (g Gradient) IsDark() bool {
	_, _, l := mustHex(g.Via).Hsl()
	return l < 0.5
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}
