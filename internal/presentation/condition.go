// Package presentation maps provider condition codes to the icon and
// background gradient shown for a weather snapshot.
//
// The icon bands and the background bands do not line up: drizzle and rain
// share one background, and codes in 400-499 get the generic icon but the
// cloudy background.
package presentation

// IconKind is the icon family chosen for a condition code
type IconKind int

const (
	IconUnknown IconKind = iota
	IconThunderstorm
	IconDrizzle
	IconRain
	IconSnow
	IconFog
	IconClear
	IconCloudy
)

func (k IconKind) String() string {
	switch k {
	case IconThunderstorm:
		return "thunderstorm"
	case IconDrizzle:
		return "drizzle"
	case IconRain:
		return "rain"
	case IconSnow:
		return "snow"
	case IconFog:
		return "fog"
	case IconClear:
		return "clear"
	case IconCloudy:
		return "cloudy"
	default:
		return "unknown"
	}
}

// ClassifyCondition returns the icon kind for a condition code
func ClassifyCondition(code int) IconKind {
	switch {
	case code >= 200 && code < 300:
		return IconThunderstorm
	case code >= 300 && code < 400:
		return IconDrizzle
	case code >= 500 && code < 600:
		return IconRain
	case code >= 600 && code < 700:
		return IconSnow
	case code >= 700 && code < 800:
		return IconFog
	case code == 800:
		return IconClear
	case code > 800:
		return IconCloudy
	default:
		return IconUnknown
	}
}

// GradientKind is the background gradient family
type GradientKind int

const (
	// GradientNone is used when there is no snapshot to show
	GradientNone GradientKind = iota
	GradientStorm
	GradientRain
	GradientSnow
	GradientAtmosphere
	GradientClear
	GradientCloudy
)

func (k GradientKind) String() string {
	switch k {
	case GradientStorm:
		return "storm"
	case GradientRain:
		return "rain"
	case GradientSnow:
		return "snow"
	case GradientAtmosphere:
		return "atmosphere"
	case GradientClear:
		return "clear"
	case GradientCloudy:
		return "cloudy"
	default:
		return "none"
	}
}

// ClassifyBackground returns the gradient kind for a condition code.
// Everything outside the named bands, including codes above 800, is cloudy.
func ClassifyBackground(code int) GradientKind {
	switch {
	case code >= 200 && code < 300:
		return GradientStorm
	case code >= 300 && code < 600:
		return GradientRain
	case code >= 600 && code < 700:
		return GradientSnow
	case code >= 700 && code < 800:
		return GradientAtmosphere
	case code == 800:
		return GradientClear
	default:
		return GradientCloudy
	}
}
