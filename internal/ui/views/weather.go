package views

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"weathergrip/internal/domain"
	"weathergrip/internal/presentation"
)

// EmptyHint is shown in the result panel before any lookup succeeds
const EmptyHint = "Search for a city to see its weather"

// WeatherRenderer draws the result panel
type WeatherRenderer struct {
	styles *Styles
}

// NewWeatherRenderer creates a new weather renderer
func NewWeatherRenderer(styles *Styles) *WeatherRenderer {
	return &WeatherRenderer{styles: styles}
}

// Render draws the snapshot, or a placeholder when there is none, painted
// row by row with the matching gradient
func (w *WeatherRenderer) Render(snap *domain.WeatherSnapshot, width, frame int) string {
	if snap == nil {
		return w.paint(presentation.GradientFor(presentation.GradientNone), width, []string{"", EmptyHint, ""})
	}

	gradient := presentation.GradientFor(presentation.ClassifyBackground(snap.ConditionCode))
	icon := presentation.IconFor(snap.ConditionCode)

	rows := []string{
		"",
		w.styles.City.Render(snap.CityName),
		FormatDescription(snap.ConditionDescription),
		"",
	}
	rows = append(rows, w.renderIcon(icon, gradient, frame)...)
	rows = append(rows,
		"",
		w.styles.Temperature.Render(FormatTemperature(snap.TemperatureCelsius)),
		"",
		fmt.Sprintf("%s    %s", FormatWind(snap.WindSpeed), FormatHumidity(snap.HumidityPercent)),
		"",
	)
	return w.paint(gradient, width, rows)
}

// renderIcon returns two rows so a bouncing icon keeps the panel height
func (w *WeatherRenderer) renderIcon(icon presentation.Icon, gradient presentation.Gradient, frame int) []string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(icon.Glow))
	text := icon.Glyph + "  " + icon.Label

	switch icon.Animation {
	case presentation.AnimationPulse:
		if frame%2 == 0 {
			style = style.Bold(true)
		} else {
			style = style.Faint(true)
		}
	case presentation.AnimationBounce:
		if frame%2 == 1 {
			return []string{"", style.Render(text)}
		}
	case presentation.AnimationFade:
		style = style.Foreground(lipgloss.Color(fadeGlow(icon.Glow, gradient.Via, frame)))
	}
	return []string{style.Render(text), ""}
}

// fadeGlow moves the glow toward the background and back over four frames
func fadeGlow(glow, background string, frame int) string {
	g, err := colorful.Hex(glow)
	if err != nil {
		return glow
	}
	bg, err := colorful.Hex(background)
	if err != nil {
		return glow
	}
	steps := []float64{0, 0.35, 0.7, 0.35}
	return g.BlendRgb(bg, steps[frame%len(steps)]).Clamped().Hex()
}

func (w *WeatherRenderer) paint(gradient presentation.Gradient, width int, rows []string) string {
	fg := TextColor(gradient.IsDark())
	painted := make([]string, len(rows))
	for i, row := range rows {
		t := 0.0
		if len(rows) > 1 {
			t = float64(i) / float64(len(rows)-1)
		}
		painted[i] = lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(fg).
			Background(lipgloss.Color(gradient.At(t))).
			Render(row)
	}
	return strings.Join(painted, "\n")
}

// FormatTemperature rounds half up to whole degrees
func FormatTemperature(celsius float64) string {
	return fmt.Sprintf("%d°C", int(math.Floor(celsius+0.5)))
}

// FormatWind shows the provider value as is
func FormatWind(speed float64) string {
	return "Wind Speed " + strconv.FormatFloat(speed, 'f', -1, 64) + " km/h"
}

func FormatHumidity(percent int) string {
	return fmt.Sprintf("Humidity %d%%", percent)
}

// FormatDescription capitalises each word of the provider description
func FormatDescription(desc string) string {
	return cases.Title(language.English, cases.NoLower).String(desc)
}
