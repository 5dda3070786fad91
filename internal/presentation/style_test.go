package presentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIconFor(t *testing.T) {
	assert.Equal(t, "Clear sky", IconFor(800).Label)
	assert.Equal(t, AnimationBounce, IconFor(301).Animation)
	assert.Equal(t, AnimationFade, IconFor(741).Animation)
	assert.Equal(t, AnimationNone, IconFor(404).Animation)
	assert.NotEmpty(t, IconFor(-3).Glyph)
}

func TestGradientEndpoints(t *testing.T) {
	g := GradientFor(GradientClear)
	assert.Equal(t, "#facc15", g.At(0))
	assert.Equal(t, "#fdba74", g.At(0.5))
	assert.Equal(t, "#93c5fd", g.At(1))

	// Out of range positions clamp to the ends
	assert.Equal(t, g.At(0), g.At(-1))
	assert.Equal(t, g.At(1), g.At(2))
}

func TestGradientDarkness(t *testing.T) {
	assert.True(t, GradientFor(GradientStorm).IsDark())
	assert.False(t, GradientFor(GradientSnow).IsDark())
}

func TestUnknownGradientKindFallsBackToNone(t *testing.T) {
	assert.Equal(t, GradientFor(GradientNone), GradientFor(GradientKind(42)))
}
