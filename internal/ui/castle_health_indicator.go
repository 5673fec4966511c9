// internal/ui/castle_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"go-castle-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	healthBarWidth  = 200
	healthBarHeight = 14
	borderWidth     = 1
)

// CastleHealthIndicator — полоса прочности замка с подписью.
type CastleHealthIndicator struct {
	X, Y     float32
	fontFace font.Face
}

func NewCastleHealthIndicator(x, y float32, fontFace font.Face) *CastleHealthIndicator {
	return &CastleHealthIndicator{X: x, Y: y, fontFace: fontFace}
}

// healthColor плавно переходит от зелёного к красному по мере падения прочности.
func healthColor(health, maxHealth int) color.RGBA {
	if maxHealth <= 0 {
		return config.HealthLowColor
	}
	ratio := fillRatio(health, maxHealth)
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*ratio)
	}
	low, full := config.HealthLowColor, config.HealthFullColor
	return color.RGBA{R: lerp(low.R, full.R), G: lerp(low.G, full.G), B: lerp(low.B, full.B), A: 255}
}

func fillRatio(value, max int) float64 {
	if max <= 0 || value <= 0 {
		return 0
	}
	if value >= max {
		return 1
	}
	return float64(value) / float64(max)
}

func (i *CastleHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	vector.StrokeRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, borderWidth, color.White, true)
	fill := float32(float64(healthBarWidth-borderWidth*2) * fillRatio(health, maxHealth))
	if fill > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fill, healthBarHeight-borderWidth*2, healthColor(health, maxHealth), true)
	}

	label := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	bounds := text.BoundString(i.fontFace, label)
	text.Draw(screen, label, i.fontFace, int(i.X)+(healthBarWidth-bounds.Dx())/2, int(i.Y)-4, config.TextLightColor)
}
