// pkg/render/color.go
package render

import (
	"image/color"
	"strings"
)

// BoardColors holds the palette used by the board renderer.
type BoardColors struct {
	BackgroundColor color.RGBA
	LandscapeColor  color.RGBA
	PlaceColor      color.RGBA
	RoadColor       color.RGBA
	DecorColor      color.RGBA
	CastleColor     color.RGBA
	GridColor       color.RGBA
	EnemyColor      color.RGBA
	WarriorColor    color.RGBA
	ArcherColor     color.RGBA
	WizardColor     color.RGBA
	AttackColor     color.RGBA
	CursorColor     color.RGBA
	TextColor       color.RGBA
	StrokeWidth     float32
	AttackWidth     float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// TileColor подбирает цвет клетки по её символьному спрайту.
func (c *BoardColors) TileColor(visual string) color.RGBA {
	switch {
	case strings.HasPrefix(visual, "road_"):
		return c.RoadColor
	case strings.HasPrefix(visual, "crystal"):
		return c.DecorColor
	case strings.HasPrefix(visual, "building_place"):
		return c.PlaceColor
	default:
		return c.LandscapeColor
	}
}

// SpriteColor — цвет юнита или башни по спрайту.
func (c *BoardColors) SpriteColor(visual string) color.RGBA {
	switch {
	case strings.HasPrefix(visual, "warrior"):
		return c.WarriorColor
	case strings.HasPrefix(visual, "archer"):
		return c.ArcherColor
	case strings.HasPrefix(visual, "wizard"):
		return c.WizardColor
	default:
		return c.EnemyColor
	}
}
