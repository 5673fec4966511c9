// internal/config/colors.go
package config

import "image/color"

// Раскладка окна
const (
	CellSize     = 64  // пикселей на клетку поля
	BoardOffsetX = 80  // левый верхний угол поля
	BoardOffsetY = 100
	StrokeWidth  = 1.0
	AttackWidth  = 3.0

	IndicatorOffsetX = 40
	IndicatorRadius  = 12
	ClickCooldown    = 150 // мс
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	LandscapeColor  = color.RGBA{70, 120, 70, 255}
	PlaceColor      = color.RGBA{90, 150, 90, 255}
	RoadColor       = color.RGBA{120, 110, 90, 255}
	DecorColor      = color.RGBA{110, 200, 220, 255}
	CastleColor     = color.RGBA{200, 170, 60, 255}
	GridColor       = color.RGBA{20, 20, 30, 120}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}

	EnemyColor   = color.RGBA{220, 60, 60, 255}
	WarriorColor = color.RGBA{70, 130, 220, 255}
	ArcherColor  = color.RGBA{240, 240, 240, 255}
	WizardColor  = color.RGBA{170, 90, 220, 255}
	AttackColor  = color.RGBA{255, 255, 0, 200}
	CursorColor  = color.RGBA{255, 255, 255, 160}

	RunningStateColor = color.RGBA{70, 130, 180, 220}
	PausedStateColor  = color.RGBA{220, 180, 60, 220}
	LostStateColor    = color.RGBA{220, 60, 60, 220}

	UIColorBlue     = color.RGBA{70, 130, 180, 255}
	BossWaveColor   = color.RGBA{220, 60, 60, 255}
	HealthFullColor = color.RGBA{50, 205, 50, 255}
	HealthLowColor  = color.RGBA{220, 60, 60, 255}

	SpeedButtonColors = []color.Color{
		color.RGBA{100, 200, 100, 255},
		color.RGBA{220, 180, 60, 255},
		color.RGBA{220, 60, 60, 255},
	}
)
