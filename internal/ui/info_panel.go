// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"go-castle-defense/internal/app"
	"go-castle-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 110
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 18
	levelRectSize  = 12
	levelRectGap   = 6
)

// InfoPanel shows the selected tower and its upgrade button.
type InfoPanel struct {
	IsVisible     bool
	Target        app.TowerInfo
	UpgradeButton image.Rectangle
	fontFace      font.Face
	currentY      float64
	targetY       float64
}

func NewInfoPanel(fontFace font.Face) *InfoPanel {
	return &InfoPanel{
		fontFace: fontFace,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
}

func (p *InfoPanel) SetTarget(info app.TowerInfo) {
	p.Target = info
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Update двигает панель к целевой позиции.
func (p *InfoPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	switch {
	case math.Abs(diff) < animationSpeed:
		p.currentY = p.targetY
	case diff > 0:
		p.currentY += animationSpeed
	default:
		p.currentY -= animationSpeed
	}
	if p.currentY >= config.ScreenHeight {
		p.IsVisible = false
		p.Target = app.TowerInfo{}
	}
}

// Contains — попадает ли точка в область панели.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && float64(y) > p.currentY
}

// UpgradeClicked — клик пришёлся по кнопке улучшения.
func (p *InfoPanel) UpgradeClicked(x, y int) bool {
	return p.IsVisible && image.Pt(x, y).In(p.UpgradeButton)
}

func (p *InfoPanel) Draw(screen *ebiten.Image) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}
	panel := image.Rect(panelMargin, int(p.currentY)+panelMargin, config.ScreenWidth-panelMargin, int(p.currentY)+panelHeight-panelMargin)

	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panel.Min.X), float32(panel.Min.Y), float32(panel.Dx()), float32(panel.Dy()), bgColor, true)
	vector.StrokeRect(screen, float32(panel.Min.X), float32(panel.Min.Y), float32(panel.Dx()), float32(panel.Dy()), 2, config.UIColorBlue, true)

	if p.Target.ID == 0 {
		return
	}
	x, y := panel.Min.X+15, panel.Min.Y+15+lineHeight/2
	t := p.Target
	text.Draw(screen, fmt.Sprintf("%s tower #%d at %v", t.Kind, t.ID, t.Position), p.fontFace, x, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Range: %d   Damage: %d   Upgrade cost: %d", t.Range, t.Force, t.UpgradeCost), p.fontFace, x, y, config.TextLightColor)
	y += lineHeight / 2

	// уровни квадратиками
	for j := 0; j < t.MaxLevel; j++ {
		rx := float32(x + j*(levelRectSize+levelRectGap))
		vector.StrokeRect(screen, rx, float32(y), levelRectSize, levelRectSize, 1, color.White, true)
		if j < t.Level {
			vector.DrawFilledRect(screen, rx+1, float32(y)+1, levelRectSize-2, levelRectSize-2, config.UIColorBlue, true)
		}
	}

	p.drawUpgradeButton(screen, panel, t.Level < t.MaxLevel)
}

func (p *InfoPanel) drawUpgradeButton(screen *ebiten.Image, panel image.Rectangle, enabled bool) {
	btnWidth, btnHeight := 150, 36
	p.UpgradeButton = image.Rect(panel.Max.X-btnWidth-20, panel.Max.Y-btnHeight-15, panel.Max.X-20, panel.Max.Y-15)

	label := "Upgrade (U)"
	btnColor := color.RGBA{R: 180, G: 140, B: 20, A: 255}
	if !enabled {
		label = "Max level"
		btnColor = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	}
	r := p.UpgradeButton
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(btnWidth), float32(btnHeight), btnColor, true)

	bounds := text.BoundString(p.fontFace, label)
	tx := r.Min.X + (btnWidth-bounds.Dx())/2
	ty := r.Min.Y + (btnHeight-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, label, p.fontFace, tx, ty, color.White)
}
