// Package termview draws session snapshots on a terminal screen.
package termview

import (
	"fmt"
	"strings"

	"go-castle-defense/internal/app"
	"go-castle-defense/internal/types"

	"github.com/gdamore/tcell/v2"
)

// CellWidth — клетка поля занимает две колонки терминала.
const CellWidth = 2

var (
	styleLandscape = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	stylePlace     = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	styleRoad      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleDecor     = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleCastle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleEnemy     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleWarrior   = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleTower     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHUD       = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleLost      = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// View renders snapshots onto a tcell screen.
type View struct {
	screen tcell.Screen
}

func NewView(screen tcell.Screen) *View {
	return &View{screen: screen}
}

// Draw clears the screen and draws the board, units, attacks and HUD.
// cursor == nil — курсор не рисуется.
func (v *View) Draw(snap app.Snapshot, cursor *types.Point, message string) {
	v.screen.Clear()

	for _, tile := range snap.Tiles {
		glyph, style := tileGlyph(string(tile.Visual))
		v.putCell(tile.Position, glyph, ' ', style)
	}
	v.putCell(snap.Castle.Position, 'C', ' ', styleCastle)

	for _, tower := range snap.Towers {
		v.putCell(tower.Position, unitGlyph(string(tower.Visual)), levelRune(tower.Level), styleTower)
	}
	for _, enemy := range snap.Enemies {
		style := styleEnemy
		if strings.HasPrefix(string(enemy.Visual), "warrior") {
			style = styleWarrior
		}
		v.putCell(enemy.Position, unitGlyph(string(enemy.Visual)), levelRune(enemy.Level), style)
	}
	for _, seg := range snap.Attacks {
		v.highlight(seg.To, tcell.AttrReverse)
	}
	if cursor != nil {
		v.highlight(*cursor, tcell.AttrUnderline)
	}

	row := snap.Height + 1
	hud := fmt.Sprintf("tick %d  wave %d  pending %d  enemies %d  castle %d/%d",
		snap.Tick, snap.WaveLevel, snap.Pending, len(snap.Enemies), snap.Castle.Health, snap.Castle.MaxHealth)
	v.putString(0, row, hud, styleHUD)
	if snap.Castle.Health == 0 {
		v.putString(0, row+1, "THE CASTLE HAS FALLEN", styleLost)
	} else if message != "" {
		v.putString(0, row+1, message, styleHUD)
	}
	v.screen.Show()
}

func (v *View) putCell(p types.Point, glyph, suffix rune, style tcell.Style) {
	v.screen.SetContent(p.X*CellWidth, p.Y, glyph, nil, style)
	v.screen.SetContent(p.X*CellWidth+1, p.Y, suffix, nil, style)
}

func (v *View) highlight(p types.Point, attr tcell.AttrMask) {
	for dx := 0; dx < CellWidth; dx++ {
		x := p.X*CellWidth + dx
		r, comb, style, _ := v.screen.GetContent(x, p.Y)
		v.screen.SetContent(x, p.Y, r, comb, style.Attributes(attr))
	}
}

func (v *View) putString(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func tileGlyph(visual string) (rune, tcell.Style) {
	switch {
	case strings.HasPrefix(visual, "road_"):
		return '|', styleRoad
	case strings.HasPrefix(visual, "crystal"):
		return '*', styleDecor
	case strings.HasPrefix(visual, "building_place"):
		return '.', stylePlace
	default:
		return ' ', styleLandscape
	}
}

func unitGlyph(visual string) rune {
	switch {
	case strings.HasPrefix(visual, "ufo"):
		return 'U'
	case strings.HasPrefix(visual, "warrior"):
		return 'w'
	case strings.HasPrefix(visual, "archer"):
		return 'A'
	case strings.HasPrefix(visual, "wizard"):
		return 'W'
	}
	return '?'
}

func levelRune(level int) rune {
	if level < 1 {
		return ' '
	}
	if level > 9 {
		return '+'
	}
	return rune('0' + level)
}
