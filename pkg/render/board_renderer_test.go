package render

import (
	"testing"

	"go-castle-defense/internal/types"
)

func TestScreenToCell(t *testing.T) {
	r := NewBoardRenderer(10, 10, 64, 80, 100, nil, &BoardColors{})
	tests := []struct {
		name string
		x, y int
		want types.Point
		ok   bool
	}{
		{"origin", 80, 100, types.Point{X: 0, Y: 0}, true},
		{"inside", 80 + 64*3 + 10, 100 + 64*7 + 63, types.Point{X: 3, Y: 7}, true},
		{"left of board", 79, 120, types.Point{}, false},
		{"below board", 100, 100 + 64*10, types.Point{X: 0, Y: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.ScreenToCell(tt.x, tt.y)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("ScreenToCell(%d,%d): expected %v/%v, got %v/%v", tt.x, tt.y, tt.want, tt.ok, got, ok)
			}
		})
	}
}

func TestCellCenter(t *testing.T) {
	r := NewBoardRenderer(10, 10, 64, 80, 100, nil, &BoardColors{})
	x, y := r.CellCenter(types.Point{X: 1, Y: 2})
	if x != 80+96 || y != 100+160 {
		t.Errorf("expected (176,260), got (%v,%v)", x, y)
	}
}

func TestPaletteLookup(t *testing.T) {
	c := &BoardColors{}
	c.RoadColor.R = 1
	c.PlaceColor.R = 2
	c.WizardColor.R = 3
	c.EnemyColor.R = 4
	if c.TileColor("road_winter_vertical").R != 1 || c.TileColor("building_place_sand").R != 2 {
		t.Error("tile palette lookup failed")
	}
	if c.SpriteColor("wizard_2").R != 3 || c.SpriteColor("ufo_7").R != 4 {
		t.Error("sprite palette lookup failed")
	}
}
