package defs

import "testing"

func TestUnitVisual(t *testing.T) {
	cases := []struct {
		kind  UnitKind
		level int
		want  VisualID
	}{
		{UnitUFO, 1, "ufo_1"},
		{UnitUFO, 7, "ufo_7"},
		{UnitUFO, 12, "ufo_7"},
		{UnitUFO, 0, "ufo_1"},
		{UnitWarrior, 2, "warrior_2"},
		{UnitWarrior, 5, "warrior_3"},
	}
	for _, c := range cases {
		if got := UnitVisual(c.kind, c.level); got != c.want {
			t.Errorf("UnitVisual(%s, %d): expected %s, got %s", c.kind, c.level, c.want, got)
		}
	}
}

func TestTowerVisual(t *testing.T) {
	if got := TowerVisual(TowerWizard, 2); got != "wizard_2" {
		t.Errorf("expected wizard_2, got %s", got)
	}
	if got := TowerVisual(TowerArcher, 9); got != "archer_3" {
		t.Errorf("expected archer_3, got %s", got)
	}
}

func TestTileVisual(t *testing.T) {
	cases := []struct {
		kind       TileKind
		biome      Biome
		variant    string
		towerPlace bool
		want       VisualID
	}{
		{TileRoad, BiomeDesert, "vertical", false, "road_desert_vertical"},
		{TileLandscape, BiomeWinter, "", true, "building_place_snow"},
		{TileLandscape, BiomeSpring, "", false, "grass"},
		{TileDecor, BiomeSpring, "", false, "crystal_1"},
	}
	for _, c := range cases {
		if got := TileVisual(c.kind, c.biome, c.variant, c.towerPlace); got != c.want {
			t.Errorf("TileVisual(%s,%s): expected %s, got %s", c.kind, c.biome, c.want, got)
		}
	}
}

func TestKindsAndDirections(t *testing.T) {
	if !TowerArcher.Valid() || TowerKind("cannon").Valid() {
		t.Error("tower kind validation broken")
	}
	if DirectionOf(UnitUFO) != TowardObjective || DirectionOf(UnitWarrior) != AwayFromObjective {
		t.Error("unexpected unit directions")
	}
}
