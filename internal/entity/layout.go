package entity

import (
	"go-castle-defense/internal/component"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/types"
	"go-castle-defense/pkg/utils"
)

// GenerateBoard раскладывает поле: дорога по столбцу RoadColumn сверху вниз,
// по обе стороны полоса земли под башни шириной PlaceRadius, дальше обычная
// земля с редкими кристаллами. Раскладка детерминирована.
func GenerateBoard(board defs.BoardDef) []component.Tile {
	tiles := make([]component.Tile, 0, board.Width*board.Height)
	for x := 0; x < board.Width; x++ {
		for y := 0; y < board.Height; y++ {
			pos := types.Point{X: x, Y: y}
			tiles = append(tiles, tileFor(board, pos))
		}
	}
	return tiles
}

func tileFor(board defs.BoardDef, pos types.Point) component.Tile {
	tile := component.Tile{Position: pos, Biome: board.Biome}
	offset := utils.Abs(pos.X - board.RoadColumn)
	switch {
	case offset == 0:
		tile.Kind = defs.TileRoad
		tile.Variant = "vertical"
	case offset <= board.PlaceRadius:
		tile.Kind = defs.TileLandscape
		tile.TowerPlace = true
	case (pos.X*3+pos.Y*5)%11 == 0:
		tile.Kind = defs.TileDecor
	default:
		tile.Kind = defs.TileLandscape
	}
	return tile
}
