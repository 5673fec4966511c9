// internal/types/types.go
package types

import (
	"fmt"
	"math"
)

// EntityID — идентификатор сущности
type EntityID uint64

// Point — целочисленная координата клетки на поле
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Add возвращает сумму координат
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Distance — евклидово расстояние между клетками
func (p Point) Distance(other Point) float64 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Within сообщает, лежит ли точка внутри прямоугольника [0,w)×[0,h)
func (p Point) Within(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
