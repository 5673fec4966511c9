package component

import "go-castle-defense/internal/types"

// AttackEvent — попадание башни по врагу, живёт до ближайшей очистки.
// Нулевое значение означает пустой слот.
type AttackEvent struct {
	Target types.Point
	Source types.Point
	Active bool
}

// Segment — отрезок от башни к цели для отрисовки.
type Segment struct {
	From types.Point
	To   types.Point
}

func (a AttackEvent) Segment() Segment {
	return Segment{From: a.Source, To: a.Target}
}
