package app

import "errors"

var (
	// ErrInvalidPlacement — башню нельзя поставить: клетка не под застройку, занята или параметры неверны.
	ErrInvalidPlacement = errors.New("invalid tower placement")
	// ErrUnknownEntity — нет башни с таким идентификатором.
	ErrUnknownEntity = errors.New("unknown entity")
	// ErrMaxLevel — башня уже максимального уровня.
	ErrMaxLevel = errors.New("tower already at max level")
)
