package defs

import "go-castle-defense/internal/types"

// WaveRules описывает генерацию волн.
type WaveRules struct {
	BaseUnitsPerWave int         `yaml:"base_units_per_wave"` // в волне уровня L ровно Base × L врагов
	FirstLevel       int         `yaml:"first_level"`
	Spawn            types.Point `yaml:"spawn"`
}

// Cadence — периоды подсистем в тиках.
type Cadence struct {
	Fire  uint64 `yaml:"fire"`
	Decay uint64 `yaml:"decay"`
	Wave  uint64 `yaml:"wave"`
	Spawn uint64 `yaml:"spawn"`
}
