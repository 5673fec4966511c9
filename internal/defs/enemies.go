// internal/defs/enemies.go
package defs

// UnitStats holds the static data shared by every spawned unit.
type UnitStats struct {
	BaseHealth    int `yaml:"base_health"`
	ForcePerLevel int `yaml:"force_per_level"`
	MaxLevel      int `yaml:"max_level"` // верхний уровень UFO, он же модуль для нижней границы волны
}
