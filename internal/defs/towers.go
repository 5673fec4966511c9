// internal/defs/towers.go
package defs

// TowerStats — коэффициенты, из которых выводятся параметры башни по уровню.
type TowerStats struct {
	RangePerLevel  int `yaml:"range_per_level"`
	DamagePerLevel int `yaml:"damage_per_level"`
	CostPerLevel   int `yaml:"cost_per_level"`
	MaxLevel       int `yaml:"max_level"`
}

// DefaultTowerStats: 10/20/30 клеток, 20/40/60 урона, 50/100/150 монет.
func DefaultTowerStats() TowerStats {
	return TowerStats{
		RangePerLevel:  10,
		DamagePerLevel: 20,
		CostPerLevel:   50,
		MaxLevel:       3,
	}
}
