// internal/event/types.go
package event

const (
	TowerPlaced   EventType = "TowerPlaced"   // Башня построена, Data: TowerData
	TowerUpgraded EventType = "TowerUpgraded" // Башня улучшена, Data: TowerData
	WaveGenerated EventType = "WaveGenerated" // Волна поставлена в очередь, Data: WaveData
	EnemySpawned  EventType = "EnemySpawned"  // Враг вышел на поле, Data: UnitData
	EnemyKilled   EventType = "EnemyKilled"   // Враг уничтожен, Data: UnitData
	EnemyEscaped  EventType = "EnemyEscaped"  // Враг дошёл до замка, Data: UnitData
	CastleFallen  EventType = "CastleFallen"  // Замок разрушен
)
