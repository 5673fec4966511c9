package system

// Phase задаёт порядок проходов внутри одного тика.
type Phase int

const (
	PhaseMove  Phase = iota // 0: движение юнитов
	PhaseFire               // 1: стрельба башен
	PhaseDecay              // 2: очистка линий атак
	PhaseWave               // 3: генерация волны
	PhaseSpawn              // 4: выпуск врага из очереди
	PhaseSweep              // 5: удаление мёртвых и ушедших за край
)

// System — один проход тика. tick — номер текущего тика.
type System interface {
	Phase() Phase
	Update(tick uint64)
}
