package entity

// WaveQueue — FIFO уровней врагов, ожидающих выхода на поле.
type WaveQueue struct {
	levels []int
}

func NewWaveQueue() *WaveQueue {
	return &WaveQueue{}
}

// Push добавляет уровни в конец очереди в переданном порядке.
func (q *WaveQueue) Push(levels ...int) {
	q.levels = append(q.levels, levels...)
}

// Pop извлекает самый старый уровень. ok == false, если очередь пуста.
func (q *WaveQueue) Pop() (level int, ok bool) {
	if len(q.levels) == 0 {
		return 0, false
	}
	level = q.levels[0]
	q.levels[0] = 0
	q.levels = q.levels[1:]
	if len(q.levels) == 0 {
		q.levels = nil
	}
	return level, true
}

func (q *WaveQueue) Len() int {
	return len(q.levels)
}

// Pending возвращает копию ожидающих уровней.
func (q *WaveQueue) Pending() []int {
	out := make([]int, len(q.levels))
	copy(out, q.levels)
	return out
}
