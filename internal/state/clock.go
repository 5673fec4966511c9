package state

import "time"

// Clock копит время кадров и отдаёт его целыми тиками симуляции.
// Частота кадров ebiten и период тика не связаны.
type Clock struct {
	interval float64
	acc      float64
}

func NewClock(interval time.Duration) *Clock {
	return &Clock{interval: interval.Seconds()}
}

// Advance добавляет deltaTime секунд и возвращает число тиков, которые пора выполнить.
func (c *Clock) Advance(deltaTime float64) int {
	if deltaTime <= 0 || c.interval <= 0 {
		return 0
	}
	c.acc += deltaTime
	n := int(c.acc / c.interval)
	c.acc -= float64(n) * c.interval
	return n
}

// Reset сбрасывает накопленное время, например после паузы.
func (c *Clock) Reset() {
	c.acc = 0
}
