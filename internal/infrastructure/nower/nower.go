package nower

import "time"

type nowerImpl struct{}

// New создаёт реализацию на базе системных часов.
func New() Nower {
	return &nowerImpl{}
}

// Now возвращает текущее системное время.
func (n *nowerImpl) Now() time.Time {
	return time.Now()
}

type fixedNower struct {
	at time.Time
}

// Fixed возвращает часы, всегда показывающие один и тот же момент.
func Fixed(at time.Time) Nower {
	return fixedNower{at: at}
}

func (f fixedNower) Now() time.Time {
	return f.at
}
