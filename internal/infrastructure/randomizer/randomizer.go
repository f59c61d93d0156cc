package randomizer

import (
	"math/rand"
	"time"
)

type randomizerImpl struct {
	rnd *rand.Rand
}

// New создаёт randomizer, засеянный текущим временем.
// Жеребьёвка выполняется в одной горутине, поэтому генератор не защищается мьютексом.
func New() Randomizer {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed создаёт детерминированный randomizer для воспроизводимых прогонов.
func NewWithSeed(seed int64) Randomizer {
	return &randomizerImpl{
		rnd: rand.New(rand.NewSource(seed)), // #nosec G404
	}
}

// Shuffle перемешивает элементы алгоритмом Fisher-Yates: все n! перестановок равновероятны.
func (r *randomizerImpl) Shuffle(n int, swap func(i, j int)) {
	if n <= 1 {
		return
	}
	r.rnd.Shuffle(n, swap)
}
