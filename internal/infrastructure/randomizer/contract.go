package randomizer

// Randomizer предоставляет абстракцию для перемешивания.
// Позволяет подменять источник случайности в тестах.
type Randomizer interface {
	Shuffle(n int, swap func(i, j int))
}
