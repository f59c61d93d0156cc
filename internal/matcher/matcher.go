package matcher

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/jlovejo2/Secret-Santa-App-Local/internal/domain"
	"github.com/jlovejo2/Secret-Santa-App-Local/internal/infrastructure/randomizer"
)

// DefaultMaxAttempts ограничивает число перетасовок, если в Options не задано иное.
// Две группы по 8 человек принимаются в среднем за 12870 попыток.
const DefaultMaxAttempts = 1_000_000

// Options задаёт ограничения жеребьёвки.
type Options struct {
	EnforceGroups bool // запрещает пары внутри одной группы
	MaxAttempts   int
}

// Result содержит принятый набор пар и число потраченных попыток.
type Result struct {
	Assignments []domain.Assignment
	Attempts    int
}

// Matcher составляет пары даритель -> получатель методом выборки с отклонением.
type Matcher struct {
	randomizer randomizer.Randomizer
}

func New(randomizer randomizer.Randomizer) *Matcher {
	return &Matcher{randomizer: randomizer}
}

// Match фиксирует порядок дарителей и перетасовывает список получателей целиком,
// пока не найдётся перестановка без нарушений. Нарушение в любой позиции отбрасывает
// всю перестановку, частичные исправления не делаются.
func (m *Matcher) Match(participants []domain.Participant, opts Options) (Result, error) {
	n := len(participants)
	if n < 2 {
		return Result{}, fmt.Errorf("match %d participant(s): %w", n, domain.ErrNotEnoughParticipants)
	}
	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if opts.EnforceGroups {
		if group, size, ok := oversizedGroup(participants); ok {
			return Result{}, fmt.Errorf("group %q holds %d of %d participants: %w", group, size, n, domain.ErrUnsatisfiable)
		}
	}

	receivers := make([]domain.Participant, n)
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		copy(receivers, participants)
		m.randomizer.Shuffle(n, func(i, j int) {
			receivers[i], receivers[j] = receivers[j], receivers[i]
		})
		if !acceptable(participants, receivers, opts.EnforceGroups) {
			continue
		}
		assignments := make([]domain.Assignment, n)
		for i := range participants {
			assignments[i] = domain.Assignment{Giver: participants[i], Receiver: receivers[i]}
		}
		return Result{Assignments: assignments, Attempts: attempt}, nil
	}
	// Проверка групп точная: сюда попадаем только при слишком низком пороге.
	return Result{Attempts: maxAttempts}, fmt.Errorf("no clean shuffle in %d attempts, raise matcher.max_attempts: %w", maxAttempts, domain.ErrAttemptLimit)
}

func acceptable(givers, receivers []domain.Participant, enforceGroups bool) bool {
	for i := range givers {
		if givers[i].ID == receivers[i].ID {
			return false
		}
		if enforceGroups && givers[i].SameGroup(receivers[i]) {
			return false
		}
	}
	return true
}

// oversizedGroup ищет группу, в которой больше половины участников.
// Её членам не хватит получателей вне группы, и допустимых пар не существует.
// Если такой группы нет, допустимые пары есть всегда.
func oversizedGroup(participants []domain.Participant) (string, int, bool) {
	sizes := lo.CountValuesBy(participants, func(p domain.Participant) string {
		return p.Group
	})
	for group, size := range sizes {
		if group == "" {
			continue
		}
		if 2*size > len(participants) {
			return group, size, true
		}
	}
	return "", 0, false
}
