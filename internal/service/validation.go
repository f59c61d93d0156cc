package service

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/jlovejo2/Secret-Santa-App-Local/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateParticipants проверяет список до жеребьёвки:
// не меньше двух участников, заполненные поля, корректный email и уникальные ID.
func ValidateParticipants(participants []domain.Participant) error {
	if len(participants) < 2 {
		return fmt.Errorf("got %d participant(s): %w", len(participants), domain.ErrNotEnoughParticipants)
	}
	for i, p := range participants {
		if err := validate.Struct(p); err != nil {
			return fmt.Errorf("%w: #%d (id %q): %w", domain.ErrInvalidParticipant, i+1, p.ID, err)
		}
	}
	dups := lo.FindDuplicatesBy(participants, func(p domain.Participant) string {
		return p.ID
	})
	if len(dups) > 0 {
		ids := lo.Map(dups, func(p domain.Participant, _ int) string {
			return p.ID
		})
		return fmt.Errorf("%w: %s", domain.ErrDuplicateParticipant, strings.Join(ids, ", "))
	}
	return nil
}
