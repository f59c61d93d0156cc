package domain

import "errors"

// Доменные ошибки жеребьёвки.
// Преобразуются в коды завершения в cmd/santa.
var (
	ErrNotEnoughParticipants = errors.New("at least two participants required")            // Участников меньше двух.
	ErrInvalidParticipant    = errors.New("invalid participant")                           // Участник не прошёл валидацию.
	ErrDuplicateParticipant  = errors.New("duplicate participant id")                      // ID участника встречается больше одного раза.
	ErrMissingCredentials    = errors.New("mail credentials are not configured")           // Нет учётных данных почты в боевом режиме.
	ErrUnsatisfiable         = errors.New("no valid assignment satisfies the constraints") // Ограничения не позволяют составить пары.
	ErrAttemptLimit          = errors.New("attempt limit reached")                         // Допустимые пары не найдены за отведённое число попыток.
	ErrDelivery              = errors.New("notification delivery failed")                  // Не удалось отправить письмо конкретному дарителю.
)
