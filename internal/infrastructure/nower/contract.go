package nower

import "time"

// Nower предоставляет абстракцию для получения текущего времени.
// Используется для даты письма и метки времени запуска.
type Nower interface {
	Now() time.Time
}
