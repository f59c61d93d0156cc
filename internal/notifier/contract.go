package notifier

import (
	"context"

	"github.com/jlovejo2/Secret-Santa-App-Local/internal/domain"
)

//go:generate mockgen -source=contract.go -destination=mocks/mailer_mock.go -package=mocks

// Mailer отправляет одно письмо через внешний почтовый сервис.
type Mailer interface {
	Send(ctx context.Context, msg domain.Message) error
}
