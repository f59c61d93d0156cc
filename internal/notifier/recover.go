package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/jlovejo2/Secret-Santa-App-Local/internal/domain"
)

// sendRecovering вызывает Mailer и превращает панику внутри почтового клиента
// в обычную ошибку доставки для одного дарителя.
func sendRecovering(ctx context.Context, mailer Mailer, msg domain.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(
				ctx,
				"Перехвачена паника при отправке письма",
				"to", msg.To,
				"error", r,
				"stack_trace", string(debug.Stack()),
			)
			err = fmt.Errorf("mailer panic: %v", r)
		}
	}()
	return mailer.Send(ctx, msg)
}
