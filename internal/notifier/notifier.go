package notifier

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jlovejo2/Secret-Santa-App-Local/internal/domain"
	"github.com/jlovejo2/Secret-Santa-App-Local/internal/logging"
	"github.com/jlovejo2/Secret-Santa-App-Local/internal/metrics"
)

// Notifier уведомляет дарителей об их получателях.
type Notifier struct {
	mailer  Mailer
	preview io.Writer
	subject string
}

// New создаёт Notifier. mailer может быть nil, если планируются только пробные запуски.
func New(mailer Mailer, preview io.Writer, subject string) *Notifier {
	if preview == nil {
		preview = io.Discard
	}
	return &Notifier{
		mailer:  mailer,
		preview: preview,
		subject: subject,
	}
}

// Notify обходит пары в порядке дарителей и отправляет письма по одному,
// дожидаясь каждой отправки. Ошибка для одного дарителя логируется и не прерывает рассылку.
// В режиме dryRun письма только печатаются, Mailer не вызывается.
func (n *Notifier) Notify(ctx context.Context, assignments []domain.Assignment, dryRun bool) []domain.Delivery {
	deliveries := make([]domain.Delivery, 0, len(assignments))
	for _, a := range assignments {
		d := n.notifyOne(ctx, a, dryRun)
		deliveries = append(deliveries, d)

		logCtx := logging.WithLogParticipant(ctx, a.Giver.ID, a.Giver.Email)
		logCtx = logging.WithLogDeliveryStatus(logCtx, string(d.Status))
		if d.Err != nil {
			slog.ErrorContext(logCtx, "notification failed", "error", d.Err)
		} else {
			slog.InfoContext(logCtx, "notification processed")
		}
		metrics.IncNotifications(string(d.Status))
	}
	return deliveries
}

func (n *Notifier) notifyOne(ctx context.Context, a domain.Assignment, dryRun bool) domain.Delivery {
	msg, err := Compose(n.subject, a)
	if err != nil {
		return failed(a.Giver, err)
	}
	if dryRun {
		if err := n.writePreview(msg); err != nil {
			return failed(a.Giver, err)
		}
		return domain.Delivery{Giver: a.Giver, Status: domain.DeliveryStatusPreviewed}
	}
	if n.mailer == nil {
		return failed(a.Giver, domain.ErrMissingCredentials)
	}
	if err := sendRecovering(ctx, n.mailer, msg); err != nil {
		return failed(a.Giver, err)
	}
	return domain.Delivery{Giver: a.Giver, Status: domain.DeliveryStatusSent}
}

func (n *Notifier) writePreview(msg domain.Message) error {
	_, err := fmt.Fprintf(n.preview, "To: %s <%s>\nSubject: %s\n\n%s\n", msg.ToName, msg.To, msg.Subject, msg.Text)
	if err != nil {
		return fmt.Errorf("write preview: %w", err)
	}
	return nil
}

func failed(giver domain.Participant, err error) domain.Delivery {
	if !errors.Is(err, domain.ErrDelivery) {
		err = fmt.Errorf("%w: %s: %w", domain.ErrDelivery, giver.Email, err)
	}
	return domain.Delivery{Giver: giver, Status: domain.DeliveryStatusFailed, Err: err}
}
