package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"github.com/jlovejo2/Secret-Santa-App-Local/internal/config"
	"github.com/jlovejo2/Secret-Santa-App-Local/internal/domain"
	"github.com/jlovejo2/Secret-Santa-App-Local/internal/logging"
	"github.com/jlovejo2/Secret-Santa-App-Local/internal/matcher"
	"github.com/jlovejo2/Secret-Santa-App-Local/internal/metrics"
)

// Matcher описывает жеребьёвку, которая требуется сервису.
type Matcher interface {
	Match(participants []domain.Participant, opts matcher.Options) (matcher.Result, error)
}

// Notifier описывает рассылку уведомлений.
type Notifier interface {
	Notify(ctx context.Context, assignments []domain.Assignment, dryRun bool) []domain.Delivery
}

// RunOptions задаёт режимы одного запуска.
type RunOptions struct {
	DryRun        bool
	EnforceGroups bool
}

// RunResult содержит итог запуска.
type RunResult struct {
	Attempts   int
	Deliveries []domain.Delivery
}

// Failed возвращает неудавшиеся доставки.
func (r RunResult) Failed() []domain.Delivery {
	return lo.Filter(r.Deliveries, func(d domain.Delivery, _ int) bool {
		return d.Status == domain.DeliveryStatusFailed
	})
}

// Service агрегирует бизнес-логику жеребьёвки.
type Service struct {
	matcher  Matcher
	notifier Notifier
	cfg      config.Config
}

func New(matcher Matcher, notifier Notifier, cfg config.Config) *Service {
	return &Service{
		matcher:  matcher,
		notifier: notifier,
		cfg:      cfg,
	}
}

// Run проверяет участников, проводит жеребьёвку и только после неё рассылает уведомления.
// Неудачная жеребьёвка фатальна, ошибки отдельных доставок нет.
func (s *Service) Run(ctx context.Context, participants []domain.Participant, opts RunOptions) (RunResult, error) {
	ctx = logging.WithLogParticipantCount(ctx, len(participants))
	ctx = logging.WithLogRunMode(ctx, opts.DryRun, opts.EnforceGroups)

	if err := ValidateParticipants(participants); err != nil {
		return RunResult{}, logging.WrapError(ctx, err)
	}

	res, err := s.matcher.Match(participants, matcher.Options{
		EnforceGroups: opts.EnforceGroups,
		MaxAttempts:   s.cfg.Matcher.MaxAttempts,
	})
	metrics.AddDrawAttempts(res.Attempts)
	metrics.IncDraws(err == nil)
	ctx = logging.WithLogAttempts(ctx, res.Attempts)
	if err != nil {
		return RunResult{Attempts: res.Attempts}, logging.WrapError(ctx, fmt.Errorf("draw: %w", err))
	}
	slog.InfoContext(ctx, "draw completed")

	result := RunResult{
		Attempts:   res.Attempts,
		Deliveries: s.notifier.Notify(ctx, res.Assignments, opts.DryRun),
	}
	if failed := result.Failed(); len(failed) > 0 {
		slog.WarnContext(ctx, "some notifications were not delivered", "failed", len(failed), "total", len(result.Deliveries))
	} else {
		slog.InfoContext(ctx, "all notifications processed", "total", len(result.Deliveries))
	}
	return result, nil
}
