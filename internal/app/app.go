package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"

	"github.com/jlovejo2/Secret-Santa-App-Local/internal/config"
	"github.com/jlovejo2/Secret-Santa-App-Local/internal/infrastructure/nower"
	"github.com/jlovejo2/Secret-Santa-App-Local/internal/infrastructure/randomizer"
	"github.com/jlovejo2/Secret-Santa-App-Local/internal/logging"
	"github.com/jlovejo2/Secret-Santa-App-Local/internal/mailer"
	"github.com/jlovejo2/Secret-Santa-App-Local/internal/matcher"
	"github.com/jlovejo2/Secret-Santa-App-Local/internal/metrics"
	"github.com/jlovejo2/Secret-Santa-App-Local/internal/notifier"
	"github.com/jlovejo2/Secret-Santa-App-Local/internal/service"
)

// Options описывает флаги командной строки, влияющие на запуск.
type Options struct {
	DryRun        bool
	EnforceGroups bool
	Seed          *int64 // nil означает засев текущим временем
}

// App отвечает за один запуск жеребьёвки.
type App struct {
	cfg   config.Config
	opts  Options
	svc   *service.Service
	out   io.Writer
	nower nower.Nower
	runID string
}

// New подготавливает зависимости: randomizer, почтовый клиент (только для боевого режима), сервис.
// Идентификатор запуска выдаётся здесь, чтобы ошибки инициализации уже несли его в логах.
func New(ctx context.Context, cfg config.Config, opts Options, out io.Writer) (*App, error) {
	runID := uuid.NewString()
	ctx = logging.WithLogRunMode(logging.WithLogRunID(ctx, runID), opts.DryRun, opts.EnforceGroups)
	if out == nil {
		out = io.Discard
	}
	nowerImpl := nower.New()

	var randomizerImpl randomizer.Randomizer
	if opts.Seed != nil {
		randomizerImpl = randomizer.NewWithSeed(*opts.Seed)
	} else {
		randomizerImpl = randomizer.New()
	}

	// В пробном режиме учётные данные не нужны, клиент не создаётся
	var mailerImpl notifier.Mailer
	if !opts.DryRun {
		smtp, err := mailer.New(cfg.Mail, nowerImpl)
		if err != nil {
			return nil, logging.WrapError(ctx, fmt.Errorf("mailer: %w", err))
		}
		mailerImpl = smtp
	}

	svc := service.New(
		matcher.New(randomizerImpl),
		notifier.New(mailerImpl, out, cfg.Mail.Subject),
		cfg,
	)

	return &App{
		cfg:   cfg,
		opts:  opts,
		svc:   svc,
		out:   out,
		nower: nowerImpl,
		runID: runID,
	}, nil
}

// Run проводит жеребьёвку, печатает сводку и выгружает метрики.
func (a *App) Run(ctx context.Context) error {
	ctx = logging.WithLogRunID(ctx, a.runID)
	metrics.SetLastRun(a.nower.Now())
	slog.InfoContext(ctx, "secret santa run started", "dry_run", a.opts.DryRun, "groups", a.opts.EnforceGroups)

	res, err := a.svc.Run(ctx, a.cfg.Participants, service.RunOptions{
		DryRun:        a.opts.DryRun,
		EnforceGroups: a.opts.EnforceGroups,
	})
	if err == nil {
		a.printSummary(res)
	}

	if mErr := metrics.WriteTextfile(a.cfg.Metrics.TextfilePath, nil); mErr != nil {
		slog.WarnContext(ctx, "failed to export metrics", "path", a.cfg.Metrics.TextfilePath, "error", mErr)
	}
	return err
}

// RunID возвращает идентификатор запуска, под которым пишутся логи.
func (a *App) RunID() string {
	return a.runID
}

// printSummary выводит таблицу исходов по дарителям. Получатели не печатаются.
func (a *App) printSummary(res service.RunResult) {
	table := tablewriter.NewWriter(a.out)
	table.SetHeader([]string{"Giver", "Email", "Status", "Error"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, d := range res.Deliveries {
		var errText string
		if d.Err != nil {
			errText = d.Err.Error()
		}
		table.Append([]string{d.Giver.Name, d.Giver.Email, string(d.Status), errText})
	}
	table.SetFooter([]string{"", "", fmt.Sprintf("attempts: %d", res.Attempts), fmt.Sprintf("failed: %d", len(res.Failed()))})
	table.Render()
}
