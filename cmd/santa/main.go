package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/jlovejo2/Secret-Santa-App-Local/internal/app"
	"github.com/jlovejo2/Secret-Santa-App-Local/internal/config"
	"github.com/jlovejo2/Secret-Santa-App-Local/internal/domain"
	"github.com/jlovejo2/Secret-Santa-App-Local/internal/logging"
)

const (
	exitOK            = 0
	exitFailure       = 1
	exitUsage         = 2
	exitConfig        = 3
	exitUnsatisfiable = 4
	exitAttemptLimit  = 5
)

const usage = `Usage: santa [flags]

Draws Secret Santa pairs from the configured participants and emails every giver
the name of their recipient.

Flags:
  -d, --dry-run        print the notifications instead of sending them
  -g, --groups         never pair participants from the same group
  -c, --config PATH    config file (default $CONFIG_PATH or config/config.yaml)
      --env-file PATH  file with SANTA_MAIL_USERNAME / SANTA_MAIL_APP_PASSWORD (default .env)
      --seed N         seed the shuffle for a reproducible draw
  -h, --help           show this help

Exit codes: 0 done, 1 failure, 2 usage, 3 config, 4 groups cannot be satisfied,
5 attempt limit reached (raise matcher.max_attempts).
`

type cliFlags struct {
	dryRun     bool
	groups     bool
	configPath string
	envFile    string
	seed       int64
	seedSet    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprint(stdout, usage)
		return exitOK
	}
	if err != nil {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	if err := loadEnvFile(flags.envFile); err != nil {
		fmt.Fprintf(stderr, "failed to load env file: %v\n", err)
		return exitConfig
	}
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return exitConfig
	}
	cleanup := setupLogger(cfg)
	defer cleanup()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{DryRun: flags.dryRun, EnforceGroups: flags.groups}
	if flags.seedSet {
		opts.Seed = &flags.seed
	}
	application, err := app.New(ctx, cfg, opts, stdout)
	if err != nil {
		slog.ErrorContext(logging.ErrorCtx(ctx, err), "failed to init app", "error", err)
		return exitCode(err)
	}
	ctx = logging.WithLogRunID(ctx, application.RunID())
	if err := application.Run(ctx); err != nil {
		slog.ErrorContext(logging.ErrorCtx(ctx, err), "secret santa run failed", "error", err)
		return exitCode(err)
	}
	return exitOK
}

// parseFlags разбирает короткие и длинные варианты флагов.
func parseFlags(args []string, stderr io.Writer) (cliFlags, error) {
	var f cliFlags
	fs := flag.NewFlagSet("santa", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {}

	fs.BoolVar(&f.dryRun, "d", false, "")
	fs.BoolVar(&f.dryRun, "dry-run", false, "")
	fs.BoolVar(&f.groups, "g", false, "")
	fs.BoolVar(&f.groups, "groups", false, "")
	fs.StringVar(&f.configPath, "c", "", "")
	fs.StringVar(&f.configPath, "config", "", "")
	fs.StringVar(&f.envFile, "env-file", ".env", "")
	fs.Int64Var(&f.seed, "seed", 0, "")

	if err := fs.Parse(args); err != nil {
		return cliFlags{}, err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		return cliFlags{}, errors.New("unexpected arguments")
	}
	fs.Visit(func(fl *flag.Flag) {
		if fl.Name == "seed" {
			f.seedSet = true
		}
	})
	return f, nil
}

// loadConfig читает файл из --config, а без флага из CONFIG_PATH или пути по умолчанию.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}

// loadEnvFile подгружает учётные данные из .env; отсутствие файла не ошибка.
// Уже выставленные переменные окружения не перезаписываются.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// exitCode сопоставляет доменные ошибки с кодами завершения.
func exitCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnsatisfiable):
		return exitUnsatisfiable
	case errors.Is(err, domain.ErrAttemptLimit):
		return exitAttemptLimit
	case errors.Is(err, domain.ErrNotEnoughParticipants),
		errors.Is(err, domain.ErrInvalidParticipant),
		errors.Is(err, domain.ErrDuplicateParticipant),
		errors.Is(err, domain.ErrMissingCredentials):
		return exitConfig
	default:
		return exitFailure
	}
}

// setupLogger настраивает структурированное логирование на основе конфигурации.
// Возвращает функцию для закрытия файлового дескриптора (если используется файл).
func setupLogger(cfg config.Config) func() {
	output := strings.ToLower(cfg.Logging.Output)
	var writer io.Writer
	var closer io.Closer

	// Определяем куда писать логи: stdout, stderr или файл
	switch output {
	case "stderr", "":
		writer = os.Stderr
	case "stdout":
		writer = os.Stdout
	default:
		if err := os.MkdirAll(filepath.Dir(cfg.Logging.Output), 0o755); err != nil {
			log.Fatalf("failed to create log directory: %v", err)
		}
		f, err := os.OpenFile(cfg.Logging.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("failed to open log file: %v", err)
		}
		writer = f
		closer = f
	}

	var level slog.Level
	switch strings.ToLower(cfg.Logging.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.EqualFold(cfg.Logging.Format, "text") {
		handler = slog.NewTextHandler(writer, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(writer, handlerOpts)
	}
	handler = logging.NewLoggerImpl(handler)
	slog.SetDefault(slog.New(handler))

	return func() {
		if closer != nil {
			_ = closer.Close()
		}
	}
}
