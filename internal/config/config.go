package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"

	"github.com/jlovejo2/Secret-Santa-App-Local/internal/domain"
	"github.com/jlovejo2/Secret-Santa-App-Local/internal/matcher"
)

const defaultConfigPath = "config/config.yaml"

// Config объединяет все аспекты настройки жеребьёвки.
type Config struct {
	Participants []domain.Participant `yaml:"participants"`
	Mail         MailConfig           `yaml:"mail"`
	Matcher      MatcherConfig        `yaml:"matcher"`
	Logging      LoggingConfig        `yaml:"logging"`
	Metrics      MetricsConfig        `yaml:"metrics"`
}

// MailConfig описывает SMTP-учётку, от имени которой рассылаются письма.
type MailConfig struct {
	Host        string        `yaml:"host" env:"SANTA_MAIL_HOST"`
	Port        int           `yaml:"port" env:"SANTA_MAIL_PORT"`
	Username    string        `yaml:"username" env:"SANTA_MAIL_USERNAME"`
	AppPassword string        `yaml:"app_password" env:"SANTA_MAIL_APP_PASSWORD"`
	FromName    string        `yaml:"from_name" env:"SANTA_MAIL_FROM_NAME"`
	FromAddress string        `yaml:"from_address" env:"SANTA_MAIL_FROM"`
	Subject     string        `yaml:"subject" env:"SANTA_MAIL_SUBJECT"`
	Timeout     time.Duration `yaml:"timeout" env:"SANTA_MAIL_TIMEOUT"`
}

// MatcherConfig ограничивает жеребьёвку.
type MatcherConfig struct {
	MaxAttempts int `yaml:"max_attempts" env:"MATCHER_MAX_ATTEMPTS"`
}

// LoggingConfig описывает формат и место логов.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Output string `yaml:"output" env:"LOG_OUTPUT"`
	Format string `yaml:"format" env:"LOG_FORMAT"` // json или text
}

// MetricsConfig задаёт файл для выгрузки метрик в формате textfile collector.
type MetricsConfig struct {
	TextfilePath string `yaml:"textfile_path" env:"METRICS_TEXTFILE"`
}

// Validate проверяет, что для боевой рассылки заданы учётные данные.
func (m MailConfig) Validate() error {
	var missing []string
	if strings.TrimSpace(m.Username) == "" {
		missing = append(missing, "SANTA_MAIL_USERNAME")
	}
	if strings.TrimSpace(m.AppPassword) == "" {
		missing = append(missing, "SANTA_MAIL_APP_PASSWORD")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: set %s", domain.ErrMissingCredentials, strings.Join(missing, ", "))
	}
	return nil
}

// Load загружает конфигурацию из файла CONFIG_PATH, а без него из config/config.yaml.
func Load() (Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}
	return LoadFrom(path)
}

// LoadFrom загружает конфигурацию из указанного файла и накладывает ENV поверх него.
func LoadFrom(path string) (Config, error) {
	cfg := Config{}
	if err := readYAML(path, &cfg); err != nil {
		return Config{}, err
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env vars: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func readYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config file %s not found", path)
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decode config yaml: %w", err)
	}
	return nil
}

// normalize устанавливает значения по умолчанию для незаданных полей.
func (c *Config) normalize() {
	for i := range c.Participants {
		p := &c.Participants[i]
		p.ID = strings.TrimSpace(p.ID)
		p.Name = strings.TrimSpace(p.Name)
		p.Email = strings.TrimSpace(p.Email)
		p.Group = strings.TrimSpace(p.Group)
	}

	// Почта
	if c.Mail.Host == "" {
		c.Mail.Host = "smtp.gmail.com"
	}
	if c.Mail.Port <= 0 {
		c.Mail.Port = 587
	}
	if c.Mail.FromAddress == "" {
		c.Mail.FromAddress = c.Mail.Username
	}
	if c.Mail.FromName == "" {
		c.Mail.FromName = "Secret Santa"
	}
	if c.Mail.Subject == "" {
		c.Mail.Subject = "Your Secret Santa assignment"
	}
	if c.Mail.Timeout <= 0 {
		c.Mail.Timeout = 15 * time.Second
	}
	// Жеребьёвка
	if c.Matcher.MaxAttempts <= 0 {
		c.Matcher.MaxAttempts = matcher.DefaultMaxAttempts
	}
	// Логирование
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stderr"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
}
