package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/jlovejo2/Secret-Santa-App-Local/internal/config"
	"github.com/jlovejo2/Secret-Santa-App-Local/internal/domain"
	"github.com/jlovejo2/Secret-Santa-App-Local/internal/infrastructure/nower"
)

const implicitTLSPort = 465

// SMTPMailer отправляет письма через SMTP с обязательным TLS.
type SMTPMailer struct {
	cfg    config.MailConfig
	client *mail.Client
	nower  nower.Nower
}

// New создаёт SMTP-клиент. Без учётных данных возвращает domain.ErrMissingCredentials.
func New(cfg config.MailConfig, nower nower.Nower) (*SMTPMailer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.AppPassword),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}
	if cfg.Port == implicitTLSPort {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}
	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	return &SMTPMailer{
		cfg:    cfg,
		client: client,
		nower:  nower,
	}, nil
}

// Send открывает соединение, отправляет одно письмо и закрывает соединение.
func (m *SMTPMailer) Send(ctx context.Context, msg domain.Message) error {
	built, err := m.build(msg)
	if err != nil {
		return err
	}
	if err := m.client.DialAndSendWithContext(ctx, built); err != nil {
		return fmt.Errorf("smtp send to %s: %w", msg.To, err)
	}
	return nil
}

func (m *SMTPMailer) build(msg domain.Message) (*mail.Msg, error) {
	out := mail.NewMsg()
	if err := out.FromFormat(m.cfg.FromName, m.cfg.FromAddress); err != nil {
		return nil, fmt.Errorf("set sender %q: %w", m.cfg.FromAddress, err)
	}
	if err := out.AddToFormat(msg.ToName, msg.To); err != nil {
		return nil, fmt.Errorf("set recipient %q: %w", msg.To, err)
	}
	out.Subject(msg.Subject)
	out.SetDateWithValue(m.nower.Now())
	out.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		out.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}
	return out, nil
}
