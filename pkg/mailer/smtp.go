package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

type SMTPMailer struct {
	cfg Config
}

func NewSMTP(cfg Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (s *SMTPMailer) message(to, subject, htmlBody string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return nil, fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)
	return msg, nil
}

func (s *SMTPMailer) client() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithTimeout(15 * time.Second),
	}
	if s.cfg.Secure {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if s.cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.User),
			mail.WithPassword(s.cfg.Password),
		)
	}
	return mail.NewClient(s.cfg.Host, opts...)
}

func (s *SMTPMailer) SendMail(ctx context.Context, to, subject, htmlBody string) error {
	msg, err := s.message(to, subject, htmlBody)
	if err != nil {
		zap.L().Error("can't build mail", zap.String("to", to), zap.Error(err))
		return err
	}

	client, err := s.client()
	if err != nil {
		zap.L().Error("can't create smtp client", zap.Error(err))
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		zap.L().Error("can't send mail", zap.String("to", to), zap.Error(err))
		return fmt.Errorf("send mail: %w", err)
	}

	zap.L().Info("mail sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
