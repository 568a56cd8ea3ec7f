package mailer

import (
	"context"

	"go.uber.org/zap"
)

// LogMailer writes messages to the log instead of delivering them. Used in
// development, where no mail server is configured.
type LogMailer struct{}

func NewLog() *LogMailer {
	return &LogMailer{}
}

func (LogMailer) SendMail(_ context.Context, to, subject, htmlBody string) error {
	zap.L().Info("mail not delivered, log driver active",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", htmlBody),
	)
	return nil
}
