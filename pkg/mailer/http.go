package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

type emailRequest struct {
	From     emailAddress  `json:"from"`
	To       []toRecipient `json:"to"`
	Subject  string        `json:"subject"`
	HTMLBody string        `json:"htmlbody"`
}

type emailAddress struct {
	Address string `json:"address"`
}

type toRecipient struct {
	Email emailAddress `json:"email_address"`
}

// HTTPMailer posts messages to a transactional mail API (ZeptoMail payload shape).
type HTTPMailer struct {
	cfg    Config
	poster Poster
}

func NewHTTP(cfg Config, poster Poster) *HTTPMailer {
	return &HTTPMailer{cfg: cfg, poster: poster}
}

func (h *HTTPMailer) SendMail(ctx context.Context, to, subject, htmlBody string) error {
	payload, err := json.Marshal(emailRequest{
		From:     emailAddress{Address: h.cfg.From},
		To:       []toRecipient{{Email: emailAddress{Address: to}}},
		Subject:  subject,
		HTMLBody: htmlBody,
	})
	if err != nil {
		return fmt.Errorf("marshal mail payload: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Accept", "application/json")
	headers.Set("Authorization", h.cfg.APIKey)

	status, body, err := h.poster.Post(ctx, h.cfg.APIURL, headers, payload)
	if err != nil {
		zap.L().Error("can't reach mail api", zap.String("to", to), zap.Error(err))
		return fmt.Errorf("post mail: %w", err)
	}
	if status != http.StatusOK && status != http.StatusAccepted && status != http.StatusCreated {
		zap.L().Error("mail api rejected message", zap.Int("status", status), zap.ByteString("body", body))
		return fmt.Errorf("mail api returned status %d", status)
	}

	zap.L().Info("mail sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
