package mailer

import (
	"context"
	"fmt"
	"net/http"
)

//go:generate mockgen -source=mailer.go -destination=mock_mailer.go -package=mailer

const (
	DriverSMTP = "smtp"
	DriverHTTP = "http"
	DriverLog  = "log"
)

type Mailer interface {
	SendMail(ctx context.Context, to, subject, htmlBody string) error
}

// Poster is the part of clients.HTTPClient the HTTP driver needs.
type Poster interface {
	Post(ctx context.Context, url string, headers http.Header, body []byte) (int, []byte, error)
}

type Config struct {
	Driver   string
	Host     string
	Port     int
	Secure   bool
	User     string
	Password string
	From     string
	APIURL   string
	APIKey   string
}

// New picks a driver by cfg.Driver. The http driver sends through poster.
func New(cfg Config, poster Poster) (Mailer, error) {
	switch cfg.Driver {
	case DriverSMTP:
		if cfg.Host == "" {
			return nil, fmt.Errorf("mailer: smtp driver requires EMAIL_HOST")
		}
		return NewSMTP(cfg), nil
	case DriverHTTP:
		if cfg.APIURL == "" || cfg.APIKey == "" {
			return nil, fmt.Errorf("mailer: http driver requires MAIL_API_URL and MAIL_API_KEY")
		}
		return NewHTTP(cfg, poster), nil
	case DriverLog, "":
		return NewLog(), nil
	default:
		return nil, fmt.Errorf("mailer: unknown driver %q", cfg.Driver)
	}
}
