package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		expected  any
		expectErr bool
	}{
		{name: "Log driver", cfg: Config{Driver: DriverLog}, expected: &LogMailer{}},
		{name: "Empty driver falls back to log", cfg: Config{}, expected: &LogMailer{}},
		{name: "SMTP driver", cfg: Config{Driver: DriverSMTP, Host: "smtp.example.com", Port: 587}, expected: &SMTPMailer{}},
		{name: "SMTP without host", cfg: Config{Driver: DriverSMTP}, expectErr: true},
		{name: "HTTP driver", cfg: Config{Driver: DriverHTTP, APIURL: "http://mail.local", APIKey: "k"}, expected: &HTTPMailer{}},
		{name: "HTTP without key", cfg: Config{Driver: DriverHTTP, APIURL: "http://mail.local"}, expectErr: true},
		{name: "Unknown driver", cfg: Config{Driver: "pigeon"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.cfg, nil)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.expected, m)
		})
	}
}

func TestHTTPMailer_SendMail(t *testing.T) {
	ctrl := gomock.NewController(t)
	poster := NewMockPoster(ctrl)
	cfg := Config{From: "no-reply@globalfund.local", APIURL: "http://mail.local/v1/email", APIKey: "Zoho-enczapikey abc"}
	mailer := NewHTTP(cfg, poster)

	tests := []struct {
		name        string
		prepareMock func()
		expectErr   bool
	}{
		{
			name: "Accepted",
			prepareMock: func() {
				poster.EXPECT().Post(gomock.Any(), cfg.APIURL, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, headers http.Header, body []byte) (int, []byte, error) {
						assert.Equal(t, cfg.APIKey, headers.Get("Authorization"))

						var req emailRequest
						require.NoError(t, json.Unmarshal(body, &req))
						assert.Equal(t, cfg.From, req.From.Address)
						require.Len(t, req.To, 1)
						assert.Equal(t, "donor@example.com", req.To[0].Email.Address)
						assert.Equal(t, "Password reset", req.Subject)
						return http.StatusAccepted, nil, nil
					})
			},
		},
		{
			name: "Rejected by api",
			prepareMock: func() {
				poster.EXPECT().Post(gomock.Any(), cfg.APIURL, gomock.Any(), gomock.Any()).
					Return(http.StatusUnauthorized, []byte(`{"error":"bad key"}`), nil)
			},
			expectErr: true,
		},
		{
			name: "Transport error",
			prepareMock: func() {
				poster.EXPECT().Post(gomock.Any(), cfg.APIURL, gomock.Any(), gomock.Any()).
					Return(0, nil, errors.New("connection refused"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := mailer.SendMail(context.Background(), "donor@example.com", "Password reset", "<p>A1B2C3</p>")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSMTPMailer_Message(t *testing.T) {
	s := NewSMTP(Config{Host: "smtp.example.com", Port: 587, From: "no-reply@globalfund.local"})

	msg, err := s.message("donor@example.com", "Password reset", "<p>A1B2C3</p>")
	require.NoError(t, err)
	assert.NotNil(t, msg)

	_, err = s.message("not an address", "Password reset", "<p>A1B2C3</p>")
	assert.Error(t, err)

	_, err = NewSMTP(Config{Host: "smtp.example.com", Port: 587, From: "broken"}).message("donor@example.com", "s", "b")
	assert.Error(t, err)
}

func TestSMTPMailer_Client(t *testing.T) {
	client, err := NewSMTP(Config{Host: "smtp.example.com", Port: 465, Secure: true, User: "u", Password: "p"}).client()
	require.NoError(t, err)
	assert.NotNil(t, client)

	_, err = NewSMTP(Config{Host: "smtp.example.com", Port: 70000}).client()
	assert.Error(t, err)
}

func TestLogMailer(t *testing.T) {
	assert.NoError(t, NewLog().SendMail(context.Background(), "a@b.c", "subject", "body"))
}
