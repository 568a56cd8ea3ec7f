package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/globalfund/internal/config"
	"github.com/GlebRadaev/globalfund/internal/domain"
	"github.com/GlebRadaev/globalfund/internal/service/authservice"
)

func newTestCLI(t *testing.T, backend Backend, connectErr error) (*CLI, *bytes.Buffer, *config.Config) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	var out bytes.Buffer
	var seen config.Config
	c := newCLI(func(_ context.Context, cfg *config.Config) (Backend, error) {
		seen = *cfg
		if connectErr != nil {
			return nil, connectErr
		}
		return backend, nil
	}, &out)
	return c, &out, &seen
}

func TestCLI_Execute(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		connectErr  error
		prepareMock func(b *MockBackend)
		wantCode    int
		wantOutput  string
	}{
		{
			name: "migrate prints schema version",
			args: []string{"migrate"},
			prepareMock: func(b *MockBackend) {
				b.EXPECT().Migrate(gomock.Any()).Return(int64(3), nil)
				b.EXPECT().Close()
			},
			wantCode:   ExitSuccess,
			wantOutput: "version=3",
		},
		{
			name: "migrate failure",
			args: []string{"migrate"},
			prepareMock: func(b *MockBackend) {
				b.EXPECT().Migrate(gomock.Any()).Return(int64(0), errors.New("relation exists"))
				b.EXPECT().Close()
			},
			wantCode:   ExitInternal,
			wantOutput: "relation exists",
		},
		{
			name:        "connection failure",
			args:        []string{"sweep-otp"},
			connectErr:  errors.New("connection refused"),
			prepareMock: func(b *MockBackend) {},
			wantCode:    ExitInternal,
			wantOutput:  "connection refused",
		},
		{
			name: "sweep-otp reports cleared codes",
			args: []string{"sweep-otp"},
			prepareMock: func(b *MockBackend) {
				b.EXPECT().Sweep(gomock.Any()).Return(int64(4), nil)
				b.EXPECT().Close()
			},
			wantCode:   ExitSuccess,
			wantOutput: "cleared=4",
		},
		{
			name: "admin create registers and promotes",
			args: []string{"admin", "create", "--name", "Root", "--email", "root@example.com", "--password", "secret1"},
			prepareMock: func(b *MockBackend) {
				b.EXPECT().Register(gomock.Any(), authservice.RegisterInput{
					Name: "Root", Email: "root@example.com", Password: "secret1",
				}).Return(&domain.User{ID: "u-1", Email: "root@example.com"}, nil)
				b.EXPECT().SetAdmin(gomock.Any(), "root@example.com", true).Return(nil)
				b.EXPECT().Close()
			},
			wantCode:   ExitSuccess,
			wantOutput: "admin created",
		},
		{
			name: "admin create keeps a free-form phone",
			args: []string{"admin", "create", "--name", "Root", "--email", "root@example.com", "--password", "secret1", "--phone", "+92 300 1234567"},
			prepareMock: func(b *MockBackend) {
				b.EXPECT().Register(gomock.Any(), authservice.RegisterInput{
					Name: "Root", Email: "root@example.com", Password: "secret1", Phone: "+92 300 1234567",
				}).Return(&domain.User{ID: "u-2", Email: "root@example.com"}, nil)
				b.EXPECT().SetAdmin(gomock.Any(), "root@example.com", true).Return(nil)
				b.EXPECT().Close()
			},
			wantCode:   ExitSuccess,
			wantOutput: "admin created",
		},
		{
			name:        "admin create rejects bad input before connecting",
			args:        []string{"admin", "create", "--name", "Root", "--email", "not-an-email", "--password", "123"},
			prepareMock: func(b *MockBackend) {},
			wantCode:    ExitValidation,
			wantOutput:  "email must be a valid email",
		},
		{
			name: "admin create with taken email",
			args: []string{"admin", "create", "--name", "Root", "--email", "root@example.com", "--password", "secret1"},
			prepareMock: func(b *MockBackend) {
				b.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, authservice.ErrDuplicateEmail)
				b.EXPECT().Close()
			},
			wantCode:   ExitValidation,
			wantOutput: "already exists",
		},
		{
			name: "admin promote",
			args: []string{"admin", "promote", "jane@example.com"},
			prepareMock: func(b *MockBackend) {
				b.EXPECT().SetAdmin(gomock.Any(), "jane@example.com", true).Return(nil)
				b.EXPECT().Close()
			},
			wantCode:   ExitSuccess,
			wantOutput: "is_admin=true",
		},
		{
			name: "admin demote unknown user",
			args: []string{"admin", "demote", "ghost@example.com"},
			prepareMock: func(b *MockBackend) {
				b.EXPECT().SetAdmin(gomock.Any(), "ghost@example.com", false).Return(authservice.ErrUserNotFound)
				b.EXPECT().Close()
			},
			wantCode:   ExitNotFound,
			wantOutput: "user not found",
		},
		{
			name:        "admin promote without email",
			args:        []string{"admin", "promote"},
			prepareMock: func(b *MockBackend) {},
			wantCode:    ExitValidation,
			wantOutput:  "expected exactly one email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			backend := NewMockBackend(ctrl)
			tt.prepareMock(backend)

			c, out, _ := newTestCLI(t, backend, tt.connectErr)
			c.rootCmd.SetArgs(tt.args)

			code := c.Execute()

			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, out.String(), tt.wantOutput)
		})
	}
}

func TestCLI_DatabaseFlagOverridesConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := NewMockBackend(ctrl)
	backend.EXPECT().Sweep(gomock.Any()).Return(int64(0), nil)
	backend.EXPECT().Close()

	c, _, seen := newTestCLI(t, backend, nil)
	c.rootCmd.SetArgs([]string{"--database", "postgres://ops@db:5432/fund", "sweep-otp"})

	assert.Equal(t, ExitSuccess, c.Execute())
	assert.Equal(t, "postgres://ops@db:5432/fund", seen.Database)
}

func TestCLI_RefusesMissingJWTSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := NewMockBackend(ctrl)

	c, out, _ := newTestCLI(t, backend, nil)
	t.Setenv("JWT_SECRET", "")
	c.rootCmd.SetArgs([]string{"admin", "promote", "jane@example.com"})

	assert.Equal(t, ExitValidation, c.Execute())
	assert.Contains(t, out.String(), "JWT_SECRET")
}
