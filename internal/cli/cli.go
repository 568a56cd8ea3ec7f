// Package cli implements fundctl, the operator command line for GlobalFund.
package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/GlebRadaev/globalfund/internal/config"
	"github.com/GlebRadaev/globalfund/internal/domain"
	"github.com/GlebRadaev/globalfund/internal/service/authservice"
)

//go:generate mockgen -source=cli.go -destination=mock_cli.go -package=cli

const (
	ExitSuccess    = 0
	ExitValidation = 1
	ExitNotFound   = 2
	ExitInternal   = 3
)

// Backend is everything the commands need from a live database.
type Backend interface {
	Migrate(ctx context.Context) (int64, error)
	Register(ctx context.Context, in authservice.RegisterInput) (*domain.User, error)
	SetAdmin(ctx context.Context, email string, isAdmin bool) error
	Sweep(ctx context.Context) (int64, error)
	Close()
}

// Connector opens a Backend for the loaded configuration.
type Connector func(ctx context.Context, cfg *config.Config) (Backend, error)

type CLI struct {
	rootCmd *cobra.Command
	cfg     *config.Config
	connect Connector
	log     zerolog.Logger

	database string
}

func New() *CLI {
	return newCLI(Connect, os.Stdout)
}

func newCLI(connect Connector, out io.Writer) *CLI {
	c := &CLI{
		connect: connect,
		log:     zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: true}).With().Timestamp().Logger(),
	}
	c.rootCmd = c.newRootCmd()
	return c
}

// Execute runs the command named by os.Args and maps the error to an exit code.
func (c *CLI) Execute() int {
	err := c.rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}
	c.log.Error().Err(err).Msg("fundctl failed")

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr), errors.Is(err, authservice.ErrDuplicateEmail), errors.Is(err, errUsage),
		errors.Is(err, config.ErrWeakJWTSecret):
		return ExitValidation
	case errors.Is(err, authservice.ErrUserNotFound):
		return ExitNotFound
	default:
		return ExitInternal
	}
}

func (c *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fundctl",
		Short:         "Operator tooling for the GlobalFund API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initConfig()
		},
	}

	cmd.PersistentFlags().StringVarP(&c.database, "database", "d", "", "database DSN (overrides DATABASE_URI)")

	cmd.AddCommand(c.newMigrateCmd())
	cmd.AddCommand(c.newAdminCmd())
	cmd.AddCommand(c.newSweepCmd())

	return cmd
}

func (c *CLI) initConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if c.database != "" {
		cfg.Database = c.database
	}
	c.cfg = cfg
	return nil
}

// withBackend opens a backend for the duration of fn.
func (c *CLI) withBackend(ctx context.Context, fn func(b Backend) error) error {
	b, err := c.connect(ctx, c.cfg)
	if err != nil {
		return err
	}
	defer b.Close()
	return fn(b)
}

func (c *CLI) newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withBackend(cmd.Context(), func(b Backend) error {
				version, err := b.Migrate(cmd.Context())
				if err != nil {
					return err
				}
				c.log.Info().Int64("version", version).Msg("migrations applied")
				return nil
			})
		},
	}
}

func (c *CLI) newSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep-otp",
		Short: "Clear expired password reset codes once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withBackend(cmd.Context(), func(b Backend) error {
				cleared, err := b.Sweep(cmd.Context())
				if err != nil {
					return err
				}
				c.log.Info().Int64("cleared", cleared).Msg("expired OTPs cleared")
				return nil
			})
		},
	}
}
