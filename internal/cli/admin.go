package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GlebRadaev/globalfund/internal/domain"
	"github.com/GlebRadaev/globalfund/internal/service/authservice"
	"github.com/GlebRadaev/globalfund/pkg/validate"
)

var errUsage = errors.New("invalid arguments")

func (c *CLI) newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage administrator accounts",
	}

	cmd.AddCommand(c.newAdminCreateCmd())
	cmd.AddCommand(c.newAdminFlagCmd("promote", "Grant admin rights to an existing user", true))
	cmd.AddCommand(c.newAdminFlagCmd("demote", "Revoke admin rights from a user", false))

	return cmd
}

type adminCreateInput struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"    validate:"omitempty,max=32"`
}

func (c *CLI) newAdminCreateCmd() *cobra.Command {
	var in adminCreateInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new user with admin rights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if msgs := validate.Struct(&in); len(msgs) > 0 {
				return domain.NewValidationError(msgs...)
			}
			return c.withBackend(cmd.Context(), func(b Backend) error {
				user, err := b.Register(cmd.Context(), authservice.RegisterInput{
					Name:     in.Name,
					Email:    in.Email,
					Password: in.Password,
					Phone:    in.Phone,
				})
				if err != nil {
					return fmt.Errorf("create user: %w", err)
				}
				if err := b.SetAdmin(cmd.Context(), user.Email, true); err != nil {
					return fmt.Errorf("grant admin: %w", err)
				}
				c.log.Info().Str("id", user.ID).Str("email", user.Email).Msg("admin created")
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "display name")
	cmd.Flags().StringVar(&in.Email, "email", "", "login email")
	cmd.Flags().StringVar(&in.Password, "password", "", "initial password (min 6 characters)")
	cmd.Flags().StringVar(&in.Phone, "phone", "", "11 digit phone number")

	return cmd
}

func (c *CLI) newAdminFlagCmd(use, short string, isAdmin bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <email>",
		Short: short,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w: expected exactly one email", errUsage)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			email := args[0]
			return c.withBackend(cmd.Context(), func(b Backend) error {
				if err := b.SetAdmin(cmd.Context(), email, isAdmin); err != nil {
					return err
				}
				c.log.Info().Str("email", email).Bool("is_admin", isAdmin).Msg("admin flag updated")
				return nil
			})
		},
	}
}
