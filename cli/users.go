package cli

import (
	"daily-journal/app"
	"daily-journal/models"

	"github.com/spf13/cobra"
)

func newUsersCmd(open opener) *cobra.Command {
	users := &cobra.Command{
		Use:   "users",
		Short: "Manage the local user profile",
	}

	users.AddCommand(
		&cobra.Command{
			Use:   "create <email> <name>",
			Short: "Create a user profile",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, open, func(a *app.App) error {
					if err := a.Validator.Validate(models.CreateUserRequest{Email: args[0], Name: args[1]}); err != nil {
						return err
					}
					user, err := a.Commands.CreateUser(cmd.Context(), args[0], args[1])
					if err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), user)
				})
			},
		},
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show a user profile",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, open, func(a *app.App) error {
					user, err := a.Commands.GetUser(cmd.Context(), args[0])
					if err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), user)
				})
			},
		},
		newUsersUpdateCmd(open),
	)

	return users
}

func newUsersUpdateCmd(open opener) *cobra.Command {
	var email, name string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the email or name of a user profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req models.UpdateUserRequest
			if cmd.Flags().Changed("email") {
				req.Email = &email
			}
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}

			return withApp(cmd, open, func(a *app.App) error {
				if err := a.Validator.Validate(req); err != nil {
					return err
				}
				user, err := a.Commands.UpdateUser(cmd.Context(), args[0], req)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), user)
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "new email")
	cmd.Flags().StringVar(&name, "name", "", "new display name")
	return cmd
}
