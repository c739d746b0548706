package main

import (
	"context"

	"roster/internal/domain/entity"

	"github.com/spf13/cobra"
)

type contactFlags struct {
	phone, telegram, linkedin string
}

func (f *contactFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&f.telegram, "telegram", "", "Telegram handle")
	cmd.Flags().StringVar(&f.linkedin, "linkedin", "", "LinkedIn handle")
}

// changed returns the handles whose flags were given on the command line.
func (f *contactFlags) changed(cmd *cobra.Command) (phone, telegram, linkedin *string) {
	if cmd.Flags().Changed("phone") {
		phone = &f.phone
	}
	if cmd.Flags().Changed("telegram") {
		telegram = &f.telegram
	}
	if cmd.Flags().Changed("linkedin") {
		linkedin = &f.linkedin
	}

	return phone, telegram, linkedin
}

func (c *cli) contactsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Manage the contact row of a user",
	}

	cmd.AddCommand(
		c.contactsAddCmd(),
		c.contactsGetCmd(),
		c.contactsUpdateCmd(),
		c.contactsDeleteCmd(),
	)

	return cmd
}

func (c *cli) contactsAddCmd() *cobra.Command {
	var flags contactFlags

	cmd := &cobra.Command{
		Use:   "add USER_ID",
		Short: "Add contacts to a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID(args[0])
			if err != nil {
				return err
			}

			var payload entity.ContactCreate
			payload.PhoneNumber, payload.Telegram, payload.LinkedIn = flags.changed(cmd)

			return c.run(cmd, func(ctx context.Context, d deps) (any, error) {
				return d.Users.AddContact(ctx, userID, &payload)
			})
		},
	}
	flags.register(cmd)

	return cmd
}

func (c *cli) contactsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get USER_ID",
		Short: "Show a user with its contacts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID(args[0])
			if err != nil {
				return err
			}

			return c.run(cmd, func(ctx context.Context, d deps) (any, error) {
				return d.Users.GetContacts(ctx, userID)
			})
		},
	}
}

func (c *cli) contactsUpdateCmd() *cobra.Command {
	var flags contactFlags

	cmd := &cobra.Command{
		Use:   "update USER_ID",
		Short: "Change the contacts of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID(args[0])
			if err != nil {
				return err
			}

			var payload entity.ContactUpdate
			payload.PhoneNumber, payload.Telegram, payload.LinkedIn = flags.changed(cmd)

			return c.run(cmd, func(ctx context.Context, d deps) (any, error) {
				return d.Users.UpdateContacts(ctx, userID, &payload)
			})
		},
	}
	flags.register(cmd)

	return cmd
}

func (c *cli) contactsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete USER_ID",
		Short: "Remove the contacts of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID(args[0])
			if err != nil {
				return err
			}

			return c.run(cmd, func(ctx context.Context, d deps) (any, error) {
				return d.Users.DeleteContacts(ctx, userID)
			})
		},
	}
}
