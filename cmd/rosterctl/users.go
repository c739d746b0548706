package main

import (
	"context"

	"roster/internal/domain/entity"

	"github.com/spf13/cobra"
)

func (c *cli) usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}

	cmd.AddCommand(
		c.usersCreateCmd(),
		c.usersGetCmd(),
		c.usersListCmd(),
		c.usersUpdateCmd(),
		c.usersDeleteCmd(),
		c.usersOwnedGroupsCmd(),
		c.usersMembershipsCmd(),
		c.contactsCmd(),
	)

	return cmd
}

func (c *cli) usersCreateCmd() *cobra.Command {
	var payload entity.UserCreate
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("name") {
				payload.Name = &name
			}

			return c.run(cmd, func(ctx context.Context, d deps) (any, error) {
				return d.Users.Create(ctx, &payload)
			})
		},
	}
	cmd.Flags().StringVar(&payload.Email, "email", "", "Email address (unique)")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&payload.Password, "password", "", "Plaintext password, stored hashed")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func (c *cli) usersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get USER_ID",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return c.run(cmd, func(ctx context.Context, d deps) (any, error) {
				return d.Users.Get(ctx, id)
			})
		},
	}
}

func (c *cli) usersListCmd() *cobra.Command {
	var page entity.Pagination

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, func(ctx context.Context, d deps) (any, error) {
				return d.Users.List(ctx, page), nil
			})
		},
	}
	addPageFlags(cmd, &page)

	return cmd
}

func (c *cli) usersUpdateCmd() *cobra.Command {
	var name, password string

	cmd := &cobra.Command{
		Use:   "update USER_ID",
		Short: "Change the name or password of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var payload entity.UserUpdate
			if cmd.Flags().Changed("name") {
				payload.Name = &name
			}
			if cmd.Flags().Changed("password") {
				payload.Password = &password
			}

			return c.run(cmd, func(ctx context.Context, d deps) (any, error) {
				return d.Users.Update(ctx, id, &payload)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "New display name")
	cmd.Flags().StringVar(&password, "password", "", "New password")

	return cmd
}

func (c *cli) usersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete USER_ID",
		Short: "Delete a user with its contacts, owned groups and memberships",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return c.run(cmd, func(ctx context.Context, d deps) (any, error) {
				return d.Users.Delete(ctx, id)
			})
		},
	}
}

func (c *cli) usersOwnedGroupsCmd() *cobra.Command {
	var page entity.Pagination

	cmd := &cobra.Command{
		Use:   "owned-groups USER_ID",
		Short: "List groups owned by a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return c.run(cmd, func(ctx context.Context, d deps) (any, error) {
				return d.Users.ListOwnedGroups(ctx, id, page), nil
			})
		},
	}
	addPageFlags(cmd, &page)

	return cmd
}

func (c *cli) usersMembershipsCmd() *cobra.Command {
	var page entity.Pagination

	cmd := &cobra.Command{
		Use:   "memberships USER_ID",
		Short: "List the groups a user belongs to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return c.run(cmd, func(ctx context.Context, d deps) (any, error) {
				return d.Users.ListMemberGroups(ctx, id, page), nil
			})
		},
	}
	addPageFlags(cmd, &page)

	return cmd
}

func addPageFlags(cmd *cobra.Command, page *entity.Pagination) {
	cmd.Flags().IntVar(&page.Skip, "skip", entity.DefaultSkip, "Rows to skip")
	cmd.Flags().IntVar(&page.Limit, "limit", entity.DefaultLimit, "Maximum rows to return")
}
