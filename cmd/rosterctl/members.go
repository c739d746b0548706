package main

import (
	"context"

	"roster/internal/domain/entity"

	"github.com/spf13/cobra"
)

func (c *cli) membersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members",
		Short: "Manage group memberships",
	}

	cmd.AddCommand(c.membersAddCmd(), c.membersRemoveCmd())

	return cmd
}

func (c *cli) membersAddCmd() *cobra.Command {
	var payload entity.MemberCreate

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a user to a group as member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, func(ctx context.Context, d deps) (any, error) {
				return d.Members.Create(ctx, &payload)
			})
		},
	}
	cmd.Flags().Int64Var(&payload.GroupID, "group", 0, "Group ID")
	cmd.Flags().Int64Var(&payload.UserID, "user", 0, "User ID")
	_ = cmd.MarkFlagRequired("group")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func (c *cli) membersRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove MEMBERSHIP_ID",
		Short: "Remove a membership; owner memberships are refused",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return c.run(cmd, func(ctx context.Context, d deps) (any, error) {
				return d.Members.Delete(ctx, id)
			})
		},
	}
}
