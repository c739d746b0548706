package main

import (
	"context"

	"roster/internal/domain/entity"
	"roster/internal/domain/repository"

	"github.com/spf13/cobra"
)

// groupWithMembers is the output of groups create when members are added along.
type groupWithMembers struct {
	*entity.Group
	Members []*entity.GroupMember `json:"members,omitempty"`
}

func (c *cli) groupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Manage groups",
	}

	cmd.AddCommand(
		c.groupsCreateCmd(),
		c.groupsGetCmd(),
		c.groupsListCmd(),
		c.groupsUpdateCmd(),
		c.groupsDeleteCmd(),
		c.groupsMembersCmd(),
	)

	return cmd
}

func (c *cli) groupsCreateCmd() *cobra.Command {
	var (
		payload     entity.GroupCreate
		description string
		memberIDs   []int64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a group owned by a user, optionally with initial members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("description") {
				payload.Description = &description
			}

			return c.run(cmd, func(ctx context.Context, d deps) (any, error) {
				var out groupWithMembers
				err := d.Tx.Execute(ctx, func(factory repository.RepositoryFactory) error {
					group, err := factory.NewGroupRepository().Create(ctx, &payload)
					if err != nil {
						return err
					}
					out.Group = group

					members := factory.NewMemberRepository()
					for _, userID := range memberIDs {
						member, err := members.Create(ctx, &entity.MemberCreate{GroupID: group.ID, UserID: userID})
						if err != nil {
							return err
						}
						out.Members = append(out.Members, member)
					}

					return nil
				})
				if err != nil {
					return nil, err
				}

				return out, nil
			})
		},
	}
	cmd.Flags().StringVar(&payload.Name, "name", "", "Group name (unique)")
	cmd.Flags().StringVar(&description, "description", "", "Group description")
	cmd.Flags().BoolVar(&payload.IsPrivate, "private", false, "Mark the group private")
	cmd.Flags().Int64Var(&payload.OwnerID, "owner", 0, "ID of the owning user")
	cmd.Flags().Int64SliceVar(&memberIDs, "member", nil, "ID of a user to add as member; repeatable")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("owner")

	return cmd
}

func (c *cli) groupsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get GROUP_ID",
		Short: "Show a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return c.run(cmd, func(ctx context.Context, d deps) (any, error) {
				return d.Groups.Get(ctx, id)
			})
		},
	}
}

func (c *cli) groupsListCmd() *cobra.Command {
	var page entity.Pagination

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List groups, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, func(ctx context.Context, d deps) (any, error) {
				return d.Groups.List(ctx, page), nil
			})
		},
	}
	addPageFlags(cmd, &page)

	return cmd
}

func (c *cli) groupsUpdateCmd() *cobra.Command {
	var (
		name, description string
		private           bool
	)

	cmd := &cobra.Command{
		Use:   "update GROUP_ID",
		Short: "Change the name, description or privacy of a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var payload entity.GroupUpdate
			if cmd.Flags().Changed("name") {
				payload.Name = &name
			}
			if cmd.Flags().Changed("description") {
				payload.Description = &description
			}
			if cmd.Flags().Changed("private") {
				payload.IsPrivate = &private
			}

			return c.run(cmd, func(ctx context.Context, d deps) (any, error) {
				return d.Groups.Update(ctx, id, &payload)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "New group name")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().BoolVar(&private, "private", false, "Privacy flag")

	return cmd
}

func (c *cli) groupsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete GROUP_ID",
		Short: "Delete a group with its memberships",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return c.run(cmd, func(ctx context.Context, d deps) (any, error) {
				return d.Groups.Delete(ctx, id)
			})
		},
	}
}

func (c *cli) groupsMembersCmd() *cobra.Command {
	var page entity.Pagination

	cmd := &cobra.Command{
		Use:   "members GROUP_ID",
		Short: "List the members of a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return c.run(cmd, func(ctx context.Context, d deps) (any, error) {
				return d.Groups.ListMembers(ctx, id, page), nil
			})
		},
	}
	addPageFlags(cmd, &page)

	return cmd
}
