package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/powertrack/powertrack/internal/api"
)

var staffCmd = &cobra.Command{
	Use:   "staff",
	Short: "Manage staff members",
}

var staffListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all staff members",
	RunE: func(cmd *cobra.Command, args []string) error {
		e := newEnv()
		defer e.close()
		if err := e.requireManager(); err != nil {
			return err
		}

		staff, err := e.client.ListStaff(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tUSERNAME\tROLE\tSTATUS")
		for _, s := range staff {
			status := "inactive"
			if s.IsActive {
				status = "active"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", s.UserID, s.FullName, s.Username, s.Role, status)
		}
		return w.Flush()
	},
}

var staffCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a staff member",
	RunE: func(cmd *cobra.Command, args []string) error {
		e := newEnv()
		defer e.close()
		if err := e.requireManager(); err != nil {
			return err
		}

		first, _ := cmd.Flags().GetString("first-name")
		last, _ := cmd.Flags().GetString("last-name")
		role, _ := cmd.Flags().GetString("role")
		password, _ := cmd.Flags().GetString("password")

		if first == "" || last == "" || password == "" {
			return fmt.Errorf("--first-name, --last-name, and --password are required")
		}

		created, err := e.client.CreateStaff(cmd.Context(), api.CreateStaffRequest{
			FirstName:       first,
			LastName:        last,
			Role:            role,
			Password:        password,
			ConfirmPassword: password,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s) as user %d\n", created.FullName, created.Username, created.UserID)
		return nil
	},
}

var staffToggleCmd = &cobra.Command{
	Use:   "toggle <user-id>",
	Short: "Flip a staff member's active status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := newEnv()
		defer e.close()
		if err := e.requireManager(); err != nil {
			return err
		}

		userID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}

		updated, err := e.client.ToggleStaff(cmd.Context(), userID)
		if err != nil {
			return err
		}
		status := "inactive"
		if updated.IsActive {
			status = "active"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", updated.FullName, status)
		return nil
	},
}

func init() {
	staffCreateCmd.Flags().String("first-name", "", "first name")
	staffCreateCmd.Flags().String("last-name", "", "last name")
	staffCreateCmd.Flags().String("role", "detailer", "role (manager or detailer)")
	staffCreateCmd.Flags().String("password", "", "initial password")

	staffCmd.AddCommand(staffListCmd, staffCreateCmd, staffToggleCmd)
	rootCmd.AddCommand(staffCmd)
}
