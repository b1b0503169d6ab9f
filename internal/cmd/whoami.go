package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session's user and role",
	RunE: func(cmd *cobra.Command, args []string) error {
		e := newEnv()
		defer e.close()

		if !e.sess.IsAuthenticated() {
			fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
			return nil
		}

		role := "unknown"
		if r, ok := e.sess.CurrentRole(); ok {
			role = string(r)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "User: %s\nRole: %s\n", e.sess.CurrentUserID(), role)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
