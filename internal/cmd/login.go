package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the backend and store the session token",
	RunE:  runLogin,
}

func init() {
	loginCmd.Flags().StringP("username", "u", "", "username (prompted when omitted)")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	e := newEnv()
	defer e.close()

	username, _ := cmd.Flags().GetString("username")
	if username == "" {
		fmt.Fprint(cmd.OutOrStdout(), "Username: ")
		reader := bufio.NewReader(cmd.InOrStdin())
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading username: %w", err)
		}
		username = strings.TrimSpace(line)
	}
	if username == "" {
		return fmt.Errorf("username is required")
	}

	fmt.Fprint(cmd.OutOrStdout(), "Password: ")
	password, err := readPassword(cmd)
	fmt.Fprintln(cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}
	if password == "" {
		return fmt.Errorf("password is required")
	}

	token, err := e.client.Login(cmd.Context(), username, password)
	if err != nil {
		// A rejected login never tears down an existing session.
		return fmt.Errorf("login failed: %w", err)
	}
	if err := e.sess.Login(token); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}

	role := "unknown"
	if r, ok := e.sess.CurrentRole(); ok {
		role = string(r)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Logged in as user %s (%s)\n", e.sess.CurrentUserID(), role)
	return nil
}

// readPassword reads without echo when stdin is a terminal, and falls back
// to a plain line read otherwise so the command stays scriptable.
func readPassword(cmd *cobra.Command) (string, error) {
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
