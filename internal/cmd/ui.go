package cmd

import (
	"github.com/spf13/cobra"

	"github.com/powertrack/powertrack/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUI(false)
	},
}

var worksheetCmd = &cobra.Command{
	Use:   "worksheet",
	Short: "Open the UI directly on the Daily Worksheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUI(true)
	},
}

func init() {
	rootCmd.AddCommand(uiCmd, worksheetCmd)
}

// runUI builds the shared stack and hands the terminal to the TUI. An
// unauthenticated session lands on the login screen first.
func runUI(startAtWorksheet bool) error {
	e := newEnv()
	defer e.close()

	app := tui.New(e.client, e.sess, e.log, startAtWorksheet)
	return app.Run()
}
