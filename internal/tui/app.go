// Package tui implements the terminal front-end: the login screen, the
// role-gated dashboard, the staff and plans management screens, and the
// Daily Worksheet wizard.
package tui

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/powertrack/powertrack/internal/api"
	"github.com/powertrack/powertrack/internal/logging"
	"github.com/powertrack/powertrack/internal/session"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
}

// New creates a new TUI application. When startAtWorksheet is set, an
// authenticated user lands directly on the wizard instead of the menu.
func New(client *api.Client, sess *session.Session, log *logging.Logger, startAtWorksheet bool) *App {
	return &App{model: NewModel(client, sess, log, startAtWorksheet)}
}

// Run starts the TUI application
func (a *App) Run() error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	// Quit cleanly on termination signals so the terminal is restored.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	_, err := a.program.Run()

	signal.Stop(sigChan)

	return err
}
