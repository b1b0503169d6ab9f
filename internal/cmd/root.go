// Package cmd wires the command-line surface: auth commands, management
// commands for staff and plans, and the interactive TUI.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/powertrack/powertrack/internal/api"
	"github.com/powertrack/powertrack/internal/config"
	"github.com/powertrack/powertrack/internal/errors"
	"github.com/powertrack/powertrack/internal/logging"
	"github.com/powertrack/powertrack/internal/session"
)

var rootCmd = &cobra.Command{
	Use:   "powertrack",
	Short: "Terminal client for the PowerTrack Pro detailing backend",
	Long: `PowerTrack is the front-of-house client for a vehicle detailing
business: staff and client-plan management for managers, and the
six-step Daily Worksheet for recording service transactions.

Run without arguments to open the interactive UI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUI(false)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/powertrack/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.PersistentFlags().String("api-url", "", "backend base URL (default http://localhost:5000)")
	_ = viper.BindPFlag("api.base_url", rootCmd.PersistentFlags().Lookup("api-url"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/powertrack")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("POWERTRACK")
	// Replace dots with underscores for nested keys in env vars
	// e.g., POWERTRACK_API_BASE_URL for api.base_url
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// env bundles the shared wiring every subcommand needs.
type env struct {
	cfg    *config.Config
	sess   *session.Session
	client *api.Client
	log    *logging.Logger
}

// newEnv builds the config, session, logger, and API client stack. A broken
// log setup degrades to a no-op logger rather than failing the command.
func newEnv() *env {
	cfg := config.Get()

	log, err := logging.NewLogger(cfg.LogDir(), cfg.Logging.Level)
	if err != nil {
		log = logging.Nop()
	}

	sess := session.New(session.NewStore(cfg.TokenFile()))
	client := api.New(cfg.API.BaseURL, cfg.API.Timeout(), sess, log)

	return &env{cfg: cfg, sess: sess, client: client, log: log}
}

func (e *env) close() {
	_ = e.log.Close()
}

// requireAuth fails fast when no token is stored, before any request is
// attempted.
func (e *env) requireAuth() error {
	if !e.sess.IsAuthenticated() {
		return errors.ErrNoToken
	}
	return nil
}

// requireManager applies the client-side role gate for management commands.
// The gate is advisory; the backend enforces authorization on every call. A
// token whose role cannot be decoded passes through and lets the backend
// decide.
func (e *env) requireManager() error {
	if err := e.requireAuth(); err != nil {
		return err
	}
	if role, ok := e.sess.CurrentRole(); ok && role != session.RoleManager {
		return errors.New("this command requires the manager role")
	}
	return nil
}
